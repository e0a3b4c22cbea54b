// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/webmart/admin-dashboard/internal/i18n"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyAuthRequired)
	}
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func NotFoundResponse(c *gin.Context, resource string) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, resource+".not_found")
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func ConflictResponse(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusConflict, code, message, nil)
}

// ValidationFailedResponse is a pre-network validation failure: the request
// never reached the platform.
func ValidationFailedResponse(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, code, message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationInvalid, "input")
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", message, errors)
}

// UpstreamErrorResponse relays a platform API failure verbatim: same status,
// raw body as detail, no retry.
func UpstreamErrorResponse(c *gin.Context, statusCode int, body string) {
	ErrorResponse(c, statusCode, "UPSTREAM_ERROR", http.StatusText(statusCode), body)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}

func GetOperatorFromContext(c *gin.Context) (string, bool) {
	if operator, exists := c.Get("operator"); exists {
		if operatorStr, ok := operator.(string); ok {
			return operatorStr, true
		}
	}
	return "", false
}
