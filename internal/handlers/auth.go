// internal/handlers/auth.go
package handlers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/webmart/admin-dashboard/internal/config"
	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/utils"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.Admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		return
	}

	token, err := utils.GenerateJWT(req.Username, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"token":   token,
		"operator": gin.H{
			"username": req.Username,
		},
	})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	operator, exists := utils.GetOperatorFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"operator": gin.H{
			"username": operator,
		},
	})
}
