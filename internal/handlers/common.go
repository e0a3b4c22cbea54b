// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

// serviceErrorResponse maps service errors onto the response envelope.
// Validation failures never reached the platform; upstream failures are
// relayed with the platform's own status and body.
func serviceErrorResponse(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyDraftNotFound), nil)
	case errors.Is(err, services.ErrPreviewNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyPreviewNotFound), nil)
	case errors.Is(err, services.ErrMutationPending):
		utils.ConflictResponse(c, "MUTATION_PENDING", i18n.T(lang, i18n.KeyDraftPending))
	case errors.Is(err, services.ErrDeletePending):
		utils.ConflictResponse(c, "DELETE_PENDING", i18n.T(lang, i18n.KeyProductDeletePending))
	case errors.Is(err, services.ErrNameRequired):
		utils.ValidationFailedResponse(c, "NAME_REQUIRED", i18n.T(lang, i18n.KeyValidationNameRequired))
	case errors.Is(err, services.ErrImageRequired):
		utils.ValidationFailedResponse(c, "IMAGE_REQUIRED", i18n.T(lang, i18n.KeyValidationImageRequired))
	case errors.Is(err, services.ErrTooManyImages):
		utils.ValidationFailedResponse(c, "TOO_MANY_IMAGES", i18n.T(lang, i18n.KeyValidationTooManyImages))
	case errors.Is(err, services.ErrImageTooLarge):
		utils.ValidationFailedResponse(c, "IMAGE_TOO_LARGE", i18n.T(lang, i18n.KeyValidationImageTooLarge))
	case errors.Is(err, services.ErrUnsupportedImageType):
		utils.ValidationFailedResponse(c, "IMAGE_TYPE", i18n.T(lang, i18n.KeyValidationImageType))
	case errors.Is(err, services.ErrConfirmationRequired):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductDeleteConfirm), nil)
	case errors.Is(err, services.ErrInvalidOrderStatus):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderStatusInvalid), nil)
	default:
		if apiErr, ok := commerce.AsAPIError(err); ok {
			utils.UpstreamErrorResponse(c, apiErr.StatusCode, apiErr.Body)
			return
		}
		utils.ErrorResponse(c, http.StatusBadGateway, "UPSTREAM_UNREACHABLE", err.Error(), nil)
	}
}
