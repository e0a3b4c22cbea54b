// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Validation
	KeyValidationInvalid       = "validation.invalid"
	KeyValidationNameRequired  = "validation.name_required"
	KeyValidationImageRequired = "validation.image_required"
	KeyValidationTooManyImages = "validation.too_many_images"
	KeyValidationImageTooLarge = "validation.image_too_large"
	KeyValidationImageType     = "validation.image_type"

	// Products
	KeyProductCreated       = "product.created"
	KeyProductUpdated       = "product.updated"
	KeyProductDeleted       = "product.deleted"
	KeyProductNotFound      = "product.not_found"
	KeyProductDeleteConfirm = "product.delete_confirm"
	KeyProductDeletePending = "product.delete_pending"

	// Drafts
	KeyDraftNotFound       = "draft.not_found"
	KeyDraftPending        = "draft.pending"
	KeyDraftClosed         = "draft.closed"
	KeyPreviewNotFound     = "preview.not_found"

	// Orders
	KeyOrderStatusUpdated = "order.status_updated"
	KeyOrderStatusInvalid = "order.status_invalid"
)
