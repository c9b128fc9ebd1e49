// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"

	// Catalog
	KeyNotFound         = "catalog.not_found"
	KeyOperationFailed  = "catalog.operation_failed"
	KeyItemSaved        = "catalog.item_saved"
	KeyItemDeleted      = "catalog.item_deleted"
	KeySettingsUpdated  = "catalog.settings_updated"
	KeyServiceDegraded  = "catalog.service_degraded"
	KeyNoResults        = "catalog.no_results"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
