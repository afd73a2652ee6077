// Package i18n provides internationalization support for the fuel service.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong admin username or password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyServiceUnavailable indicates the truck class store is unreachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyAdminNotConfigured indicates that no admin password hash is set.
	ErrKeyAdminNotConfigured = "error.admin_not_configured"

	ErrKeyTruckClassNotFound  = "error.truck_class.not_found"
	ErrKeyTruckClassInactive  = "error.truck_class.inactive"
	ErrKeyTruckClassDuplicate = "error.truck_class.duplicate"
	ErrKeyTruckClassInvalid   = "error.truck_class.invalid"
	ErrKeyNoChanges           = "error.truck_class.no_changes"

	// ErrKeyCalculation prefixes calculator errors shown on the HTML form.
	ErrKeyCalculation = "error.calculation"
)

// Success message translation keys.
const (
	SuccessKeyFuelCalculated = "success.fuel_calculated"
)
