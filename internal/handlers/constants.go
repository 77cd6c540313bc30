package handlers

const (
	// MaxBodyBytes caps every JSON request body
	MaxBodyBytes = 1 << 20

	HealthMessage = "Church API - Online"

	ErrInvalidBody         = "Invalid request body"
	ErrMissingToken        = "Missing or malformed Authorization header"
	ErrUnauthorized        = "Invalid or expired token"
	ErrForbidden           = "Admin access required"
	ErrInvalidCredentials  = "Invalid email or password"
	ErrEmailTaken          = "Email already registered"
	ErrRouteNotFound       = "Not found"
	ErrMethodNotAllowed    = "Method not allowed"
	ErrInternalServerError = "Internal server error"
)
