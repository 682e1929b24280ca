package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	ErrMsgInternalServerError = "Internal server error occurred"
)
