package constants

// HTTP Header Names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
)

// HTTP Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Common HTTP Error Messages
const (
	MsgUnauthorized    = "Unauthorized"
	MsgValidationError = "Validation failed"
	MsgNotFound        = "Resource not found"
	MsgBadRequest      = "Invalid request"
	MsgInternalError   = "Internal server error"
)

// HTTP Success Messages
const (
	MsgRegistrationSuccess = "Registration successful"
	MsgLoginSuccess        = "Login successful"
	MsgLogoutSuccess       = "Logout successful"
	MsgTeacherUpdated      = "Teacher updated successfully"
	MsgTeacherDeactivated  = "Teacher deactivated successfully"
)
