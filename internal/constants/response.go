package constants

// Response envelope field keys
const (
	ResponseFieldStatus     = "status"
	ResponseFieldMessage    = "message"
	ResponseFieldData       = "data"
	ResponseFieldErrors     = "errors"
	ResponseFieldCount      = "count"
	ResponseFieldSearchTerm = "search_term"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BuildSuccessResponse wraps data in the standard success envelope.
// Message and data are omitted when empty.
func BuildSuccessResponse(message string, data any) map[string]any {
	response := map[string]any{
		ResponseFieldStatus: StatusSuccess,
	}
	if message != "" {
		response[ResponseFieldMessage] = message
	}
	if data != nil {
		response[ResponseFieldData] = data
	}
	return response
}

// BuildListResponse wraps a collection with its count.
func BuildListResponse(data any, count int) map[string]any {
	return map[string]any{
		ResponseFieldStatus: StatusSuccess,
		ResponseFieldData:   data,
		ResponseFieldCount:  count,
	}
}

// BuildSearchResponse wraps search results with count and the echoed term.
func BuildSearchResponse(data any, count int, term string) map[string]any {
	response := BuildListResponse(data, count)
	response[ResponseFieldSearchTerm] = term
	return response
}

// BuildErrorResponse wraps a top-level failure message. A non-nil errors
// value carries the field-level validation mapping.
func BuildErrorResponse(message string, errors any) map[string]any {
	response := map[string]any{
		ResponseFieldStatus:  StatusError,
		ResponseFieldMessage: message,
	}
	if errors != nil {
		response[ResponseFieldErrors] = errors
	}
	return response
}
