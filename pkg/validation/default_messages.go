package validation

import "fmt"

// DefaultMessage builds a generic message for a failed validator tag.
func DefaultMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, param)
	case "alpha":
		return fmt.Sprintf("%s may only contain letters", field)
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and digits", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "joinyear":
		return fmt.Sprintf("%s must be a valid joining year", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}
