package validation

// CustomMessage returns the per-field message overrides, keyed by
// validator tag. Falls back to DefaultMessage when a field or tag has
// no entry.
func CustomMessage(field string) map[string]string {
	var customValidationMessages = map[string]map[string]string{
		"email": {
			"required": "Email is required",
			"email":    "Please enter a valid email",
		},
		"first_name": {
			"required": "First name is required",
			"min":      "First name must be at least 2 characters",
			"max":      "First name cannot exceed 50 characters",
			"alpha":    "First name may only contain letters",
		},
		"last_name": {
			"required": "Last name is required",
			"min":      "Last name must be at least 2 characters",
			"max":      "Last name cannot exceed 50 characters",
			"alpha":    "Last name may only contain letters",
		},
		"password": {
			"required": "Password is required",
			"min":      "Password must be at least 6 characters",
		},
		"university_name": {
			"required": "University name is required",
			"min":      "University name must be at least 3 characters",
			"max":      "University name cannot exceed 200 characters",
		},
		"gender": {
			"required": "Gender is required",
			"oneof":    "Gender must be Male, Female, or Other",
		},
		"year_joined": {
			"required": "Year joined is required",
			"joinyear": "Year joined must be after 1900 and not in the future",
		},
		"experience_years": {
			"gte": "Experience years cannot be negative",
		},
	}
	return customValidationMessages[field]
}
