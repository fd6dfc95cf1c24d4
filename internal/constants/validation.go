package constants

// Field Length Limits
const (
	MinPasswordLength   = 6
	MaxPasswordLength   = 100
	MinNameLength       = 2
	MaxNameLength       = 50
	MinUniversityLength = 3
	MaxUniversityLength = 200
	MaxDepartmentLength = 100
	MaxQualificationLen = 100
	MaxSpecializationLn = 500
	MaxEmailLength      = 255
)

// Year bounds for the teachers table (exclusive lower bound)
const (
	MinJoinYear = 1900
)

// Gender enumeration
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
