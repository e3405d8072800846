package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrAccountDisabled    ErrCode = "ACCOUNT_DISABLED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// Authorization
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrNotCourseFaculty ErrCode = "NOT_COURSE_FACULTY"
	ErrNotProfileOwner  ErrCode = "NOT_PROFILE_OWNER"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidDate    ErrCode = "INVALID_DATE"

	// Resources
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrDuplicateEmail    ErrCode = "DUPLICATE_EMAIL"
	ErrDuplicateRollNo   ErrCode = "DUPLICATE_ROLL_NUMBER"
	ErrDuplicateEmployee ErrCode = "DUPLICATE_EMPLOYEE_ID"
	ErrDuplicateCourse   ErrCode = "DUPLICATE_COURSE_CODE"
	ErrTimetableConflict ErrCode = "TIMETABLE_CONFLICT"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrAccountDisabled:
		return "Account is deactivated. Contact admin."
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid or expired."
	case ErrForbidden:
		return "You do not have permission to perform this action."
	case ErrNotCourseFaculty:
		return "You are not the assigned faculty for this course."
	case ErrNotProfileOwner:
		return "You may only modify your own profile."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidDate:
		return "Invalid date format, expected YYYY-MM-DD."
	case ErrNotFound:
		return "Resource not found."
	case ErrDuplicateEmail:
		return "A user with this email already exists."
	case ErrDuplicateRollNo:
		return "A student with this roll number already exists."
	case ErrDuplicateEmployee:
		return "A faculty member with this employee ID already exists."
	case ErrDuplicateCourse:
		return "A course with this code already exists."
	case ErrTimetableConflict:
		return "An active timetable slot already occupies this day, time and room."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
