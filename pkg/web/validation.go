package web

import (
	"github.com/go-playground/validator/v10"
)

// GetErrorMsg renders the first validation error into a client facing message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]

	return fe.Field() + tagMsg(fe)
}

func tagMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "alphanum":
		return " must contain only letters and digits"
	case "email":
		return " must be a valid email"
	}

	return " is invalid"
}
