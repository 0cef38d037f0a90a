package httperr

import "errors"

// Codes returned by use cases and translated to HTTP by the handlers.
const (
	CodeUserExists         = "user_exists"
	CodeDoctorExists       = "doctor_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidRefresh     = "invalid_refresh_token"
	CodeUserNotFound       = "user_not_found"
	CodeInvalidDoctor      = "invalid_doctor"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a BusinessError anywhere in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
