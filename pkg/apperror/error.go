package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func RequestTooLarge(message string) *AppError {
	return New(http.StatusRequestEntityTooLarge, message, nil)
}

func ServiceUnavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error. Please try again.", err)
}
