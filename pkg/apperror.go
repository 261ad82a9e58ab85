// Package pkg holds the shared application error type used to translate
// domain failures into HTTP responses.
package pkg

// HTTPError is the JSON error body returned to clients. Internal causes are
// never serialized.

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AppError couples a stable error code and user-facing message with an
// optional internal cause and the HTTP status it maps to.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
