package pkg

// AppError is the transport-facing error shape shared by every handler.
//
// Code is a stable machine-checkable discriminator, Message is safe for end
// users, Err keeps the internal cause for logs only and is never serialized.
// Details carries optional structured context (e.g. allowed next statuses,
// available vs requested stock).

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    map[string]any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches structured context to the serialized error body.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// HTTPError is the JSON body returned to clients. Internal causes stay out.
type HTTPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
