package model

import "errors"

// ErrorKind classifies a failed submission.
type ErrorKind string

const (
	KindNetworkFailure       ErrorKind = "NetworkFailure"
	KindInvalidResponseShape ErrorKind = "InvalidResponseShape"
	KindUnknownClass         ErrorKind = "UnknownClass"

	// KindRenderFailure is a local chart rendering failure, not a service error.
	KindRenderFailure ErrorKind = "RenderFailure"
)

// Sentinels for errors.Is; a *PredictError matches the sentinel of its kind.
var (
	ErrNetworkFailure       = errors.New("network failure")
	ErrInvalidResponseShape = errors.New("invalid response shape")
	ErrUnknownClass         = errors.New("unknown class")
	ErrRenderFailure        = errors.New("render failure")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetworkFailure:
		return ErrNetworkFailure
	case KindInvalidResponseShape:
		return ErrInvalidResponseShape
	case KindUnknownClass:
		return ErrUnknownClass
	case KindRenderFailure:
		return ErrRenderFailure
	}
	return nil
}

// PredictError is a classified prediction failure.
type PredictError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewPredictError(kind ErrorKind, message string, err error) *PredictError {
	return &PredictError{Kind: kind, Message: message, Err: err}
}

func (e *PredictError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *PredictError) Unwrap() error { return e.Err }

func (e *PredictError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of a classified error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var pe *PredictError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
