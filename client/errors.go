package client

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	KindInvalidArgument  ErrorKind = "InvalidArgument"
	KindTimeout          ErrorKind = "Timeout"
	KindTransportFailure ErrorKind = "TransportFailure"
	KindResponseFormat   ErrorKind = "ResponseFormat"
)

// DecodeReason explains why a response body could not be decoded.
type DecodeReason string

const (
	ReasonSyntax   DecodeReason = "syntax"
	ReasonEncoding DecodeReason = "encoding"
	ReasonUnknown  DecodeReason = "unknown"
)

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrTimeout         = &Error{Kind: KindTimeout}
	ErrTransport       = &Error{Kind: KindTransportFailure}
	ErrResponseFormat  = &Error{Kind: KindResponseFormat}
)

// Error is returned for every condition that prevents a completed exchange with the
// gateway. Declines reported by the gateway are carried in Response instead.
type Error struct {
	Kind    ErrorKind
	Message string
	// Body and StatusCode are set for ResponseFormat errors.
	Body       []byte
	StatusCode int
	Reason     DecodeReason
	err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	if e.Kind == KindResponseFormat && len(e.Body) > 0 {
		msg = fmt.Sprintf("%s. data: %s", msg, e.Body)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches any error of the same kind, so errors.Is(err, ErrTimeout) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func TimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Message: "gateway request timed out", err: err}
}

func TransportError(err error) *Error {
	return &Error{Kind: KindTransportFailure, Message: "gateway request failed", err: err}
}

func ResponseFormatError(reason DecodeReason, code int, body []byte, err error) *Error {
	var msg string
	switch reason {
	case ReasonSyntax:
		msg = "JSON syntax error"
	case ReasonEncoding:
		msg = "JSON data invalid, malformed UTF-8 characters"
	default:
		msg = "JSON parse failed, unknown error"
	}
	return &Error{Kind: KindResponseFormat, Message: msg, StatusCode: code, Body: body, Reason: reason, err: err}
}

func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsTimeout(err error) bool         { return errors.Is(err, ErrTimeout) }
func IsTransport(err error) bool       { return errors.Is(err, ErrTransport) }
func IsResponseFormat(err error) bool  { return errors.Is(err, ErrResponseFormat) }
