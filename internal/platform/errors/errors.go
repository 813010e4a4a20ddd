package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Metadata keys set by FromGRPC.
const (
	MetaGRPCCode    = "grpc_code"
	MetaGRPCMessage = "grpc_message"
	MetaReason      = "reason"
	MetaDomain      = "domain"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional context
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithMetadata creates a domain error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// MetadataOf returns the metadata value for key from the first *Error in
// err's chain.
func MetadataOf(err error, key string) (string, bool) {
	var e *Error
	if !stderrors.As(err, &e) || e.Metadata == nil {
		return "", false
	}
	v, ok := e.Metadata[key]
	return v, ok
}

// FromGRPC wraps a failed RPC as a CodeTransport error. The gRPC status stays
// reachable through the cause, so status.Code(err) still reports it. An
// ErrorInfo detail, when the server attaches one, is copied into the
// metadata.
func FromGRPC(op string, err error) *Error {
	st := status.Convert(err)
	metadata := map[string]string{
		MetaGRPCCode:    st.Code().String(),
		MetaGRPCMessage: st.Message(),
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			metadata[MetaReason] = info.GetReason()
			metadata[MetaDomain] = info.GetDomain()
			break
		}
	}
	message := fmt.Sprintf("%s: rpc failed: %s: %s", op, st.Code(), st.Message())
	return WrapWithMetadata(CodeTransport, message, metadata, err)
}
