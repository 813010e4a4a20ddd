// Package errors provides the structured error type returned by the game
// client.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Transport errors: the RPC itself failed.
	CodeTransport Code = "TRANSPORT"

	// Protocol errors: the RPC completed with a non-success result.
	CodeStartRejected Code = "START_REJECTED"
	CodeActRejected   Code = "ACT_REJECTED"
	CodeQueueTimeout  Code = "QUEUE_TIMEOUT"

	// Recording errors
	CodeRecording Code = "RECORDING"

	// Configuration errors
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

