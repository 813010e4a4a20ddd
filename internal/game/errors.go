package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	apperrors "github.com/louisbranch/swoq/internal/platform/errors"
)

// Metadata keys on rejected Start and Act errors.
const (
	MetaResult     = "result"
	MetaResultCode = "result_code"
	MetaAttempts   = "attempts"
)

func startRejected(result swoqv1.StartResult) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeStartRejected,
		fmt.Sprintf("start failed (result %s)", result),
		resultMetadata(result.String(), int32(result)))
}

func actRejected(result swoqv1.ActResult) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeActRejected,
		fmt.Sprintf("act failed (result %s)", result),
		resultMetadata(result.String(), int32(result)))
}

func resultMetadata(name string, code int32) map[string]string {
	return map[string]string{
		MetaResult:     name,
		MetaResultCode: strconv.FormatInt(int64(code), 10),
	}
}

// StartResultOf returns the result carried by a rejected Start error.
func StartResultOf(err error) (swoqv1.StartResult, bool) {
	code, ok := resultCode(err, apperrors.CodeStartRejected)
	return swoqv1.StartResult(code), ok
}

// ActResultOf returns the result carried by a rejected Act error.
func ActResultOf(err error) (swoqv1.ActResult, bool) {
	code, ok := resultCode(err, apperrors.CodeActRejected)
	return swoqv1.ActResult(code), ok
}

func resultCode(err error, want apperrors.Code) (int32, bool) {
	var e *apperrors.Error
	if !errors.As(err, &e) || e.Code != want {
		return 0, false
	}
	v, convErr := strconv.ParseInt(e.Metadata[MetaResultCode], 10, 32)
	if convErr != nil {
		return 0, false
	}
	return int32(v), true
}
