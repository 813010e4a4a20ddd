package config

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionalInt32 is an int32 setting that may be left unset. It parses from
// environment variables through encoding.TextUnmarshaler and from flags
// through flag.Value.
type OptionalInt32 struct {
	value int32
	set   bool
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves the
// value unset.
func (o *OptionalInt32) UnmarshalText(text []byte) error {
	return o.Set(string(text))
}

// Set implements flag.Value.
func (o *OptionalInt32) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*o = OptionalInt32{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("parse optional int32 %q: %w", s, err)
	}
	*o = OptionalInt32{value: int32(v), set: true}
	return nil
}

// String implements flag.Value.
func (o *OptionalInt32) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.FormatInt(int64(o.value), 10)
}

// Ptr returns the value, or nil when unset.
func (o OptionalInt32) Ptr() *int32 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
