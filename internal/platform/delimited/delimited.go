// Package delimited writes and reads length-prefixed protobuf records.
//
// Each record is the unsigned varint of the payload length followed by the
// encoded message. The format has no header, footer, or checksum; it is the
// framing protobuf libraries call "delimited".
package delimited

import (
	"bufio"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
)

// MaxRecordSize bounds the payload length a Reader accepts.
const MaxRecordSize = 64 << 20

// Write encodes m and writes its length prefix and payload to w. The record
// is fully written to w when Write returns nil.
func Write(w io.Writer, m proto.Message) error {
	if _, err := protodelim.MarshalTo(fullWriter{w}, m); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// fullWriter reports a short write that w accepted without an error.
type fullWriter struct {
	w io.Writer
}

func (f fullWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Reader reads records written by Write.
type Reader struct {
	r    *bufio.Reader
	opts protodelim.UnmarshalOptions
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		opts: protodelim.UnmarshalOptions{MaxSize: MaxRecordSize},
	}
}

// Next decodes the next record into m. It returns io.EOF when the input ends
// cleanly between records and io.ErrUnexpectedEOF when a record is cut short.
func (r *Reader) Next(m proto.Message) error {
	return r.opts.UnmarshalFrom(r.r, m)
}
