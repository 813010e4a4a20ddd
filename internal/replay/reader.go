package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	"github.com/louisbranch/swoq/internal/platform/delimited"
	"google.golang.org/protobuf/proto"
)

// Exchange is one recorded Act call.
type Exchange struct {
	Request  *swoqv1.ActRequest
	Response *swoqv1.ActResponse
}

// Recording is a fully decoded recording file.
type Recording struct {
	StartRequest  *swoqv1.StartRequest
	StartResponse *swoqv1.StartResponse
	Acts          []Exchange
}

// Reader decodes a recording stream record by record.
type Reader struct {
	records *delimited.Reader
	started bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{records: delimited.NewReader(r)}
}

// Start decodes the Start exchange. It must be called once, before Next.
func (r *Reader) Start() (*swoqv1.StartRequest, *swoqv1.StartResponse, error) {
	if r.started {
		return nil, nil, errors.New("start exchange already read")
	}
	request := new(swoqv1.StartRequest)
	if err := r.decode(request, false); err != nil {
		return nil, nil, fmt.Errorf("read start request: %w", err)
	}
	response := new(swoqv1.StartResponse)
	if err := r.decode(response, true); err != nil {
		return nil, nil, fmt.Errorf("read start response: %w", err)
	}
	r.started = true
	return request, response, nil
}

// Next decodes the next Act exchange. It returns io.EOF after the last
// complete exchange.
func (r *Reader) Next() (Exchange, error) {
	if !r.started {
		return Exchange{}, errors.New("start exchange not read")
	}
	request := new(swoqv1.ActRequest)
	if err := r.decode(request, false); err != nil {
		if errors.Is(err, io.EOF) {
			return Exchange{}, io.EOF
		}
		return Exchange{}, fmt.Errorf("read act request: %w", err)
	}
	response := new(swoqv1.ActResponse)
	if err := r.decode(response, true); err != nil {
		return Exchange{}, fmt.Errorf("read act response: %w", err)
	}
	return Exchange{Request: request, Response: response}, nil
}

// decode reads one record into m. A clean end of input is reported as io.EOF
// only when it falls between exchanges; inside an exchange it is truncation.
func (r *Reader) decode(m proto.Message, paired bool) error {
	err := r.records.Next(m)
	if paired && errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadFile decodes the recording at path.
func ReadFile(path string) (*Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer file.Close()

	reader := NewReader(file)
	request, response, err := reader.Start()
	if err != nil {
		return nil, err
	}
	recording := &Recording{StartRequest: request, StartResponse: response}
	for {
		exchange, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return recording, nil
		}
		if err != nil {
			return nil, fmt.Errorf("exchange %d: %w", len(recording.Acts)+1, err)
		}
		recording.Acts = append(recording.Acts, exchange)
	}
}
