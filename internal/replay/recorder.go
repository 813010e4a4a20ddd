// Package replay records game sessions to delimited-record files and reads
// them back.
//
// A recording is the Start request, the Start response, and then one
// request/response pair per Act exchange, in call order. Records carry no
// type tags; a record's schema follows from its position.
package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	"github.com/louisbranch/swoq/internal/platform/delimited"
)

// FileExt is the extension of recording files.
const FileExt = ".swoq"

const fileTimeLayout = "20060102-150405"

// Recorder mirrors Act exchanges to a recording.
type Recorder interface {
	Append(request *swoqv1.ActRequest, response *swoqv1.ActResponse) error
	Close() error
}

// Discard is the Recorder used when recording is disabled. It opens no file
// and does nothing.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Append(*swoqv1.ActRequest, *swoqv1.ActResponse) error { return nil }
func (discard) Close() error { return nil }

// File is a Recorder backed by a recording file it owns.
type File struct {
	path string

	mu     sync.Mutex
	file   *os.File
	closed bool
}

// Option configures Create.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to stamp the file name.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// FileName returns the recording file name for a session started by userName
// at the given local time.
func FileName(userName string, startedAt time.Time, gameID string) string {
	return fmt.Sprintf("%s - %s - %s%s", pathSafe(userName), startedAt.Format(fileTimeLayout), pathSafe(gameID), FileExt)
}

// pathSafe keeps a name inside a single path element.
func pathSafe(name string) string {
	return strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(name)
}

// Create starts a recording in dir for the session described by the Start
// exchange. The directory is created if needed. An existing file with the
// same name is never truncated; Create fails instead. When the Start exchange
// cannot be written the new file is removed.
func Create(dir, userName string, request *swoqv1.StartRequest, response *swoqv1.StartResponse, opts ...Option) (*File, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	folder, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve replays folder: %w", err)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("create replays folder: %w", err)
	}

	path := filepath.Join(folder, FileName(userName, o.now(), response.GetGameID()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create replay file: %w", err)
	}

	if err := delimited.Write(file, request); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("record start request: %w", err)
	}
	if err := delimited.Write(file, response); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("record start response: %w", err)
	}
	return &File{path: path, file: file}, nil
}

// Path returns the absolute path of the recording file.
func (f *File) Path() string {
	return f.path
}

// Append records one Act exchange. A failed Append leaves the recorder usable
// for later exchanges, although the file may hold a partial record.
func (f *File) Append(request *swoqv1.ActRequest, response *swoqv1.ActResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return fmt.Errorf("append to replay %s: %w", f.path, os.ErrClosed)
	}
	if err := delimited.Write(f.file, request); err != nil {
		return fmt.Errorf("record act request: %w", err)
	}
	if err := delimited.Write(f.file, response); err != nil {
		return fmt.Errorf("record act response: %w", err)
	}
	return nil
}

// Close flushes and closes the recording file. It is safe to call more than
// once.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	syncErr := f.file.Sync()
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("close replay %s: %w", f.path, err)
	}
	if syncErr != nil {
		return fmt.Errorf("sync replay %s: %w", f.path, syncErr)
	}
	return nil
}
