package replay

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/louisbranch/swoq/internal/platform/delimited"
	"google.golang.org/protobuf/proto"
)

func TestReaderDecodesByPosition(t *testing.T) {
	var buf bytes.Buffer
	request, response := startExchange("game-7")
	actRequest, actResponse := actExchange(4)
	for _, m := range []proto.Message{request, response, actRequest, actResponse} {
		if err := delimited.Write(&buf, m); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	reader := NewReader(&buf)
	gotRequest, gotResponse, err := reader.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if gotRequest.GetUserName() != "Ada" || gotRequest.GetLevel() != 1 {
		t.Fatalf("unexpected start request %+v", gotRequest)
	}
	if gotResponse.GetGameID() != "game-7" {
		t.Fatalf("expected game-7, got %q", gotResponse.GetGameID())
	}

	exchange, err := reader.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if exchange.Request.GetGameID() != "game-1" || exchange.Response.GetState().GetTick() != 4 {
		t.Fatalf("unexpected exchange %+v", exchange)
	}
	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderRequiresStartFirst(t *testing.T) {
	reader := NewReader(bytes.NewReader(nil))
	if _, err := reader.Next(); err == nil {
		t.Fatal("expected error before start")
	}
}

func TestReaderReportsHalfExchange(t *testing.T) {
	var buf bytes.Buffer
	request, response := startExchange("game-1")
	actRequest, _ := actExchange(1)
	for _, m := range []proto.Message{request, response, actRequest} {
		if err := delimited.Write(&buf, m); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	reader := NewReader(&buf)
	if _, _, err := reader.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := reader.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	reader := NewReader(bytes.NewReader(nil))
	if _, _, err := reader.Start(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF for empty recording, got %v", err)
	}
}
