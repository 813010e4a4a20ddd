package replay

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	"github.com/louisbranch/swoq/internal/replay"
)

func writeRecording(t *testing.T) string {
	t.Helper()
	gameID := "game-7"
	seed, width, height := int32(13), int32(20), int32(10)
	file, err := replay.Create(t.TempDir(), "Ada",
		swoqv1.StartRequestBuilder{UserID: "user-1", UserName: "Ada", Seed: &seed}.Build(),
		swoqv1.StartResponseBuilder{
			Result:    swoqv1.StartResultOK,
			GameID:    &gameID,
			Seed:      &seed,
			MapWidth:  &width,
			MapHeight: &height,
			State:     swoqv1.StateBuilder{Level: 1}.Build(),
		}.Build(),
	)
	if err != nil {
		t.Fatalf("create recording: %v", err)
	}

	east, south := swoqv1.DirectedActionMoveEast, swoqv1.DirectedActionMoveSouth
	exchanges := []struct {
		action   *swoqv1.DirectedAction
		response *swoqv1.ActResponse
	}{
		{&east, swoqv1.ActResponseBuilder{Result: swoqv1.ActResultOK, State: swoqv1.StateBuilder{Tick: 1, Level: 1}.Build()}.Build()},
		{&south, swoqv1.ActResponseBuilder{Result: swoqv1.ActResultMoveNotAllowed, State: swoqv1.StateBuilder{Tick: 1, Level: 1}.Build()}.Build()},
		{&east, swoqv1.ActResponseBuilder{Result: swoqv1.ActResultOK, State: swoqv1.StateBuilder{Tick: 2, Level: 1, Status: swoqv1.GameStatusFinishedSuccess}.Build()}.Build()},
	}
	for _, exchange := range exchanges {
		request := swoqv1.ActRequestBuilder{GameID: gameID, Action: exchange.action}.Build()
		if err := file.Append(request, exchange.response); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return file.Path()
}

func TestParseConfigFlag(t *testing.T) {
	t.Setenv("SWOQ_REPLAY_FILE", "from-env.swoq")
	cfg, err := ParseConfig(flag.NewFlagSet("replay", flag.ContinueOnError), []string{"-file", "from-flag.swoq"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.File != "from-flag.swoq" {
		t.Fatalf("expected flag file, got %q", cfg.File)
	}
}

func TestRunRequiresFile(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Setenv("SWOQ_OTEL_ENDPOINT", "")
	err := Run(context.Background(), Config{File: filepath.Join(t.TempDir(), "missing.swoq")}, nil)
	if err == nil {
		t.Fatal("expected open error")
	}
}

func TestRunSummarizesRecording(t *testing.T) {
	t.Setenv("SWOQ_OTEL_ENDPOINT", "")
	path := writeRecording(t)

	var out bytes.Buffer
	if err := Run(context.Background(), Config{File: path}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	summary := out.String()
	for _, want := range []string{
		"game:      game-7",
		"user:      Ada (user-1)",
		"seed:      13",
		"map:       10x20",
		"acts:      3",
		"rejected:  ACT_RESULT_MOVE_NOT_ALLOWED x1",
		"final:     tick 2, level 1, GAME_STATUS_FINISHED_SUCCESS",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("expected %q in summary:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "DIRECTED_ACTION") {
		t.Fatalf("expected no exchange lines without verbose:\n%s", summary)
	}
}

func TestSummarizeVerboseListsExchanges(t *testing.T) {
	recording, err := replay.ReadFile(writeRecording(t))
	if err != nil {
		t.Fatalf("read recording: %v", err)
	}
	var out bytes.Buffer
	if err := Summarize(&out, recording, true); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got := strings.Count(out.String(), "DIRECTED_ACTION_MOVE_"); got != 3 {
		t.Fatalf("expected 3 exchange lines, got %d:\n%s", got, out.String())
	}
}
