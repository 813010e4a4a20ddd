// Package replay parses replay command flags and summarizes a recording file.
package replay

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	entrypoint "github.com/louisbranch/swoq/internal/platform/cmd"
	"github.com/louisbranch/swoq/internal/replay"
)

// Config holds replay command configuration.
type Config struct {
	File    string `env:"SWOQ_REPLAY_FILE"`
	Verbose bool   `env:"SWOQ_REPLAY_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.File, "file", cfg.File, "path to a .swoq recording")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print every recorded exchange")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads the recording named by cfg and writes a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.File == "" {
		return errors.New("recording file is required")
	}
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReplay, func(context.Context) error {
		recording, err := replay.ReadFile(cfg.File)
		if err != nil {
			return err
		}
		return Summarize(out, recording, cfg.Verbose)
	})
}

// Summarize writes the session metadata, the act count, rejected act results
// and the last recorded state.
func Summarize(out io.Writer, recording *replay.Recording, verbose bool) error {
	start, admitted := recording.StartRequest, recording.StartResponse
	p := &printer{out: out}
	p.printf("game:      %s\n", admitted.GetGameID())
	p.printf("user:      %s (%s)\n", start.GetUserName(), start.GetUserID())
	p.printf("result:    %s\n", admitted.GetResult())
	if admitted.HasSeed() {
		p.printf("seed:      %d\n", admitted.GetSeed())
	}
	p.printf("map:       %dx%d, visibility %d\n", admitted.GetMapHeight(), admitted.GetMapWidth(), admitted.GetVisibilityRange())
	p.printf("acts:      %d\n", len(recording.Acts))

	last := admitted.GetState()
	rejected := make(map[swoqv1.ActResult]int)
	for i, exchange := range recording.Acts {
		result := exchange.Response.GetResult()
		if result == swoqv1.ActResultOK {
			last = exchange.Response.GetState()
		} else {
			rejected[result]++
		}
		if verbose {
			p.printf("  %4d  %-28s %-28s %s\n", i+1, exchange.Request.GetAction(), exchange.Request.GetAction2(), result)
		}
	}

	results := make([]swoqv1.ActResult, 0, len(rejected))
	for result := range rejected {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	for _, result := range results {
		p.printf("rejected:  %s x%d\n", result, rejected[result])
	}
	p.printf("final:     tick %d, level %d, %s\n", last.GetTick(), last.GetLevel(), last.GetStatus())
	return p.err
}

// printer keeps the first write error so callers check once.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}
