// Package game drives a client session against the SWOQ game service.
//
// A Connection admits the user to a game with Start, waiting out the quest
// queue when the server reports it full. Start returns a Game, which submits
// one turn per Act call and keeps the latest state the server returned.
// When a replays folder is configured every exchange is mirrored to a
// recording file owned by the Game.
//
// Calls on one Game must be serialized by the caller.
package game

import (
	"context"
	"errors"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	apperrors "github.com/louisbranch/swoq/internal/platform/errors"
	"github.com/louisbranch/swoq/internal/platform/timeouts"
	"github.com/louisbranch/swoq/internal/replay"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/louisbranch/swoq/internal/game")

// Game is one admitted game session. Its identity and map metadata are fixed
// at Start; only the state changes, and only after a successful Act.
type Game struct {
	client   swoqv1.GameServiceClient
	recorder replay.Recorder
	logf     func(string, ...any)

	id              string
	mapWidth        int32
	mapHeight       int32
	visibilityRange int32
	seed            *int32

	state *swoqv1.State
}

func newGame(client swoqv1.GameServiceClient, response *swoqv1.StartResponse, recorder replay.Recorder, logf func(string, ...any)) *Game {
	g := &Game{
		client:          client,
		recorder:        recorder,
		logf:            logf,
		id:              response.GetGameID(),
		mapWidth:        response.GetMapWidth(),
		mapHeight:       response.GetMapHeight(),
		visibilityRange: response.GetVisibilityRange(),
		state:           response.GetState(),
	}
	if response.HasSeed() {
		seed := response.GetSeed()
		g.seed = &seed
	}
	return g
}

// ID returns the server-issued game identifier.
func (g *Game) ID() string { return g.id }

// MapWidth returns the map width in tiles.
func (g *Game) MapWidth() int32 { return g.mapWidth }

// MapHeight returns the map height in tiles.
func (g *Game) MapHeight() int32 { return g.mapHeight }

// VisibilityRange returns how many tiles around a player the state reveals.
func (g *Game) VisibilityRange() int32 { return g.visibilityRange }

// Seed returns the map seed the server reported, if any.
func (g *Game) Seed() (int32, bool) {
	if g.seed == nil {
		return 0, false
	}
	return *g.seed, true
}

// State returns the state from the latest successful exchange.
func (g *Game) State() *swoqv1.State { return g.state }

// RecordingPath returns the recording file path, or "" when recording is
// disabled.
func (g *Game) RecordingPath() string {
	if file, ok := g.recorder.(*replay.File); ok {
		return file.Path()
	}
	return ""
}

// Act submits action for the first player.
func (g *Game) Act(ctx context.Context, action swoqv1.DirectedAction) error {
	return g.act(ctx, swoqv1.ActRequestBuilder{GameID: g.id, Action: &action}.Build())
}

// Act2 submits actions for both players.
func (g *Game) Act2(ctx context.Context, action, action2 swoqv1.DirectedAction) error {
	return g.act(ctx, swoqv1.ActRequestBuilder{GameID: g.id, Action: &action, Action2: &action2}.Build())
}

// act performs one exchange. A transport failure is not recorded, since no
// response exists to pair with the request. A completed exchange is recorded
// before its result is inspected.
func (g *Game) act(ctx context.Context, request *swoqv1.ActRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "game.Act", trace.WithAttributes(attribute.String("swoq.game_id", g.id)))
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	response, err := g.client.Act(callCtx, request)
	if err != nil {
		transportErr := apperrors.FromGRPC("act", err)
		failSpan(span, transportErr)
		return transportErr
	}

	var recordErr error
	if err := g.recorder.Append(request, response); err != nil {
		g.logf("record act for game %s: %v", g.id, err)
		recordErr = apperrors.Wrap(apperrors.CodeRecording, "act: record exchange: "+err.Error(), err)
	}

	result := response.GetResult()
	span.SetAttributes(attribute.String("swoq.act_result", result.String()))
	if result != swoqv1.ActResultOK {
		rejected := actRejected(result)
		failSpan(span, rejected)
		if recordErr != nil {
			return errors.Join(rejected, recordErr)
		}
		return rejected
	}

	g.state = response.GetState()
	span.SetAttributes(attribute.Int("swoq.tick", int(g.state.GetTick())))
	if recordErr != nil {
		failSpan(span, recordErr)
		return recordErr
	}
	return nil
}

// Close releases the recording file, if any. It is safe to call more than
// once, including after a failed Act.
func (g *Game) Close() error {
	return g.recorder.Close()
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
}
