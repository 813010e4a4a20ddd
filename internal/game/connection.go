package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/louisbranch/swoq/internal/api/swoqv1"
	apperrors "github.com/louisbranch/swoq/internal/platform/errors"
	platformgrpc "github.com/louisbranch/swoq/internal/platform/grpc"
	"github.com/louisbranch/swoq/internal/platform/timeouts"
	"github.com/louisbranch/swoq/internal/replay"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	gogrpc "google.golang.org/grpc"
)

// errQueued marks a Start attempt that found the quest queue full.
var errQueued = errors.New("quest queued")

// Identity is the user a Connection starts games for. ReplaysDir enables
// recording when non-empty.
type Identity struct {
	UserID     string
	UserName   string
	ReplaysDir string
}

// Config configures Dial.
type Config struct {
	Identity
	// Host is the game server address, for example "localhost:5009".
	Host string
	// WaitForHealth blocks Dial until the server health check serves.
	WaitForHealth bool
}

// StartOptions selects the game to start and how to wait out the queue.
type StartOptions struct {
	// Level and Seed are sent only when set.
	Level *int32
	Seed  *int32
	// QueueRetryInterval is the pause between attempts while queued.
	QueueRetryInterval time.Duration
	// MaxAttempts bounds the Start attempts; zero retries until ctx ends.
	MaxAttempts uint
}

// Connection starts games for one user identity. It may be reused for
// sequential sessions.
type Connection struct {
	client   swoqv1.GameServiceClient
	conn     *gogrpc.ClientConn
	identity Identity
	logf     func(string, ...any)
	now      func() time.Time
}

// Option configures a Connection.
type Option func(*Connection)

// WithLogger sets the printf-style logger. The default is log.Printf.
func WithLogger(logf func(string, ...any)) Option {
	return func(c *Connection) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// WithClock sets the clock used to name recording files.
func WithClock(now func() time.Time) Option {
	return func(c *Connection) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConnection wraps an existing game service client.
func NewConnection(client swoqv1.GameServiceClient, identity Identity, opts ...Option) *Connection {
	c := &Connection{
		client:   client,
		identity: identity,
		logf:     log.Printf,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial creates a Connection to cfg.Host. The transport connects lazily
// unless cfg.WaitForHealth is set.
func Dial(ctx context.Context, cfg Config, opts ...Option) (*Connection, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "game server host is required")
	}
	if strings.TrimSpace(cfg.UserID) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "user id is required")
	}

	c := NewConnection(nil, cfg.Identity, opts...)
	var (
		conn *gogrpc.ClientConn
		err  error
	)
	if cfg.WaitForHealth {
		conn, err = platformgrpc.DialWithHealth(ctx, host, timeouts.GRPCDial, c.logf)
	} else {
		conn, err = platformgrpc.NewClient(host)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fmt.Sprintf("dial game server %s: %v", host, err), err)
	}
	c.conn = conn
	c.client = swoqv1.NewGameServiceClient(conn)
	return c, nil
}

// Close releases the transport opened by Dial. Games started on the
// connection cannot act afterwards.
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	return conn.Close()
}

// Start admits the user to a game. While the server reports the quest queue
// full the identical request is resent every QueueRetryInterval. A transport
// failure ends the wait immediately.
func (c *Connection) Start(ctx context.Context, opts StartOptions) (*Game, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "game.Start", trace.WithAttributes(attribute.String("swoq.user_id", c.identity.UserID)))
	defer span.End()

	request := swoqv1.StartRequestBuilder{
		UserID:   c.identity.UserID,
		UserName: c.identity.UserName,
		Level:    opts.Level,
		Seed:     opts.Seed,
	}.Build()
	response, err := c.admit(ctx, request, opts)
	if err != nil {
		failSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("swoq.game_id", response.GetGameID()))

	recorder := replay.Discard
	if c.identity.ReplaysDir != "" {
		file, err := replay.Create(c.identity.ReplaysDir, c.identity.UserName, request, response, replay.WithClock(c.now))
		if err != nil {
			recordErr := apperrors.Wrap(apperrors.CodeRecording, "start: create recording: "+err.Error(), err)
			failSpan(span, recordErr)
			return nil, recordErr
		}
		c.logf("recording game %s to %s", response.GetGameID(), file.Path())
		recorder = file
	}
	return newGame(c.client, response, recorder, c.logf), nil
}

func (c *Connection) admit(ctx context.Context, request *swoqv1.StartRequest, opts StartOptions) (*swoqv1.StartResponse, error) {
	attempts := 0
	attempt := func() (*swoqv1.StartResponse, error) {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()
		response, err := c.client.Start(callCtx, request)
		if err != nil {
			return nil, backoff.Permanent(apperrors.FromGRPC("start", err))
		}
		if response.GetResult() == swoqv1.StartResultQuestQueued {
			return nil, errQueued
		}
		return response, nil
	}

	retry := []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(opts.QueueRetryInterval)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(_ error, next time.Duration) {
			c.logf("quest queued, retrying in %s", next)
		}),
	}
	if opts.MaxAttempts > 0 {
		retry = append(retry, backoff.WithMaxTries(opts.MaxAttempts))
	}

	response, err := backoff.Retry(ctx, attempt, retry...)
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	switch {
	case err == nil:
	case errors.Is(err, errQueued):
		return nil, apperrors.WithMetadata(apperrors.CodeQueueTimeout,
			fmt.Sprintf("start: still queued after %d attempts", attempts),
			map[string]string{MetaAttempts: strconv.Itoa(attempts)})
	case apperrors.CodeOf(err) == apperrors.CodeTransport:
		return nil, err
	default:
		return nil, apperrors.WrapWithMetadata(apperrors.CodeQueueTimeout,
			fmt.Sprintf("start: queue wait ended after %d attempts: %v", attempts, err),
			map[string]string{MetaAttempts: strconv.Itoa(attempts)}, err)
	}

	if result := response.GetResult(); result != swoqv1.StartResultOK {
		return nil, startRejected(result)
	}
	return response, nil
}
