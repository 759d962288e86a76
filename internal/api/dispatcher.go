// Package api implements the request dispatcher: a TCP listener that serves
// exactly one JSON request per connection, routes it by its "resource/verb"
// action string and always answers before closing the connection.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/api/handler"
	"github.com/hitforum/forum-system/internal/api/metrics"
	"github.com/hitforum/forum-system/internal/api/protocol"
	"github.com/hitforum/forum-system/internal/core/ports"
)

const defaultReadTimeout = 30 * time.Second

// Dispatcher accepts connections concurrently; each runs on its own
// goroutine with no cross-connection coordination. All shared state lives
// behind the entity stores.
type Dispatcher struct {
	addr        string
	readTimeout time.Duration

	users    *handler.UserHandler
	posts    *handler.PostHandler
	comments *handler.CommentHandler

	log zerolog.Logger

	mu  sync.Mutex
	lis net.Listener
	wg  sync.WaitGroup
}

func NewDispatcher(addr string, readTimeout time.Duration, users ports.UserService, posts ports.PostService, comments ports.CommentService, log zerolog.Logger) *Dispatcher {
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	return &Dispatcher{
		addr:        addr,
		readTimeout: readTimeout,
		users:       handler.NewUserHandler(users),
		posts:       handler.NewPostHandler(posts),
		comments:    handler.NewCommentHandler(comments),
		log:         log,
	}
}

// ListenAndServe blocks accepting connections until ctx is cancelled, then
// waits for in-flight connections to finish.
func (d *Dispatcher) ListenAndServe(ctx context.Context) error {
	lis, err := net.Listen("tcp", d.addr)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.lis = lis
	d.mu.Unlock()

	go func() {
		<-ctx.Done()
		lis.Close()
	}()

	d.log.Info().Str("addr", lis.Addr().String()).Msg("dispatcher listening")

	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			d.log.Warn().Err(err).Msg("accept failed")
			continue
		}
		d.wg.Add(1)
		go d.handleConn(ctx, conn)
	}

	d.wg.Wait()
	d.log.Info().Msg("dispatcher stopped")
	return nil
}

// Addr returns the bound listener address, for tests that listen on :0.
func (d *Dispatcher) Addr() net.Addr {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lis == nil {
		return nil
	}
	return d.lis.Addr()
}

// handleConn serves one request and always writes exactly one response
// before closing, whatever went wrong.
func (d *Dispatcher) handleConn(ctx context.Context, conn net.Conn) {
	defer d.wg.Done()
	defer conn.Close()

	metrics.OpenConnections.Inc()
	defer metrics.OpenConnections.Dec()
	start := time.Now()

	// bound how long an idle client may hold the connection before
	// delivering its request
	_ = conn.SetReadDeadline(time.Now().Add(d.readTimeout))

	var req protocol.Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		d.log.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("undecodable request")
		d.reply(conn, "malformed", protocol.ClientError("Invalid request payload."), start)
		return
	}

	d.log.Debug().Str("action", req.Action).Str("remote", conn.RemoteAddr().String()).Msg("request received")
	d.reply(conn, req.Action, d.route(ctx, req), start)
}

// route picks the handler for the action. A panic anywhere below becomes a
// server-error response instead of a dead connection.
func (d *Dispatcher) route(ctx context.Context, req protocol.Request) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("action", req.Action).Msg("request handler panicked")
			resp = protocol.ServerError()
		}
	}()

	resource, verb, ok := strings.Cut(req.Action, "/")
	if !ok || resource == "" || verb == "" {
		return protocol.ClientError("Invalid action format.")
	}

	switch strings.ToLower(resource) {
	case "user":
		return d.users.Handle(ctx, strings.ToLower(verb), req.Body)
	case "post":
		return d.posts.Handle(ctx, strings.ToLower(verb), req.Body)
	case "comment":
		return d.comments.Handle(ctx, strings.ToLower(verb), req.Body)
	default:
		return protocol.ClientError("Unknown resource: " + resource)
	}
}

func (d *Dispatcher) reply(conn net.Conn, action string, resp protocol.Response, start time.Time) {
	_ = conn.SetWriteDeadline(time.Now().Add(d.readTimeout))
	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		d.log.Error().Err(err).Str("action", action).Msg("failed to write response")
	}
	metrics.RequestsTotal.WithLabelValues(action, strconv.Itoa(resp.Status)).Inc()
	metrics.RequestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}
