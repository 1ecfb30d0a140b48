package lsp

import (
	"context"
	"encoding/json"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/debug"
)

func ApplyRequestToZerolog(ctx context.Context, req *jrpc2.Request) context.Context {
	return zerolog.Ctx(ctx).With().Str("rpc_method", req.Method()).Str("rpc_id", req.ID()).Logger().WithContext(ctx)
}

// RPCLogger logs every request the server receives and every response it
// sends.
type RPCLogger struct{}

var _ jrpc2.RPCLogger = (*RPCLogger)(nil)

func (me *RPCLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	zerolog.Ctx(ctx).Debug().
		Str("rpc_params", req.ParamString()).
		Str("rpc_id", req.ID()).
		Str("rpc_method", req.Method()).
		Msg("client request")
}

func (me *RPCLogger) LogResponse(ctx context.Context, res *jrpc2.Response) {
	ev := zerolog.Ctx(ctx).Debug().Str("rpc_id", res.ID())
	if err := res.Error(); err != nil {
		ev = ev.Str("rpc_error", err.Error())
	} else {
		ev = ev.Str("rpc_result", res.ResultString())
	}
	ev.Msg("server response")
}

// logWriter turns zerolog JSON lines into window/logMessage notifications.
// Lines are queued and sent from pump; jrpc2 may log while holding its own
// locks, and a push from inside that would deadlock.
type logWriter struct {
	server *Server
	queue  chan *LogMessageParams
}

func newLogWriter(server *Server) *logWriter {
	return &logWriter{
		server: server,
		queue:  make(chan *LogMessageParams, 256),
	}
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	var entry map[string]any
	if err := json.Unmarshal(p, &entry); err != nil {
		return len(p), nil // skip malformed entries
	}

	id := extractField(entry, "id", "")

	notification := &LogMessageParams{
		Type:         ParseMessageTypeFromZerolog(extractField(entry, "level", "info")),
		Message:      extractField(entry, "message", ""),
		Time:         extractField(entry, "time", ""),
		Source:       extractField(entry, "caller", ""),
		Extra:        entry,
		IsDependency: id != w.server.id,
	}

	select {
	case w.queue <- notification:
	default:
		// client is not keeping up, drop the line
	}

	return len(p), nil
}

func (w *logWriter) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.queue:
			rpc := w.server.rpc.Load()
			if rpc == nil {
				continue
			}
			_ = notify(ctx, rpc, "window/logMessage", msg)
		}
	}
}

func extractField(entry map[string]any, key, defaultValue string) string {
	if v, ok := entry[key].(string); ok {
		delete(entry, key)
		return v
	}
	return defaultValue
}

// clientLogger sends the server's log to the client instead of stderr, keeping
// the level of the logger already in ctx.
func (me *Server) clientLogger(ctx context.Context) context.Context {
	writer := newLogWriter(me)
	go writer.pump(ctx)

	level := zerolog.Ctx(ctx).GetLevel()

	return zerolog.New(writer).With().
		Str("id", me.id).
		Str("lsp_role", "server").
		Logger().
		Level(level).
		Hook(debug.TimeHook{}).
		Hook(debug.CallerHook{WithColor: false}).
		WithContext(ctx)
}
