// Package lsp serves the wrap and clear commands to editors over the language
// server protocol. Every open document is one block; commands arrive as code
// actions and come back as workspace edits.
package lsp

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
	"github.com/jonboulle/clockwork"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/mdwrap/pkg/command"
	"github.com/walteh/mdwrap/pkg/config"
	"github.com/walteh/mdwrap/pkg/host"
	"github.com/walteh/mdwrap/pkg/l10n"
	"github.com/walteh/mdwrap/pkg/toolbar"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

var (
	ErrUnknownCommand = errors.Base("unknown command")
	ErrInvalidGlob    = errors.Base("invalid document glob")
)

// state is everything derived from the settings file. It is swapped whole on
// reload.
type state struct {
	settings *config.Settings
	// registry serves the preferred format, registries every format.
	registry   *command.Registry
	registries map[command.Format]*command.Registry
	tag        language.Tag
	adapter    *host.Adapter
	// loadErr holds the definitions that did not compile.
	loadErr error
}

// Server represents an LSP server instance
type Server struct {
	id      string
	version string

	afs          afero.Fs
	settingsPath string
	globs        []string

	clock         clockwork.Clock
	showDelay     time.Duration
	hideInterval  time.Duration
	clientLogging bool
	locale        string

	documents *DocumentManager
	session   *host.Session
	store     *blockStore
	notifier  *clientNotifier
	toolbar   *toolbar.Controller

	cursor atomic.Pointer[host.CursorPosition]
	rpc    atomic.Pointer[jrpc2.Server]
	state  atomic.Pointer[state]

	mu           sync.Mutex
	clientLocale string
}

type Option func(*Server)

func WithFs(afs afero.Fs) Option {
	return func(s *Server) {
		s.afs = afs
	}
}

// WithSettings loads command definitions from path and reloads them when the
// file changes.
func WithSettings(path string) Option {
	return func(s *Server) {
		s.settingsPath = path
	}
}

// WithGlobs limits code actions to documents matching one of globs.
func WithGlobs(globs []string) Option {
	return func(s *Server) {
		s.globs = globs
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

func WithToolbarTiming(showDelay, hideInterval time.Duration) Option {
	return func(s *Server) {
		s.showDelay = showDelay
		s.hideInterval = hideInterval
	}
}

// WithClientLogging sends the server log to the client as window/logMessage.
func WithClientLogging() Option {
	return func(s *Server) {
		s.clientLogging = true
	}
}

// WithLocale sets the label language when the settings file does not. The
// client's own locale comes last.
func WithLocale(locale string) Option {
	return func(s *Server) {
		s.locale = locale
	}
}

func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

func NewServer(ctx context.Context, opts ...Option) (*Server, error) {
	me := &Server{
		id:           xid.New().String(),
		afs:          afero.NewOsFs(),
		globs:        config.DefaultGlobs,
		clock:        clockwork.NewRealClock(),
		showDelay:    config.DefaultDebounce,
		hideInterval: config.DefaultThrottle,
		documents:    NewDocumentManager(),
		session:      host.NewSession(),
	}
	for _, opt := range opts {
		opt(me)
	}

	for _, g := range me.globs {
		if !doublestar.ValidatePattern(g) {
			return nil, errors.Errorf("%w: %q", ErrInvalidGlob, g)
		}
	}

	var settings *config.Settings
	var err error
	if me.settingsPath != "" {
		settings, err = config.Load(me.afs, me.settingsPath)
	} else {
		settings, err = config.Parse(nil)
	}
	if err != nil {
		return nil, errors.Errorf("loading settings: %w", err)
	}

	me.store = &blockStore{server: me}
	me.notifier = &clientNotifier{server: me}
	me.toolbar = toolbar.NewController(ctx, &cursorLocator{server: me}, toolbar.RendererFunc(me.renderToolbar),
		toolbar.WithClock(me.clock),
		toolbar.WithShowDelay(me.showDelay),
		toolbar.WithHideInterval(me.hideInterval),
	)

	me.Reload(ctx, settings)

	return me, nil
}

// ID identifies this server instance in logs.
func (me *Server) ID() string {
	return me.id
}

// Reload swaps in new settings. Definitions that fail to compile are left out
// and reported to the client once it is connected.
func (me *Server) Reload(ctx context.Context, settings *config.Settings) {
	me.mu.Lock()
	locale := me.clientLocale
	me.mu.Unlock()

	tag := l10n.Match(settings.Locale, me.locale, locale)

	var registry *command.Registry
	var err error

	registries := map[command.Format]*command.Registry{}
	for _, format := range []command.Format{command.FormatMarkdown, command.FormatOrg} {
		reg, rerr := command.NewRegistry(ctx, settings.DefinitionsFor(format), command.WithLanguage(tag))
		registries[format] = reg
		if format == settings.PreferredFormat {
			registry, err = reg, rerr
		}
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("some commands could not be loaded")
	}

	st := &state{
		settings:   settings,
		registry:   registry,
		registries: registries,
		tag:        tag,
		adapter:    host.NewAdapter(me.store, me.notifier, host.WithLanguage(tag)),
		loadErr:    err,
	}
	me.state.Store(st)

	zerolog.Ctx(ctx).Debug().
		Strs("commands", registry.Keys()).
		Str("language", tag.String()).
		Bool("builtin", settings.Builtin).
		Msg("settings loaded")
}

func (st *state) registryFor(format command.Format) *command.Registry {
	if reg, ok := st.registries[format]; ok {
		return reg
	}
	return st.registry
}

// Registry returns the commands currently served for the preferred format.
func (me *Server) Registry() *command.Registry {
	return me.state.Load().registry
}

func (me *Server) handlers() handler.Map {
	return handler.Map{
		"initialize":  createHandler(me.initialize),
		"initialized": createEmptyHandler(me.initialized),
		"shutdown":    createEmptyHandler(func(ctx context.Context) error { return nil }),
		"exit":        createEmptyHandler(me.exit),

		"$/cancelRequest": createEmptyHandler(func(ctx context.Context) error { return nil }),

		"textDocument/didOpen":    createEmptyResultHandler(me.didOpen),
		"textDocument/didChange":  createEmptyResultHandler(me.didChange),
		"textDocument/didClose":   createEmptyResultHandler(me.didClose),
		"textDocument/codeAction": createHandler(me.codeAction),

		"workspace/executeCommand": createHandler(me.executeCommand),

		MethodSelectionChanged: createEmptyResultHandler(me.selectionChanged),
		MethodScroll:           createEmptyResultHandler(me.scroll),
		MethodBlur:             createEmptyResultHandler(me.blur),
		MethodKeyDown:          createEmptyResultHandler(me.keyDown),
		MethodTransitionEnd:    createEmptyResultHandler(me.transitionEnd),
	}
}

// Start serves LSP-framed JSON-RPC on r and w and returns at once.
func (me *Server) Start(ctx context.Context, r io.Reader, w io.WriteCloser) *jrpc2.Server {
	if me.clientLogging {
		ctx = me.clientLogger(ctx)
	}

	opts := &jrpc2.ServerOptions{
		AllowPush: true,
		RPCLog:    &RPCLogger{},
		NewContext: func() context.Context {
			return ctx
		},
	}

	srv := jrpc2.NewServer(me.handlers(), opts)
	me.rpc.Store(srv)

	return srv.Start(channel.LSP(r, w))
}

// Run serves until the client goes away, reloading the settings file as it
// changes.
func (me *Server) Run(ctx context.Context, r io.Reader, w io.WriteCloser) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := me.Start(ctx, r, w)

	var g errgroup.Group
	if me.settingsPath != "" {
		g.Go(func() error {
			return config.Watch(ctx, me.afs, me.settingsPath, func(s *config.Settings, err error) {
				if err != nil {
					zerolog.Ctx(ctx).Warn().Err(err).Msg("keeping previous settings")
					return
				}
				me.Reload(ctx, s)
				me.reportLoadErrors(ctx)
			})
		})
	}

	err := srv.Wait()
	cancel()

	return multierr.Append(err, g.Wait())
}

func (me *Server) reportLoadErrors(ctx context.Context) {
	st := me.state.Load()
	if st.loadErr == nil {
		return
	}

	msg := l10n.Printer(st.tag).Sprintf(l10n.MsgInvalidConfig, st.loadErr.Error())
	if err := me.notifier.Notify(ctx, host.LevelWarning, msg); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("reporting settings errors")
	}
}

// matches reports whether code actions are offered for uri.
func (me *Server) matches(uri DocumentURI) bool {
	p := documentPath(uri)
	for _, g := range me.globs {
		if ok, _ := doublestar.Match(g, p); ok {
			return true
		}
	}
	return false
}

// formatOf picks the markup of a document from its extension, then its
// language id.
func (me *Server) formatOf(uri DocumentURI) command.Format {
	switch strings.ToLower(path.Ext(documentPath(uri))) {
	case ".org":
		return command.FormatOrg
	case ".md", ".markdown":
		return command.FormatMarkdown
	}
	if doc, ok := me.documents.Get(uri); ok && doc.LanguageID == "org" {
		return command.FormatOrg
	}
	return me.state.Load().settings.PreferredFormat
}

func (me *Server) renderToolbar(ctx context.Context, s toolbar.Surface) error {
	if !me.state.Load().settings.Toolbar {
		return nil
	}

	rpc := me.rpc.Load()
	if rpc == nil {
		return ErrNotConnected
	}

	return notify(ctx, rpc, MethodToolbar, &s)
}
