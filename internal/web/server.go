// Package web serves the landing page over HTTP, one view state per browser
// session.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-co-op/gocron/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/core"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Addr            string
	SessionTTL      time.Duration
	SweepInterval   time.Duration
	DefaultLanguage i18n.Language
	Phone           string
	Texts           *i18n.Table
	Services        *catalog.Catalog
	Replier         core.Replier
	Logger          *slog.Logger
	Now             func() time.Time
}

type Server struct {
	opts     Options
	log      *slog.Logger
	sessions *SessionStore
	router   chi.Router

	// replies tracks chat calls still running for some session.
	replies  sync.WaitGroup
	baseCtx  context.Context
	cancelFn context.CancelFunc
}

func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		opts:     opts,
		log:      opts.Logger.With("component", "web"),
		sessions: NewSessionStore(opts.SessionTTL, opts.DefaultLanguage),
		baseCtx:  ctx,
		cancelFn: cancel,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handlePage)
	r.Post("/lang", s.handleLanguage)
	r.Post("/menu", s.handleMenu)
	r.Post("/services/{id}", s.handleService)
	r.Post("/chat", s.handleChatSubmit)
	r.Post("/chat/open", s.handleChatOpen)
	r.Post("/chat/close", s.handleChatClose)
	r.Post("/chat/suggest/{n}", s.handleSuggestion)
	r.Post("/api/chat", s.handleAPIChat)
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Sessions exposes the session store.
func (s *Server) Sessions() *SessionStore { return s.sessions }

// Run serves until ctx is cancelled, sweeping idle sessions in the
// background, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	sched, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(s.log),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if _, err := sched.NewJob(
		gocron.DurationJob(s.opts.SweepInterval),
		gocron.NewTask(func() {
			if n := s.sessions.Sweep(s.opts.Now()); n > 0 {
				s.log.Info("expired sessions removed", "count", n, "remaining", s.sessions.Len())
			}
		}),
		gocron.WithName("session-sweep"),
	); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start()
		s.log.Info("web listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		if err := sched.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("scheduler shutdown: %w", err))
		}
		s.Close()
		s.log.Info("web stopped")
		return errors.Join(errs...)
	})
	return g.Wait()
}

// Close cancels pending chat calls and waits for their goroutines.
func (s *Server) Close() {
	s.cancelFn()
	s.replies.Wait()
}
