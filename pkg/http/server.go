package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption     func(*server)
	ServerMiddleware func(http.Handler) http.Handler

	HandlerRegistry interface {
		Register(handlers ...Handler)
	}

	Server interface {
		HandlerRegistry
		http.Handler
		Listener(context.Context) error
	}
)

type server struct {
	srv          *http.Server
	router       *mux.Router
	errorMappers []ErrorMapper
}

func NewServer(address string, opts ...ServerOption) Server {
	router := mux.NewRouter()
	router.Use(withHandlerMetadata)

	s := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *server) Register(handlers ...Handler) {
	for _, handler := range handlers {
		s.router.
			Name(routeName(handler.Method(), handler.Path())).
			Methods(handler.Method()).
			Path(handler.Path()).
			Handler(httpHandlerWrapper(handler.HTTPHandler(), s.mapError))
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) Listener(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenErr <- err
	}()

	var err error
	select {
	case err = <-listenErr:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
		defer cancel()

		err = s.srv.Shutdown(shutdownCtx)
		if err == nil {
			err = ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) mapError(err error) int {
	for _, mapper := range s.errorMappers {
		code := mapper(err)
		if code != 0 {
			return code
		}
	}

	return 0
}

func routeName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
