package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/marcodiri/micros-chess/pkg/log"
)

const HealthPath = "/healthz"

func WithMW(mw ServerMiddleware) ServerOption {
	return func(s *server) {
		s.router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHealthCheck() ServerOption {
	return func(s *server) {
		s.router.
			Name(routeName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(struct {
					Status string `json:"status"`
				}{
					Status: "OK",
				})
			})
	}
}

// WithErrorMapping responds with the status code whose errors match the handler error via errors.Is.
// Lower status codes are checked first.
func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	codes := make([]int, 0, len(statusCodes))
	for code := range statusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	return func(s *server) {
		s.errorMappers = append(s.errorMappers, func(err error) int {
			for _, code := range codes {
				for _, target := range statusCodes[code] {
					if errors.Is(err, target) {
						return code
					}
				}
			}
			return 0
		})
	}
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == HealthPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			entry := logger.With(log.Fields{
				"routeName":    routeName(r.Method, routeTemplate(r)),
				"method":       r.Method,
				"uri":          r.RequestURI,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				entry.
					WithField("panic", meta.Panic.Message).
					WithField("stacktrace", string(meta.Panic.Stacktrace)).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				entry.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			default:
				entry.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}

	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}

	return template
}
