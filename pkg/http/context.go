package http

import (
	"context"
	"net/http"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

// handlerMetadata collects the outcome of a handler for the outer middlewares.
type handlerMetadata struct {
	Code  int
	Error error
	Panic *Panic
}

func withHandlerMetadata(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if !ok {
		return &handlerMetadata{}
	}

	return meta
}
