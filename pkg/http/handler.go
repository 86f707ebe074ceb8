package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		HTTPHandler() HandlerFunc
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	// ErrorMapper picks a status code for an error returned by a handler, zero means no match.
	ErrorMapper func(err error) int

	errorOut struct {
		Error string `json:"error"`
	}
)

type responseWriter struct {
	impl     http.ResponseWriter
	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) write(meta *handlerMetadata, err error, mapError ErrorMapper) {
	if err != nil {
		w.writeError(meta, err, mapError)
		return
	}

	httpCode := w.httpCode
	if httpCode == 0 {
		httpCode = http.StatusOK
	}

	var encoded []byte
	if w.hasBody {
		encoded, err = json.Marshal(w.body)
		if err != nil {
			w.writeError(meta, fmt.Errorf("encode response body: %w", err), nil)
			return
		}
		w.impl.Header().Set("Content-Type", "application/json")
	}

	meta.Code = httpCode
	w.impl.WriteHeader(httpCode)
	if encoded != nil {
		_, _ = w.impl.Write(encoded)
	}
}

func (w *responseWriter) writeError(meta *handlerMetadata, err error, mapError ErrorMapper) {
	httpCode := w.httpCode
	if httpCode < http.StatusBadRequest && mapError != nil {
		httpCode = mapError(err)
	}
	if httpCode < http.StatusBadRequest && errors.Is(err, ErrParsingError) {
		httpCode = http.StatusBadRequest
	}
	if httpCode < http.StatusBadRequest {
		httpCode = http.StatusInternalServerError
	}

	meta.Code = httpCode
	meta.Error = err

	if httpCode >= http.StatusInternalServerError {
		w.impl.WriteHeader(httpCode)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	_ = json.NewEncoder(w.impl).Encode(errorOut{Error: err.Error()})
}

func httpHandlerWrapper(handler HandlerFunc, mapError ErrorMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := getHandlerMetadata(r.Context())
		defer func() {
			msg := recover()
			if msg == nil {
				return
			}

			meta.Code = http.StatusInternalServerError
			meta.Panic = &Panic{
				Message:    fmt.Sprintf("%v", msg),
				Stacktrace: debug.Stack(),
			}
			w.WriteHeader(http.StatusInternalServerError)
		}()

		respWriter := &responseWriter{impl: w}
		err := handler(respWriter, r)
		respWriter.write(meta, err, mapError)
	}
}
