package http

import (
	"net/http"

	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type pingHandler struct{}

func NewPingHandler() pkghttp.Handler {
	return pingHandler{}
}

func (h pingHandler) Method() string {
	return http.MethodGet
}

func (h pingHandler) Path() string {
	return "/game/ping"
}

func (h pingHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, _ *http.Request) error {
		w.SetJSONBody(pingOut{Message: "pong"})
		return nil
	}
}

type pingOut struct {
	Message string `json:"message"`
}
