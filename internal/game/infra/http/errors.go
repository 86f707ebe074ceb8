package http

import (
	"net/http"

	"github.com/marcodiri/micros-chess/internal/game/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

func WithErrorMapping() pkghttp.ServerOption {
	return pkghttp.WithErrorMapping(map[int][]error{
		http.StatusBadRequest: {api.ErrGameNotInProgress, api.ErrIllegalMove},
		http.StatusNotFound:   {api.ErrGameNotFound},
		http.StatusConflict:   {api.ErrConcurrentModification},
	})
}
