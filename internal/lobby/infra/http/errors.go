package http

import (
	"net/http"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

func WithErrorMapping() pkghttp.ServerOption {
	return pkghttp.WithErrorMapping(map[int][]error{
		http.StatusBadRequest: {api.ErrUnsupportedStateTransition},
		http.StatusNotFound:   {api.ErrGameProposalNotFound},
		http.StatusConflict:   {api.ErrConcurrentModification},
	})
}
