package http

import (
	"fmt"

	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

const (
	DestinationGameService pkghttp.Destination = "game-service"

	HeaderCallerService = "X-Caller-Service"
)

type ClientFactory struct {
	urls map[pkghttp.Destination]string
	opts []pkghttp.ClientOption
}

func NewClientFactory(urls map[pkghttp.Destination]string, opts ...pkghttp.ClientOption) *ClientFactory {
	return &ClientFactory{
		urls: urls,
		opts: opts,
	}
}

func (f *ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	url, ok := f.urls[dest]
	if !ok || url == "" {
		panic(fmt.Errorf("no url configured for destination %s", dest))
	}

	opts := make([]pkghttp.ClientOption, 0, len(f.opts)+len(extraOpts)+1)
	opts = append(opts, pkghttp.WithClientDestination(dest, url))
	opts = append(opts, f.opts...)
	opts = append(opts, extraOpts...)
	return pkghttp.NewClient(opts...)
}

func WithCallerService(name string) pkghttp.ClientOption {
	return pkghttp.WithRequestHeader(HeaderCallerService, name)
}
