package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/marcodiri/micros-chess/pkg/log"
)

const defaultClientTimeout = 10 * time.Second

type (
	Destination string

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	ClientImpl struct {
		Destination Destination
		RESTClient  *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	client := &ClientImpl{
		RESTClient: resty.New().SetTimeout(defaultClientTimeout),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func WithClientDestination(dest Destination, baseURL string) ClientOption {
	return func(c *ClientImpl) {
		c.Destination = dest
		c.RESTClient.SetBaseURL(baseURL)
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(key, value)
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		destination := string(c.Destination)
		if destination == "" {
			destination = "-"
		}

		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			entry := logger.With(log.Fields{
				"destination":  destination,
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
				"duration":     resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				entry.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				entry.Log(resp.Request.Context(), infoLevel, "http call completed")
			}
			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				WithField("destination", destination).
				WithField("url", req.URL).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

// CheckResponse turns a non-2xx response into an error carrying the status code.
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	if resp.IsError() {
		return &ResponseError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return nil
}

type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response status %d: %s", e.StatusCode, e.Body)
}
