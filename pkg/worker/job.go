package worker

import "context"

type (
	Job      func(context.Context)
	ErrorJob func(context.Context) error
)
