package message

import (
	"context"

	"github.com/google/uuid"
)

type (
	Message struct {
		ID    uuid.UUID
		Topic Topic
		// Key is used for partitioning, messages with the same key keep their order
		Key     string
		Payload []byte
	}

	Handler func(ctx context.Context, msg *Message) error
)
