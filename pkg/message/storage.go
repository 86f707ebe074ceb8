//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Storage=Storage"
package message

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	StorageSpecification struct {
		Topics            []Topic
		ScheduledAtBefore time.Time
		Limit             int
	}

	// Storage keeps messages waiting to be produced, Lock serializes concurrent outbox workers.
	Storage interface {
		Lock(ctx context.Context) (_ context.Context, release func() error, _ error)
		Find(ctx context.Context, spec *StorageSpecification) ([]Message, error)
		Store(ctx context.Context, scheduledAt time.Time, msgs ...Message) error
		Delete(ctx context.Context, ids ...uuid.UUID) error
	}
)
