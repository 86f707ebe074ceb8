//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Store=Store"
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	// VersionAny skips the optimistic concurrency check.
	VersionAny Version = -1
	// VersionNoStream expects the stream to have no events yet.
	VersionNoStream Version = 0
)

var (
	ErrConcurrentModification = errors.New("stream was modified concurrently")
	ErrEmptyAppend            = errors.New("nothing to append")
	ErrEmptyStreamName        = errors.New("empty stream name")
)

type (
	// Version is the number of events a stream holds.
	Version int64

	// Record is an event serialized for the log.
	Record struct {
		ID      uuid.UUID
		Type    string
		Payload []byte
	}

	RecordedEvent struct {
		Record
		Stream     string
		Version    Version
		RecordedAt time.Time
	}

	Store interface {
		// AppendToStream writes records atomically and returns the new stream version.
		AppendToStream(ctx context.Context, stream string, expected Version, records []Record) (Version, error)
		// ReadStreamForward returns every event of the stream in append order, empty for a missing stream.
		ReadStreamForward(ctx context.Context, stream string) ([]RecordedEvent, error)
	}
)

// CheckAppend validates append arguments shared by every Store implementation.
func CheckAppend(stream string, expected, current Version, records []Record) error {
	if stream == "" {
		return ErrEmptyStreamName
	}
	if len(records) == 0 {
		return ErrEmptyAppend
	}
	if expected != VersionAny && expected != current {
		return ErrConcurrentModification
	}

	return nil
}
