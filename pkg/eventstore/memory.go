package eventstore

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type MemoryStore struct {
	mu      sync.RWMutex
	streams map[string][]RecordedEvent
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		streams: make(map[string][]RecordedEvent),
		now:     time.Now,
	}
}

func (s *MemoryStore) AppendToStream(
	_ context.Context,
	stream string,
	expected Version,
	records []Record,
) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := Version(len(s.streams[stream]))
	err := CheckAppend(stream, expected, current, records)
	if err != nil {
		return current, fmt.Errorf("append to %s at version %d: %w", stream, expected, err)
	}

	recordedAt := s.now()
	for _, record := range records {
		current++
		s.streams[stream] = append(s.streams[stream], RecordedEvent{
			Record: Record{
				ID:      record.ID,
				Type:    record.Type,
				Payload: append([]byte(nil), record.Payload...),
			},
			Stream:     stream,
			Version:    current,
			RecordedAt: recordedAt,
		})
	}

	return current, nil
}

func (s *MemoryStore) ReadStreamForward(_ context.Context, stream string) ([]RecordedEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.streams[stream]
	result := make([]RecordedEvent, len(events))
	copy(result, events)
	return result, nil
}
