package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(migrations ...[]sql.Migration)
	}

	sqlMigrations struct {
		ctx      context.Context
		migrator *sql.Migrator

		mu       sync.Mutex
		executed map[string]struct{}
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.TxClient,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:      ctx,
		migrator: sql.NewMigrator(db, logger),
		executed: make(map[string]struct{}),
	}
}

// MustRegister executes the migrations not registered in this process before.
func (s *sqlMigrations) MustRegister(migrations ...[]sql.Migration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []sql.Migration
	for _, source := range migrations {
		for _, migration := range source {
			if _, ok := s.executed[migration.ID]; ok {
				continue
			}
			pending = append(pending, migration)
		}
	}
	if len(pending) == 0 {
		return
	}

	err := s.migrator.Execute(s.ctx, pending...)
	if err != nil {
		panic(fmt.Errorf("execute migrations: %w", err))
	}
	for _, migration := range pending {
		s.executed[migration.ID] = struct{}{}
	}
}
