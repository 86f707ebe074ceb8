package sql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcodiri/micros-chess/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";\n"

	migrationTableDDL = `create table if not exists migration (id text primary key)`
)

var errEmptyMigration = errors.New("empty migration")

type (
	Migration struct {
		ID  string
		SQL string
	}

	Migrator struct {
		db     TxClient
		logger log.Logger
	}
)

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Execute applies the not yet performed migrations in the given order within one locked transaction.
func (m *Migrator) Execute(ctx context.Context, migrations ...Migration) error {
	return NewTransaction(m.db).Execute(ctx, func(ctx context.Context) error {
		client := NewTransactionalClient(m.db)

		_, err := client.ExecContext(ctx, migrationTableDDL)
		if err != nil {
			return fmt.Errorf("create migration table: %w", err)
		}

		var performedIDs []string
		err = client.SelectContext(ctx, &performedIDs, "select id from migration")
		if err != nil {
			return fmt.Errorf("get performed migrations: %w", err)
		}
		performed := make(map[string]struct{}, len(performedIDs))
		for _, id := range performedIDs {
			performed[id] = struct{}{}
		}

		for _, migration := range migrations {
			if _, ok := performed[migration.ID]; ok {
				continue
			}

			err = m.perform(ctx, client, migration)
			if err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.ID, err)
			}
			performed[migration.ID] = struct{}{}

			m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed successfully")
		}

		return nil
	}, migrationLockName)
}

func (m *Migrator) perform(ctx context.Context, client Client, migration Migration) error {
	if strings.TrimSpace(migration.SQL) == "" {
		return errEmptyMigration
	}

	_, err := client.ExecContext(ctx, "insert into migration (id) values ($1)", migration.ID)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	for _, query := range strings.Split(migration.SQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}
