package pgsql

import (
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL implementations of every repository port.
func NewRepositoryProvider(dbPool *pgxpool.Pool, numbering JournalNumbering) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		ContactRepo:       newPgxContactRepository(dbPool),
		JournalNumberRepo: newPgxJournalNumberRepository(dbPool, numbering),
		ManualJournalRepo: newPgxManualJournalRepository(dbPool),
		LedgerRepo:        newPgxLedgerRepository(dbPool),
	}
}
