package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JournalNumbering holds the numbering settings of tenants without a stored sequence.
type JournalNumbering struct {
	Prefix        string
	AutoIncrement bool
}

type PgxJournalNumberRepository struct {
	BaseRepository
	defaults JournalNumbering
}

func newPgxJournalNumberRepository(pool *pgxpool.Pool, defaults JournalNumbering) portsrepo.JournalNumberSequencer {
	return &PgxJournalNumberRepository{
		BaseRepository: BaseRepository{Pool: pool},
		defaults:       defaults,
	}
}

var _ portsrepo.JournalNumberSequencer = (*PgxJournalNumberRepository)(nil)

func formatJournalNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s%05d", prefix, n)
}

// NextJournalNumber reads the tenant sequence without advancing it.
func (r *PgxJournalNumberRepository) NextJournalNumber(ctx context.Context, tenantID string) (string, bool, error) {
	query := `
		SELECT prefix, next_number, auto_increment
		FROM journal_number_sequences
		WHERE tenant_id = $1;
	`
	var (
		prefix string
		next   int64
		auto   bool
	)
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(&prefix, &next, &auto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return formatJournalNumber(r.defaults.Prefix, 1), r.defaults.AutoIncrement, nil
		}
		return "", false, apperrors.NewAppError(500, "failed to read journal number sequence", err)
	}
	return formatJournalNumber(prefix, next), auto, nil
}

// IncrementJournalNumber advances the tenant sequence, creating it from the defaults on first use.
func (r *PgxJournalNumberRepository) IncrementJournalNumber(ctx context.Context, tenantID string) error {
	query := `
		INSERT INTO journal_number_sequences (tenant_id, prefix, next_number, auto_increment)
		VALUES ($1, $2, 2, $3)
		ON CONFLICT (tenant_id) DO UPDATE
		SET next_number = journal_number_sequences.next_number + 1;
	`
	if _, err := r.Pool.Exec(ctx, query, tenantID, r.defaults.Prefix, r.defaults.AutoIncrement); err != nil {
		return apperrors.NewAppError(500, "failed to advance journal number sequence", err)
	}
	return nil
}
