package pgsql

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/SscSPs/manual_journal_service/internal/models"
	"github.com/SscSPs/manual_journal_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// FindLedgerLinesBySource retrieves posted lines, ordered by source and line index.
func (r *PgxLedgerRepository) FindLedgerLinesBySource(ctx context.Context, tenantID string, sourceType string, sourceIDs []string) ([]domain.LedgerLine, error) {
	lines := []domain.LedgerLine{}
	if len(sourceIDs) == 0 {
		return lines, nil
	}

	query := `
		SELECT line_id, tenant_id, source_type, source_id, line_index, account_id, contact_id, contact_type,
		       credit, debit, line_date, note, created_at, created_by
		FROM ledger_lines
		WHERE tenant_id = $1 AND source_type = $2 AND source_id = ANY($3)
		ORDER BY source_id, line_index;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, sourceType, sourceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.LedgerLine
		if err := rows.Scan(
			&m.LineID,
			&m.TenantID,
			&m.SourceType,
			&m.SourceID,
			&m.LineIndex,
			&m.AccountID,
			&m.ContactID,
			&m.ContactType,
			&m.Credit,
			&m.Debit,
			&m.LineDate,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		lines = append(lines, mapping.ToDomainLedgerLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}
	return lines, nil
}

// batchStep is a queued statement of a posting commit.
type batchStep struct {
	desc     string
	mustHit1 bool // statement must affect exactly one row
}

// CommitPosting pipelines every effect of commit as one batch inside one transaction:
// account balances, removal of superseded lines, new lines, contact balances.
func (r *PgxLedgerRepository) CommitPosting(ctx context.Context, commit domain.PostingCommit) error {
	if commit.IsEmpty() {
		return nil
	}

	batch := &pgx.Batch{}
	var steps []batchStep

	// Sorted keys give concurrent commits the same row lock order.
	for _, accountID := range sortedKeys(commit.AccountDeltas) {
		batch.Queue(`UPDATE accounts SET balance = balance + $3 WHERE tenant_id = $1 AND account_id = $2;`,
			commit.TenantID, accountID, commit.AccountDeltas[accountID])
		steps = append(steps, batchStep{desc: "account " + accountID, mustHit1: true})
	}

	if len(commit.RemovedLineIDs) > 0 {
		batch.Queue(`DELETE FROM ledger_lines WHERE tenant_id = $1 AND line_id = ANY($2);`,
			commit.TenantID, commit.RemovedLineIDs)
		steps = append(steps, batchStep{desc: "remove ledger lines"})
	}

	for _, line := range commit.NewLines {
		m := mapping.ToModelLedgerLine(line)
		batch.Queue(`
			INSERT INTO ledger_lines (line_id, tenant_id, source_type, source_id, line_index, account_id, contact_id, contact_type,
			                          credit, debit, line_date, note, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
			m.LineID, m.TenantID, m.SourceType, m.SourceID, m.LineIndex, m.AccountID, m.ContactID, m.ContactType,
			m.Credit, m.Debit, m.LineDate, m.Note, m.CreatedAt, m.CreatedBy,
		)
		steps = append(steps, batchStep{desc: "ledger line " + m.LineID})
	}

	for _, contactID := range sortedKeys(commit.ContactDeltas) {
		batch.Queue(`UPDATE contacts SET balance = balance + $3 WHERE tenant_id = $1 AND contact_id = $2;`,
			commit.TenantID, contactID, commit.ContactDeltas[contactID])
		steps = append(steps, batchStep{desc: "contact " + contactID, mustHit1: true})
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for _, step := range steps {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return mapPgError(err, "failed to apply "+step.desc)
			}
			if step.mustHit1 && tag.RowsAffected() != 1 {
				br.Close()
				return fmt.Errorf("%s: %w", step.desc, apperrors.ErrNotFound)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to close posting batch", err)
		}
		return nil
	})
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
