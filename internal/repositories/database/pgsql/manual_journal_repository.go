package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/SscSPs/manual_journal_service/internal/models"
	"github.com/SscSPs/manual_journal_service/internal/utils/mapping"
	"github.com/SscSPs/manual_journal_service/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const manualJournalColumns = `manual_journal_id, tenant_id, journal_number, journal_date, reference, description,
	amount, currency_code, published_at, created_at, created_by, last_updated_at, last_updated_by, version`

// orderableColumns guards the ORDER BY clause; anything else falls back to journal_date.
var orderableColumns = map[string]bool{
	"journal_date":   true,
	"journal_number": true,
	"amount":         true,
	"created_at":     true,
	"published_at":   true,
}

type PgxManualJournalRepository struct {
	BaseRepository
}

func newPgxManualJournalRepository(pool *pgxpool.Pool) portsrepo.ManualJournalRepositoryFacade {
	return &PgxManualJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ManualJournalRepositoryFacade = (*PgxManualJournalRepository)(nil)

func scanManualJournal(row pgx.Row) (models.ManualJournal, error) {
	var m models.ManualJournal
	err := row.Scan(
		&m.ManualJournalID,
		&m.TenantID,
		&m.JournalNumber,
		&m.JournalDate,
		&m.Reference,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.PublishedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

// FindManualJournalByID retrieves a journal with its entries and media.
func (r *PgxManualJournalRepository) FindManualJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.ManualJournal, error) {
	query := `SELECT ` + manualJournalColumns + ` FROM manual_journals WHERE tenant_id = $1 AND manual_journal_id = $2;`
	m, err := scanManualJournal(r.Pool.QueryRow(ctx, query, tenantID, journalID))
	if err != nil {
		return nil, mapPgError(err, "failed to find manual journal "+journalID)
	}

	journals, err := r.attachChildren(ctx, r.Pool, []models.ManualJournal{m})
	if err != nil {
		return nil, err
	}
	return &journals[0], nil
}

// FindManualJournalsByIDs retrieves the journals that exist among journalIDs.
func (r *PgxManualJournalRepository) FindManualJournalsByIDs(ctx context.Context, tenantID string, journalIDs []string) ([]domain.ManualJournal, error) {
	if len(journalIDs) == 0 {
		return []domain.ManualJournal{}, nil
	}
	query := `SELECT ` + manualJournalColumns + `
		FROM manual_journals
		WHERE tenant_id = $1 AND manual_journal_id = ANY($2)
		ORDER BY journal_date, journal_number;`
	rows, err := r.Pool.Query(ctx, query, tenantID, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query manual journals", err)
	}
	parents, err := collectManualJournals(rows)
	if err != nil {
		return nil, err
	}
	return r.attachChildren(ctx, r.Pool, parents)
}

// ExistsByJournalNumber reports whether another journal of the tenant uses number.
func (r *PgxManualJournalRepository) ExistsByJournalNumber(ctx context.Context, tenantID string, number string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM manual_journals
			WHERE tenant_id = $1 AND journal_number = $2
			  AND ($3::text = '' OR manual_journal_id <> $3::text)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, tenantID, number, excludeID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check journal number "+number, err)
	}
	return exists, nil
}

// ListManualJournals returns one page of journals matching filter and the total match count.
func (r *PgxManualJournalRepository) ListManualJournals(ctx context.Context, tenantID string, filter domain.ManualJournalFilter) ([]domain.ManualJournal, int, error) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		p := "$" + strconv.Itoa(len(args))
		where = append(where, "(journal_number ILIKE "+p+" OR reference ILIKE "+p+" OR description ILIKE "+p+")")
	}
	switch filter.Status {
	case domain.JournalStatusDraft:
		where = append(where, "published_at IS NULL")
	case domain.JournalStatusPublished:
		where = append(where, "published_at IS NOT NULL")
	}
	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM manual_journals`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count manual journals", err)
	}

	column := filter.SortColumn
	if !orderableColumns[column] {
		column = "journal_date"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	args = append(args, filter.PageSize, pagination.Offset(filter.Page, filter.PageSize))
	query := `SELECT ` + manualJournalColumns + ` FROM manual_journals` + whereClause +
		` ORDER BY ` + column + ` ` + direction + `, manual_journal_id ` + direction +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list manual journals", err)
	}
	parents, err := collectManualJournals(rows)
	if err != nil {
		return nil, 0, err
	}
	journals, err := r.attachChildren(ctx, r.Pool, parents)
	if err != nil {
		return nil, 0, err
	}
	return journals, total, nil
}

// UpsertManualJournal writes the parent row, then replaces entries and media, in one transaction.
func (r *PgxManualJournalRepository) UpsertManualJournal(ctx context.Context, journal domain.ManualJournal, expectedVersion int64) (*domain.ManualJournal, error) {
	m := mapping.ToModelManualJournal(journal)

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if expectedVersion == 0 {
			m.Version = 1
			_, err := tx.Exec(ctx, `
				INSERT INTO manual_journals (
					manual_journal_id, tenant_id, journal_number, journal_date, reference, description,
					amount, currency_code, published_at, created_at, created_by, last_updated_at, last_updated_by, version
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
				m.ManualJournalID, m.TenantID, m.JournalNumber, m.JournalDate, m.Reference, m.Description,
				m.Amount, m.CurrencyCode, m.PublishedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
			)
			if err != nil {
				return mapPgError(err, "failed to insert manual journal "+m.ManualJournalID)
			}
		} else {
			tag, err := tx.Exec(ctx, `
				UPDATE manual_journals
				SET journal_number = $3, journal_date = $4, reference = $5, description = $6,
				    amount = $7, currency_code = $8, published_at = $9,
				    last_updated_at = $10, last_updated_by = $11, version = version + 1
				WHERE tenant_id = $1 AND manual_journal_id = $2 AND version = $12;`,
				m.TenantID, m.ManualJournalID, m.JournalNumber, m.JournalDate, m.Reference, m.Description,
				m.Amount, m.CurrencyCode, m.PublishedAt, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
			)
			if err != nil {
				return mapPgError(err, "failed to update manual journal "+m.ManualJournalID)
			}
			if tag.RowsAffected() == 0 {
				return r.versionMismatch(ctx, tx, m.TenantID, m.ManualJournalID)
			}
			m.Version = expectedVersion + 1
		}
		return replaceChildren(ctx, tx, journal)
	})
	if err != nil {
		return nil, err
	}

	saved := mapping.ToDomainManualJournal(m)
	saved.Entries = journal.Entries
	saved.Media = journal.Media
	return &saved, nil
}

// versionMismatch tells a missing row apart from a stale version.
func (r *PgxManualJournalRepository) versionMismatch(ctx context.Context, tx pgx.Tx, tenantID, journalID string) error {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM manual_journals WHERE tenant_id = $1 AND manual_journal_id = $2);`,
		tenantID, journalID).Scan(&exists)
	if err != nil {
		return apperrors.NewAppError(500, "failed to check manual journal "+journalID, err)
	}
	if !exists {
		return fmt.Errorf("manual journal %s: %w", journalID, apperrors.ErrNotFound)
	}
	return fmt.Errorf("manual journal %s changed since it was read: %w", journalID, apperrors.ErrConflict)
}

func replaceChildren(ctx context.Context, tx pgx.Tx, journal domain.ManualJournal) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM manual_journal_entries WHERE manual_journal_id = $1;`, journal.ID)
	batch.Queue(`DELETE FROM manual_journal_media WHERE manual_journal_id = $1;`, journal.ID)

	for _, e := range journal.Entries {
		row := mapping.ToModelJournalEntry(journal.ID, e)
		row.EntryID = uuid.NewString()
		batch.Queue(`
			INSERT INTO manual_journal_entries (entry_id, manual_journal_id, entry_index, account_id, credit, debit, contact_id, contact_type, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			row.EntryID, row.ManualJournalID, row.EntryIndex, row.AccountID, row.Credit, row.Debit, row.ContactID, row.ContactType, row.Note,
		)
	}
	for _, media := range journal.Media {
		batch.Queue(`INSERT INTO manual_journal_media (manual_journal_id, media_id) VALUES ($1, $2);`, journal.ID, media.MediaID)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, "failed to write entries of manual journal "+journal.ID)
	}
	return nil
}

// DeleteManualJournals removes children, then parents. Nothing is removed if any id is missing.
func (r *PgxManualJournalRepository) DeleteManualJournals(ctx context.Context, tenantID string, journalIDs []string) error {
	ids := distinct(journalIDs)
	if len(ids) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			DELETE FROM manual_journal_entries e USING manual_journals j
			WHERE e.manual_journal_id = j.manual_journal_id AND j.tenant_id = $1 AND j.manual_journal_id = ANY($2);`,
			tenantID, ids)
		batch.Queue(`
			DELETE FROM manual_journal_media m USING manual_journals j
			WHERE m.manual_journal_id = j.manual_journal_id AND j.tenant_id = $1 AND j.manual_journal_id = ANY($2);`,
			tenantID, ids)
		batch.Queue(`DELETE FROM manual_journals WHERE tenant_id = $1 AND manual_journal_id = ANY($2);`, tenantID, ids)

		br := tx.SendBatch(ctx, batch)
		var deleted int64
		for i := 0; i < batch.Len(); i++ {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return apperrors.NewAppError(500, "failed to delete manual journals", err)
			}
			deleted = tag.RowsAffected()
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to delete manual journals", err)
		}

		if deleted != int64(len(ids)) {
			return fmt.Errorf("deleted %d of %d manual journals: %w", deleted, len(ids), apperrors.ErrNotFound)
		}
		return nil
	})
}

// MarkManualJournalsPublished stamps publishedAt on the drafts among journalIDs.
func (r *PgxManualJournalRepository) MarkManualJournalsPublished(ctx context.Context, tenantID string, journalIDs []string, publishedAt time.Time, userID string) (int64, error) {
	if len(journalIDs) == 0 {
		return 0, nil
	}
	tag, err := r.Pool.Exec(ctx, `
		UPDATE manual_journals
		SET published_at = $3, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE tenant_id = $1 AND manual_journal_id = ANY($2) AND published_at IS NULL;`,
		tenantID, journalIDs, publishedAt, userID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to publish manual journals", err)
	}
	return tag.RowsAffected(), nil
}

func collectManualJournals(rows pgx.Rows) ([]models.ManualJournal, error) {
	defer rows.Close()
	journals := []models.ManualJournal{}
	for rows.Next() {
		m, err := scanManualJournal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan manual journal row", err)
		}
		journals = append(journals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating manual journal rows", err)
	}
	return journals, nil
}

// attachChildren loads the entries and media of parents and returns the domain journals.
func (r *PgxManualJournalRepository) attachChildren(ctx context.Context, q querier, parents []models.ManualJournal) ([]domain.ManualJournal, error) {
	journals := make([]domain.ManualJournal, len(parents))
	if len(parents) == 0 {
		return journals, nil
	}
	ids := make([]string, len(parents))
	for i, p := range parents {
		ids[i] = p.ManualJournalID
	}

	entries := make(map[string][]domain.JournalEntry, len(ids))
	rows, err := q.Query(ctx, `
		SELECT entry_id, manual_journal_id, entry_index, account_id, credit, debit, contact_id, contact_type, note
		FROM manual_journal_entries
		WHERE manual_journal_id = ANY($1)
		ORDER BY manual_journal_id, entry_index;`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query manual journal entries", err)
	}
	for rows.Next() {
		var e models.ManualJournalEntry
		if err := rows.Scan(&e.EntryID, &e.ManualJournalID, &e.EntryIndex, &e.AccountID, &e.Credit, &e.Debit, &e.ContactID, &e.ContactType, &e.Note); err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan manual journal entry row", err)
		}
		entries[e.ManualJournalID] = append(entries[e.ManualJournalID], mapping.ToDomainJournalEntry(e))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating manual journal entry rows", err)
	}

	media := make(map[string][]domain.MediaLink, len(ids))
	rows, err = q.Query(ctx, `
		SELECT manual_journal_id, media_id FROM manual_journal_media
		WHERE manual_journal_id = ANY($1)
		ORDER BY manual_journal_id, media_id;`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query manual journal media", err)
	}
	for rows.Next() {
		var link models.ManualJournalMedia
		if err := rows.Scan(&link.ManualJournalID, &link.MediaID); err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan manual journal media row", err)
		}
		media[link.ManualJournalID] = append(media[link.ManualJournalID], domain.MediaLink{MediaID: link.MediaID})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating manual journal media rows", err)
	}

	for i, p := range parents {
		j := mapping.ToDomainManualJournal(p)
		j.Entries = entries[p.ManualJournalID]
		j.Media = media[p.ManualJournalID]
		journals[i] = j
	}
	return journals, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
