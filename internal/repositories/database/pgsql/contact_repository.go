package pgsql

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/SscSPs/manual_journal_service/internal/models"
	"github.com/SscSPs/manual_journal_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactReader {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactReader = (*PgxContactRepository)(nil)

// FindContactsByIDs retrieves the tenant contacts among contactIDs, keyed by id.
func (r *PgxContactRepository) FindContactsByIDs(ctx context.Context, tenantID string, contactIDs []string) (map[string]domain.Contact, error) {
	contacts := make(map[string]domain.Contact, len(contactIDs))
	if len(contactIDs) == 0 {
		return contacts, nil
	}

	query := `
		SELECT contact_id, tenant_id, display_name, contact_service, balance,
		       created_at, created_by, last_updated_at, last_updated_by, version
		FROM contacts
		WHERE tenant_id = $1 AND contact_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, contactIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contacts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Contact
		if err := rows.Scan(
			&m.ContactID,
			&m.TenantID,
			&m.DisplayName,
			&m.ContactService,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.Version,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contact row", err)
		}
		contacts[m.ContactID] = mapping.ToDomainContact(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating contact rows", err)
	}
	return contacts, nil
}
