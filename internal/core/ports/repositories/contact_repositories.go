package repositories

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
)

// ContactReader defines read operations for customers and vendors
type ContactReader interface {
	// FindContactsByIDs retrieves the contacts of a tenant matching the given ids.
	FindContactsByIDs(ctx context.Context, tenantID string, contactIDs []string) (map[string]domain.Contact, error)
}

// JournalNumberSequencer issues the next automatic journal number of a tenant
type JournalNumberSequencer interface {
	// NextJournalNumber returns the number the next journal would receive and
	// whether automatic numbering is enabled for the tenant.
	NextJournalNumber(ctx context.Context, tenantID string) (string, bool, error)

	// IncrementJournalNumber advances the tenant sequence by one.
	IncrementJournalNumber(ctx context.Context, tenantID string) error
}
