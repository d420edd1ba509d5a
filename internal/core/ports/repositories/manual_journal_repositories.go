package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
)

// ManualJournalReader defines read operations for manual journals
type ManualJournalReader interface {
	// FindManualJournalByID retrieves a journal with its entries and media.
	// Returns apperrors.ErrNotFound when absent.
	FindManualJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.ManualJournal, error)

	// FindManualJournalsByIDs retrieves the journals that exist among ids, with entries.
	FindManualJournalsByIDs(ctx context.Context, tenantID string, journalIDs []string) ([]domain.ManualJournal, error)

	// ExistsByJournalNumber reports whether another journal of the tenant uses number.
	// excludeID, when non-empty, is ignored in the check.
	ExistsByJournalNumber(ctx context.Context, tenantID string, number string, excludeID string) (bool, error)

	// ListManualJournals returns one page of journals and the total match count.
	ListManualJournals(ctx context.Context, tenantID string, filter domain.ManualJournalFilter) ([]domain.ManualJournal, int, error)
}

// ManualJournalWriter defines write operations for manual journals
type ManualJournalWriter interface {
	// UpsertManualJournal inserts the journal graph when expectedVersion is 0, otherwise
	// updates the parent (only if its stored version equals expectedVersion) and replaces
	// entries and media. Parent and children are written in one transaction.
	// A version mismatch fails with apperrors.ErrConflict.
	UpsertManualJournal(ctx context.Context, journal domain.ManualJournal, expectedVersion int64) (*domain.ManualJournal, error)

	// DeleteManualJournals removes the journals and their children in one transaction.
	// Children are deleted before parents; if any id is missing nothing is deleted.
	DeleteManualJournals(ctx context.Context, tenantID string, journalIDs []string) error

	// MarkManualJournalsPublished stamps publishedAt on the still-draft journals among ids
	// and returns how many rows changed.
	MarkManualJournalsPublished(ctx context.Context, tenantID string, journalIDs []string, publishedAt time.Time, userID string) (int64, error)
}

// ManualJournalRepositoryFacade combines all manual journal repository interfaces
type ManualJournalRepositoryFacade interface {
	ManualJournalReader
	ManualJournalWriter
}
