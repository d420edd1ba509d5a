package repositories

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
)

// LedgerRepository stores posted ledger lines and the balances derived from them
type LedgerRepository interface {
	// FindLedgerLinesBySource retrieves the lines posted for the given source documents.
	FindLedgerLinesBySource(ctx context.Context, tenantID string, sourceType string, sourceIDs []string) ([]domain.LedgerLine, error)

	// CommitPosting applies account balance changes, deletes superseded lines, inserts
	// new lines and applies contact balance changes. Either all effects persist or none.
	CommitPosting(ctx context.Context, commit domain.PostingCommit) error
}
