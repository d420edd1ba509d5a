package services

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/dto"
)

// ManualJournalReaderSvc defines read operations for manual journals
type ManualJournalReaderSvc interface {
	// GetManualJournal retrieves a journal with its entries, ledger transactions and media.
	GetManualJournal(ctx context.Context, tenantID string, journalID string) (*domain.ManualJournal, error)

	// ListManualJournals retrieves a filtered, sorted page of journals.
	ListManualJournals(ctx context.Context, tenantID string, params dto.ListManualJournalsParams) (*dto.ListManualJournalsResponse, error)
}

// ManualJournalWriterSvc defines the lifecycle operations of manual journals
type ManualJournalWriterSvc interface {
	// CreateManualJournal validates and persists a new journal.
	CreateManualJournal(ctx context.Context, tenantID string, req dto.ManualJournalRequest, actingUserID string) (*domain.ManualJournal, error)

	// EditManualJournal re-validates and replaces a journal. Returns the new and the old state.
	EditManualJournal(ctx context.Context, tenantID string, journalID string, req dto.ManualJournalRequest, actingUserID string) (*domain.ManualJournal, *domain.ManualJournal, error)

	// DeleteManualJournal removes a journal and returns its last state.
	DeleteManualJournal(ctx context.Context, tenantID string, journalID string, actingUserID string) (*domain.ManualJournal, error)

	// DeleteManualJournals removes every listed journal or none of them.
	DeleteManualJournals(ctx context.Context, tenantID string, journalIDs []string, actingUserID string) ([]domain.ManualJournal, error)

	// PublishManualJournal publishes a draft journal.
	PublishManualJournal(ctx context.Context, tenantID string, journalID string, actingUserID string) (*domain.ManualJournal, error)

	// PublishManualJournals publishes the drafts among the listed journals.
	PublishManualJournals(ctx context.Context, tenantID string, journalIDs []string, actingUserID string) (*domain.BulkPublishResult, error)
}

// ManualJournalSvcFacade combines all manual journal service interfaces
type ManualJournalSvcFacade interface {
	ManualJournalReaderSvc
	ManualJournalWriterSvc
}

// JournalPostingSvc projects manual journals into the ledger
type JournalPostingSvc interface {
	// WriteJournalEntries posts the entries of journals. With override, lines previously
	// posted for the same journals are removed first.
	WriteJournalEntries(ctx context.Context, tenantID string, journals []domain.ManualJournal, override bool) error

	// RevertJournalEntries removes the ledger lines posted for the journals.
	RevertJournalEntries(ctx context.Context, tenantID string, journalIDs []string) error

	// PostManualJournals loads journals by id and posts them.
	PostManualJournals(ctx context.Context, tenantID string, journalIDs []string, override bool) error
}

// ManualJournalEventSink receives lifecycle notifications. Delivery is fire-and-forget:
// sinks handle and log their own failures.
type ManualJournalEventSink interface {
	Emit(ctx context.Context, event domain.ManualJournalEvent)
}
