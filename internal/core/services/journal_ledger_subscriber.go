package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
)

// JournalLedgerSubscriber keeps the ledger in step with manual journal lifecycle events.
// Only published journals are ever present in the ledger.
type JournalLedgerSubscriber struct {
	BaseService
	posting portssvc.JournalPostingSvc
}

// NewJournalLedgerSubscriber creates an event sink that posts and reverts ledger lines.
func NewJournalLedgerSubscriber(posting portssvc.JournalPostingSvc, logger *slog.Logger) *JournalLedgerSubscriber {
	return &JournalLedgerSubscriber{
		BaseService: BaseService{Logger: logger},
		posting:     posting,
	}
}

var _ portssvc.ManualJournalEventSink = (*JournalLedgerSubscriber)(nil)

// Emit reacts to one event. Failures are logged, never returned.
func (s *JournalLedgerSubscriber) Emit(ctx context.Context, event domain.ManualJournalEvent) {
	var err error
	switch event.Name {
	case domain.EventManualJournalCreated, domain.EventManualJournalPublished:
		if event.Journal != nil && event.Journal.IsPublished() {
			err = s.posting.WriteJournalEntries(ctx, event.TenantID, []domain.ManualJournal{*event.Journal}, false)
		}
	case domain.EventManualJournalEdited:
		if event.Journal != nil && event.Journal.IsPublished() {
			err = s.posting.WriteJournalEntries(ctx, event.TenantID, []domain.ManualJournal{*event.Journal}, true)
		}
	case domain.EventManualJournalDeleted:
		if event.OldJournal != nil && event.OldJournal.IsPublished() {
			err = s.posting.RevertJournalEntries(ctx, event.TenantID, []string{event.OldJournal.ID})
		}
	case domain.EventManualJournalDeletedBulk:
		if ids := publishedIDs(event.Journals); len(ids) > 0 {
			err = s.posting.RevertJournalEntries(ctx, event.TenantID, ids)
		}
	case domain.EventManualJournalPublishedBulk:
		journals := make([]domain.ManualJournal, 0, len(event.Journals))
		for _, j := range event.Journals {
			if j.IsPublished() {
				journals = append(journals, j)
			}
		}
		if len(journals) > 0 {
			err = s.posting.WriteJournalEntries(ctx, event.TenantID, journals, false)
		}
	}

	if err != nil {
		s.LogError(ctx, err, "Failed to sync ledger for manual journal event",
			slog.String("event", string(event.Name)),
			slog.String("tenant_id", event.TenantID),
			slog.Any("journal_ids", event.JournalIDs()))
	}
}

func publishedIDs(journals []domain.ManualJournal) []string {
	ids := make([]string, 0, len(journals))
	for _, j := range journals {
		if j.IsPublished() {
			ids = append(ids, j.ID)
		}
	}
	return ids
}
