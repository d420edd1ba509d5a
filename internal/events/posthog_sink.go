package events

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/utils"
)

// PosthogSink captures lifecycle events as product analytics.
type PosthogSink struct {
	client *utils.PosthogClientWrapper
}

func NewPosthogSink(client *utils.PosthogClientWrapper) *PosthogSink {
	return &PosthogSink{client: client}
}

func (s *PosthogSink) Emit(_ context.Context, event domain.ManualJournalEvent) {
	if !s.client.IsInitialized() {
		return
	}
	distinctID := event.ActingUserID
	if distinctID == "" {
		distinctID = event.TenantID
	}
	s.client.Enqueue(distinctID, string(event.Name), eventProperties(event))
}

func eventProperties(event domain.ManualJournalEvent) map[string]any {
	props := map[string]any{
		"tenant_id":     event.TenantID,
		"journal_ids":   event.JournalIDs(),
		"journal_count": len(event.JournalIDs()),
	}
	if event.Journal != nil {
		props["journal_number"] = event.Journal.JournalNumber
		props["amount"] = event.Journal.Amount.String()
		props["currency_code"] = event.Journal.CurrencyCode
		props["is_published"] = event.Journal.IsPublished()
	}
	return props
}
