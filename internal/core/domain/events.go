package domain

import "time"

// ManualJournalEventName identifies a lifecycle notification.
type ManualJournalEventName string

const (
	EventManualJournalCreated       ManualJournalEventName = "manual_journal.created"
	EventManualJournalEdited        ManualJournalEventName = "manual_journal.edited"
	EventManualJournalDeleted       ManualJournalEventName = "manual_journal.deleted"
	EventManualJournalDeletedBulk   ManualJournalEventName = "manual_journal.deleted_bulk"
	EventManualJournalPublished     ManualJournalEventName = "manual_journal.published"
	EventManualJournalPublishedBulk ManualJournalEventName = "manual_journal.published_bulk"
)

// ManualJournalEvent is emitted after a lifecycle operation commits.
// Journal holds the resulting record, OldJournal the prior state on edit and
// delete, Journals the affected set of a bulk operation.
type ManualJournalEvent struct {
	Name         ManualJournalEventName `json:"name"`
	TenantID     string                 `json:"tenantId"`
	ActingUserID string                 `json:"actingUserId,omitempty"`
	Journal      *ManualJournal         `json:"journal,omitempty"`
	OldJournal   *ManualJournal         `json:"oldJournal,omitempty"`
	Journals     []ManualJournal        `json:"journals,omitempty"`
	OccurredAt   time.Time              `json:"occurredAt"`
}

// JournalIDs returns the ids of every journal carried by the event.
func (e ManualJournalEvent) JournalIDs() []string {
	ids := make([]string, 0, len(e.Journals)+1)
	switch {
	case e.Journal != nil:
		ids = append(ids, e.Journal.ID)
	case e.OldJournal != nil:
		ids = append(ids, e.OldJournal.ID)
	}
	for _, j := range e.Journals {
		ids = append(ids, j.ID)
	}
	return ids
}
