package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestManualJournal_Totals(t *testing.T) {
	journal := domain.ManualJournal{
		Entries: []domain.JournalEntry{
			{Index: 1, Debit: decimal.RequireFromString("10.25")},
			{Index: 2, Debit: decimal.RequireFromString("4.75")},
			{Index: 3, Credit: decimal.NewFromInt(15)},
		},
	}

	assert.True(t, journal.TotalDebit().Equal(decimal.NewFromInt(15)))
	assert.True(t, journal.TotalCredit().Equal(decimal.NewFromInt(15)))
	assert.False(t, journal.IsPublished())

	now := time.Now()
	journal.PublishedAt = &now
	assert.True(t, journal.IsPublished())
}

func TestContactType_Valid(t *testing.T) {
	assert.True(t, domain.ContactCustomer.Valid())
	assert.True(t, domain.ContactVendor.Valid())
	assert.False(t, domain.ContactType("employee").Valid())
	assert.False(t, domain.ContactType("").Valid())
}

func TestManualJournalEvent_JournalIDs(t *testing.T) {
	single := domain.ManualJournalEvent{Journal: &domain.ManualJournal{ID: "j1"}, OldJournal: &domain.ManualJournal{ID: "j1"}}
	assert.Equal(t, []string{"j1"}, single.JournalIDs())

	deleted := domain.ManualJournalEvent{OldJournal: &domain.ManualJournal{ID: "j2"}}
	assert.Equal(t, []string{"j2"}, deleted.JournalIDs())

	bulk := domain.ManualJournalEvent{Journals: []domain.ManualJournal{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, []string{"a", "b"}, bulk.JournalIDs())
}

func TestPostingCommit_IsEmpty(t *testing.T) {
	assert.True(t, domain.PostingCommit{}.IsEmpty())
	assert.False(t, domain.PostingCommit{RemovedLineIDs: []string{"l1"}}.IsEmpty())
	assert.False(t, domain.PostingCommit{AccountDeltas: map[string]decimal.Decimal{"a": decimal.NewFromInt(1)}}.IsEmpty())
}
