package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualJournal mirrors a row of the manual_journals table.
type ManualJournal struct {
	ManualJournalID string          `db:"manual_journal_id"`
	TenantID        string          `db:"tenant_id"`
	JournalNumber   string          `db:"journal_number"`
	JournalDate     time.Time       `db:"journal_date"`
	Reference       *string         `db:"reference"`   // Nullable
	Description     *string         `db:"description"` // Nullable
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	PublishedAt     *time.Time      `db:"published_at"` // Nullable, NULL means draft
	AuditFields
}

// ManualJournalEntry mirrors a row of the manual_journal_entries table.
type ManualJournalEntry struct {
	EntryID         string          `db:"entry_id"`
	ManualJournalID string          `db:"manual_journal_id"`
	EntryIndex      int             `db:"entry_index"`
	AccountID       string          `db:"account_id"`
	Credit          decimal.Decimal `db:"credit"`
	Debit           decimal.Decimal `db:"debit"`
	ContactID       *string         `db:"contact_id"`   // Nullable
	ContactType     *string         `db:"contact_type"` // Nullable
	Note            *string         `db:"note"`         // Nullable
}

// ManualJournalMedia mirrors a row of the manual_journal_media link table.
type ManualJournalMedia struct {
	ManualJournalID string `db:"manual_journal_id"`
	MediaID         string `db:"media_id"`
}
