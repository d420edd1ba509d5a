package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one line of a manual journal.
type JournalEntry struct {
	Index       int             `json:"index"`
	AccountID   string          `json:"accountId"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	ContactID   string          `json:"contactId,omitempty"`
	ContactType ContactType     `json:"contactType,omitempty"`
	Note        string          `json:"note,omitempty"`
}

// MediaLink attaches an uploaded document to a journal.
type MediaLink struct {
	MediaID string `json:"mediaId"`
}

// ManualJournal is a user-entered, balanced double-entry record.
type ManualJournal struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	JournalNumber string          `json:"journalNumber"`
	Date          time.Time       `json:"date"`
	Reference     string          `json:"reference,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	PublishedAt   *time.Time      `json:"publishedAt,omitempty"`
	Entries       []JournalEntry  `json:"entries"`
	Media         []MediaLink     `json:"media,omitempty"`
	Transactions  []LedgerLine    `json:"transactions,omitempty"`
	AuditFields
}

// IsPublished reports whether the journal has been published.
func (j ManualJournal) IsPublished() bool {
	return j.PublishedAt != nil
}

// TotalCredit sums the credit side of the entries.
func (j ManualJournal) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Entries {
		total = total.Add(e.Credit)
	}
	return total
}

// TotalDebit sums the debit side of the entries.
func (j ManualJournal) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// BulkPublishResult summarises a bulk publish request.
type BulkPublishResult struct {
	AlreadyPublished int `json:"alreadyPublished"`
	Published        int `json:"published"`
	Total            int `json:"total"`
}

// ManualJournalFilter narrows and orders a journal listing.
type ManualJournalFilter struct {
	Page       int
	PageSize   int
	SortColumn string
	SortOrder  string
	Search     string
	Status     string
}

// Journal status filter values.
const (
	JournalStatusDraft     = "draft"
	JournalStatusPublished = "published"
)
