package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSourceJournal tags ledger lines posted from manual journals.
const LedgerSourceJournal = "Journal"

// LedgerLine is a posted account transaction derived from a source document.
type LedgerLine struct {
	LineID      string          `json:"lineId"`
	TenantID    string          `json:"tenantId"`
	SourceType  string          `json:"sourceType"`
	SourceID    string          `json:"sourceId"`
	Index       int             `json:"index"`
	AccountID   string          `json:"accountId"`
	ContactID   string          `json:"contactId,omitempty"`
	ContactType ContactType     `json:"contactType,omitempty"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// PostingCommit is everything a ledger write must apply atomically.
type PostingCommit struct {
	TenantID       string
	RemovedLineIDs []string
	NewLines       []LedgerLine
	AccountDeltas  map[string]decimal.Decimal
	ContactDeltas  map[string]decimal.Decimal
}

// IsEmpty reports whether applying the commit would change nothing.
func (c PostingCommit) IsEmpty() bool {
	return len(c.RemovedLineIDs) == 0 && len(c.NewLines) == 0 &&
		len(c.AccountDeltas) == 0 && len(c.ContactDeltas) == 0
}
