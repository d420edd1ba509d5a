package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine mirrors a row of the ledger_lines table.
type LedgerLine struct {
	LineID      string          `db:"line_id"`
	TenantID    string          `db:"tenant_id"`
	SourceType  string          `db:"source_type"`
	SourceID    string          `db:"source_id"`
	LineIndex   int             `db:"line_index"`
	AccountID   string          `db:"account_id"`
	ContactID   *string         `db:"contact_id"`   // Nullable
	ContactType *string         `db:"contact_type"` // Nullable
	Credit      decimal.Decimal `db:"credit"`
	Debit       decimal.Decimal `db:"debit"`
	LineDate    time.Time       `db:"line_date"`
	Note        *string         `db:"note"` // Nullable
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}
