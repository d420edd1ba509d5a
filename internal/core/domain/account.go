package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Well-known account slugs that require a contact on every entry.
const (
	AccountsReceivableSlug = "accounts-receivable"
	AccountsPayableSlug    = "accounts-payable"
)

// Account is a chart-of-accounts entry of a tenant. The journals service only reads it,
// except for the persisted balance which the ledger poster maintains.
type Account struct {
	AccountID    string          `json:"accountID"`
	TenantID     string          `json:"tenantID"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	Balance      decimal.Decimal `json:"balance"`
	AuditFields
}
