package models

import "github.com/shopspring/decimal"

// Contact mirrors a row of the contacts table.
type Contact struct {
	ContactID      string          `db:"contact_id"`
	TenantID       string          `db:"tenant_id"`
	DisplayName    string          `db:"display_name"`
	ContactService string          `db:"contact_service"`
	Balance        decimal.Decimal `db:"balance"`
	AuditFields
}
