package domain

import "github.com/shopspring/decimal"

// ContactType is the role a contact plays towards the tenant.
type ContactType string

const (
	ContactCustomer ContactType = "customer"
	ContactVendor   ContactType = "vendor"
)

// Valid reports whether t is one of the known contact types.
func (t ContactType) Valid() bool {
	return t == ContactCustomer || t == ContactVendor
}

// Contact is a customer or vendor of a tenant.
type Contact struct {
	ContactID      string          `json:"contactID"`
	TenantID       string          `json:"tenantID"`
	DisplayName    string          `json:"displayName"`
	ContactService ContactType     `json:"contactService"`
	Balance        decimal.Decimal `json:"balance"`
	AuditFields
}
