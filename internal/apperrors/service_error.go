package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the machine readable type of a manual journal failure.
// The values are part of the public API and must not change.
type Kind string

const (
	KindNotFound                 Kind = "NOT_FOUND"
	KindCreditDebitNotEqualZero  Kind = "CREDIT_DEBIT_NOT_EQUAL_ZERO"
	KindCreditDebitNotEqual      Kind = "CREDIT_DEBIT_NOT_EQUAL"
	KindAccountsIDsNotFound      Kind = "ACCCOUNTS_IDS_NOT_FOUND"
	KindContactsNotFound         Kind = "CONTACTS_NOT_FOUND"
	KindJournalNumberExists      Kind = "JOURNAL_NUMBER_EXISTS"
	KindEntriesShouldHaveContact Kind = "ENTRIES_SHOULD_ASSIGN_WITH_CONTACT"
	KindJournalNumberRequired    Kind = "MANUAL_JOURNAL_NO_REQUIRED"
	KindJournalAlreadyPublished  Kind = "MANUAL_JOURNAL_ALREADY_PUBLISHED"
	KindJournalVersionConflict   Kind = "MANUAL_JOURNAL_VERSION_CONFLICT"
	KindDuplicateEntryIndex      Kind = "DUPLICATE_ENTRY_INDEX"
)

// kindCodes keeps the numeric codes stable for clients that switch on them.
var kindCodes = map[Kind]int{
	KindNotFound:                 100,
	KindCreditDebitNotEqualZero:  200,
	KindCreditDebitNotEqual:      300,
	KindAccountsIDsNotFound:      400,
	KindJournalNumberExists:      500,
	KindEntriesShouldHaveContact: 600,
	KindContactsNotFound:         700,
	KindJournalNumberRequired:    800,
	KindJournalAlreadyPublished:  900,
	KindJournalVersionConflict:   1000,
	KindDuplicateEntryIndex:      1100,
}

// Code returns the numeric code registered for the kind, or 0.
func (k Kind) Code() int {
	return kindCodes[k]
}

// category maps a kind onto the sentinel that handlers branch on.
func (k Kind) category() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindJournalAlreadyPublished, KindJournalVersionConflict:
		return ErrConflict
	default:
		return ErrValidation
	}
}

// ContactsNotFoundPayload lists contact ids that were missing or had the wrong service.
type ContactsNotFoundPayload struct {
	ContactIDs []string `json:"contactIds"`
}

// AccountsNotFoundPayload lists referenced account ids that do not exist.
type AccountsNotFoundPayload struct {
	AccountIDs []string `json:"accountIds"`
}

// ContactAssignmentPayload describes entries on a receivable/payable account
// that lack the expected contact.
type ContactAssignmentPayload struct {
	Indexes     []int  `json:"indexes"`
	AccountSlug string `json:"accountSlug"`
	ContactType string `json:"contactType"`
}

// DuplicateEntryIndexPayload lists entry indexes used more than once.
type DuplicateEntryIndexPayload struct {
	Indexes []int `json:"indexes"`
}

// ServiceError is a typed manual journal failure. It unwraps to one of the
// package sentinels so callers can keep using errors.Is.
type ServiceError struct {
	Kind    Kind
	Message string
	Payload any
}

// NewServiceError creates a ServiceError of the given kind.
func NewServiceError(kind Kind, message string, payload any) *ServiceError {
	return &ServiceError{Kind: kind, Message: message, Payload: payload}
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Kind.category()
}

// KindOf extracts the Kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a ServiceError of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
