package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	"github.com/SscSPs/manual_journal_service/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// manualJournalValidator runs the ordered, fail-fast checks shared by create and edit.
// It only reads.
type manualJournalValidator struct {
	accountRepo portsrepo.AccountReader
	contactRepo portsrepo.ContactReader
	journalRepo portsrepo.ManualJournalReader
}

// validate checks journal in order: entry indexes, balance, contacts, accounts, number uniqueness
// and contact assignment on receivable/payable accounts. excludeID is the journal
// being edited, empty on create.
func (v *manualJournalValidator) validate(ctx context.Context, tenantID string, journal domain.ManualJournal, excludeID string) error {
	if err := validateEntryIndexes(journal.Entries); err != nil {
		return err
	}
	if err := validateCreditDebitBalance(journal.Entries); err != nil {
		return err
	}
	if err := v.validateContacts(ctx, tenantID, journal.Entries); err != nil {
		return err
	}
	if err := v.validateAccountsExist(ctx, tenantID, journal.Entries); err != nil {
		return err
	}
	if err := v.validateJournalNumberUnique(ctx, tenantID, journal.JournalNumber, excludeID); err != nil {
		return err
	}
	return v.validateContactAssignment(ctx, tenantID, journal.Entries)
}

// validateEntryIndexes rejects entries sharing an index. Entries arrive sorted
// by index, so duplicates are adjacent.
func validateEntryIndexes(entries []domain.JournalEntry) error {
	var dup []int
	for i := 1; i < len(entries); i++ {
		if entries[i].Index != entries[i-1].Index {
			continue
		}
		if len(dup) == 0 || dup[len(dup)-1] != entries[i].Index {
			dup = append(dup, entries[i].Index)
		}
	}
	if len(dup) == 0 {
		return nil
	}
	return apperrors.NewServiceError(apperrors.KindDuplicateEntryIndex,
		fmt.Sprintf("entry indexes %v are used more than once", dup),
		apperrors.DuplicateEntryIndexPayload{Indexes: dup})
}

func validateCreditDebitBalance(entries []domain.JournalEntry) error {
	credit, debit := accounting.SumEntries(entries)

	if !credit.IsPositive() || !debit.IsPositive() {
		return apperrors.NewServiceError(apperrors.KindCreditDebitNotEqualZero,
			"total credit and total debit must both be greater than zero", nil)
	}
	if !credit.Equal(debit) {
		return apperrors.NewServiceError(apperrors.KindCreditDebitNotEqual,
			fmt.Sprintf("total credit %s does not equal total debit %s", credit, debit), nil)
	}
	return nil
}

// validateContacts requires every referenced contact to exist with a service
// matching the entry's contact type. All offenders are reported.
func (v *manualJournalValidator) validateContacts(ctx context.Context, tenantID string, entries []domain.JournalEntry) error {
	contactIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.ContactID != "" {
			contactIDs = append(contactIDs, e.ContactID)
		}
	}
	contactIDs = uniqueStrings(contactIDs)
	if len(contactIDs) == 0 {
		return nil
	}

	contacts, err := v.contactRepo.FindContactsByIDs(ctx, tenantID, contactIDs)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	notFound := make([]string, 0)
	for _, e := range entries {
		if e.ContactID == "" {
			continue
		}
		contact, ok := contacts[e.ContactID]
		if !ok || contact.ContactService != e.ContactType {
			notFound = append(notFound, e.ContactID)
		}
	}
	notFound = uniqueStrings(notFound)

	if len(notFound) > 0 {
		return apperrors.NewServiceError(apperrors.KindContactsNotFound,
			fmt.Sprintf("%d contact(s) not found", len(notFound)),
			apperrors.ContactsNotFoundPayload{ContactIDs: notFound})
	}
	return nil
}

func (v *manualJournalValidator) validateAccountsExist(ctx context.Context, tenantID string, entries []domain.JournalEntry) error {
	accountIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		accountIDs = append(accountIDs, e.AccountID)
	}
	accountIDs = uniqueStrings(accountIDs)

	accounts, err := v.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	missing := make([]string, 0)
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return apperrors.NewServiceError(apperrors.KindAccountsIDsNotFound,
			fmt.Sprintf("%d account(s) not found", len(missing)),
			apperrors.AccountsNotFoundPayload{AccountIDs: missing})
	}
	return nil
}

func (v *manualJournalValidator) validateJournalNumberUnique(ctx context.Context, tenantID, number, excludeID string) error {
	if number == "" {
		return nil
	}
	exists, err := v.journalRepo.ExistsByJournalNumber(ctx, tenantID, number, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check journal number: %w", err)
	}
	if exists {
		return journalNumberExistsError(number)
	}
	return nil
}

func journalNumberExistsError(number string) error {
	return apperrors.NewServiceError(apperrors.KindJournalNumberExists,
		fmt.Sprintf("journal number %q is already in use", number), nil)
}

// validateContactAssignment runs the receivable and payable checks concurrently.
// Both must pass; when both fail the receivable violation is reported.
func (v *manualJournalValidator) validateContactAssignment(ctx context.Context, tenantID string, entries []domain.JournalEntry) error {
	var receivableIdx, payableIdx []int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		receivableIdx, err = v.entriesMissingContact(gctx, tenantID, entries, domain.AccountsReceivableSlug, domain.ContactCustomer)
		return err
	})
	g.Go(func() error {
		var err error
		payableIdx, err = v.entriesMissingContact(gctx, tenantID, entries, domain.AccountsPayableSlug, domain.ContactVendor)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(receivableIdx) > 0 {
		return contactAssignmentError(receivableIdx, domain.AccountsReceivableSlug, domain.ContactCustomer)
	}
	if len(payableIdx) > 0 {
		return contactAssignmentError(payableIdx, domain.AccountsPayableSlug, domain.ContactVendor)
	}
	return nil
}

// entriesMissingContact returns the indexes of entries on the account identified by
// slug that lack a contact of contactType. A tenant without such an account has none.
func (v *manualJournalValidator) entriesMissingContact(ctx context.Context, tenantID string, entries []domain.JournalEntry, slug string, contactType domain.ContactType) ([]int, error) {
	account, err := v.accountRepo.FindAccountBySlug(ctx, tenantID, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s account: %w", slug, err)
	}

	var indexes []int
	for _, e := range entries {
		if e.AccountID != account.AccountID {
			continue
		}
		if e.ContactID == "" || e.ContactType != contactType {
			indexes = append(indexes, e.Index)
		}
	}
	return indexes, nil
}

func contactAssignmentError(indexes []int, slug string, contactType domain.ContactType) error {
	return apperrors.NewServiceError(apperrors.KindEntriesShouldHaveContact,
		fmt.Sprintf("entries on %s must be assigned a %s", slug, contactType),
		apperrors.ContactAssignmentPayload{
			Indexes:     indexes,
			AccountSlug: slug,
			ContactType: string(contactType),
		})
}

// uniqueStrings removes duplicates, keeping first occurrence order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := make([]string, 0, len(input))
	for _, s := range input {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
