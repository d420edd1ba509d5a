package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// journalPoster stages ledger changes in memory. Reverting and posting only
// accumulate; nothing is written until the commit is handed to the ledger store.
type journalPoster struct {
	tenantID      string
	accounts      map[string]domain.Account
	removed       []string
	newLines      []domain.LedgerLine
	accountDeltas map[string]decimal.Decimal
	contactDeltas map[string]decimal.Decimal
	newLineID     func() string
}

func newJournalPoster(tenantID string, accounts map[string]domain.Account) *journalPoster {
	return &journalPoster{
		tenantID:      tenantID,
		accounts:      accounts,
		accountDeltas: make(map[string]decimal.Decimal),
		contactDeltas: make(map[string]decimal.Decimal),
		newLineID:     uuid.NewString,
	}
}

// revert stages removal of previously posted lines and undoes their balance effect.
func (p *journalPoster) revert(lines []domain.LedgerLine) error {
	for _, line := range lines {
		if err := p.applyBalances(line, true); err != nil {
			return err
		}
		p.removed = append(p.removed, line.LineID)
	}
	return nil
}

// post stages one ledger line per journal entry, in entry index order.
func (p *journalPoster) post(journal domain.ManualJournal, now time.Time) error {
	entries := make([]domain.JournalEntry, len(journal.Entries))
	copy(entries, journal.Entries)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	createdBy := journal.LastUpdatedBy
	if createdBy == "" {
		createdBy = journal.CreatedBy
	}

	for _, e := range entries {
		line := domain.LedgerLine{
			LineID:      p.newLineID(),
			TenantID:    p.tenantID,
			SourceType:  domain.LedgerSourceJournal,
			SourceID:    journal.ID,
			Index:       e.Index,
			AccountID:   e.AccountID,
			ContactID:   e.ContactID,
			ContactType: e.ContactType,
			Credit:      e.Credit,
			Debit:       e.Debit,
			Date:        journal.Date,
			Note:        e.Note,
			CreatedAt:   now,
			CreatedBy:   createdBy,
		}
		if err := p.applyBalances(line, false); err != nil {
			return err
		}
		p.newLines = append(p.newLines, line)
	}
	return nil
}

func (p *journalPoster) applyBalances(line domain.LedgerLine, reverse bool) error {
	account, ok := p.accounts[line.AccountID]
	if !ok {
		return fmt.Errorf("%w: account %s of ledger line %s", apperrors.ErrNotFound, line.AccountID, line.LineID)
	}

	change, err := accounting.CalculateSignedAmount(line.Debit, line.Credit, account.AccountType)
	if err != nil {
		return fmt.Errorf("ledger line %s: %w", line.LineID, err)
	}
	contactChange := decimal.Zero
	if line.ContactID != "" {
		contactChange = accounting.ContactBalanceChange(line.Debit, line.Credit, line.ContactType)
	}
	if reverse {
		change = change.Neg()
		contactChange = contactChange.Neg()
	}

	accounting.AddDelta(p.accountDeltas, line.AccountID, change)
	accounting.AddDelta(p.contactDeltas, line.ContactID, contactChange)
	return nil
}

func (p *journalPoster) commit() domain.PostingCommit {
	return domain.PostingCommit{
		TenantID:       p.tenantID,
		RemovedLineIDs: p.removed,
		NewLines:       p.newLines,
		AccountDeltas:  p.accountDeltas,
		ContactDeltas:  p.contactDeltas,
	}
}
