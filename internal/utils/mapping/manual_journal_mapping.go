package mapping

import (
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/models"
)

// ToModelManualJournal converts a domain ManualJournal to its table row.
// Entries and media are mapped separately.
func ToModelManualJournal(d domain.ManualJournal) models.ManualJournal {
	return models.ManualJournal{
		ManualJournalID: d.ID,
		TenantID:        d.TenantID,
		JournalNumber:   d.JournalNumber,
		JournalDate:     d.Date,
		Reference:       nullableString(d.Reference),
		Description:     nullableString(d.Description),
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		PublishedAt:     d.PublishedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainManualJournal converts a manual_journals row to a domain ManualJournal.
func ToDomainManualJournal(m models.ManualJournal) domain.ManualJournal {
	return domain.ManualJournal{
		ID:            m.ManualJournalID,
		TenantID:      m.TenantID,
		JournalNumber: m.JournalNumber,
		Date:          m.JournalDate,
		Reference:     derefString(m.Reference),
		Description:   derefString(m.Description),
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		PublishedAt:   m.PublishedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain entry to its row. The caller assigns EntryID.
func ToModelJournalEntry(journalID string, d domain.JournalEntry) models.ManualJournalEntry {
	return models.ManualJournalEntry{
		ManualJournalID: journalID,
		EntryIndex:      d.Index,
		AccountID:       d.AccountID,
		Credit:          d.Credit,
		Debit:           d.Debit,
		ContactID:       nullableString(d.ContactID),
		ContactType:     nullableString(string(d.ContactType)),
		Note:            nullableString(d.Note),
	}
}

// ToDomainJournalEntry converts a manual_journal_entries row to a domain entry.
func ToDomainJournalEntry(m models.ManualJournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		Index:       m.EntryIndex,
		AccountID:   m.AccountID,
		Credit:      m.Credit,
		Debit:       m.Debit,
		ContactID:   derefString(m.ContactID),
		ContactType: domain.ContactType(derefString(m.ContactType)),
		Note:        derefString(m.Note),
	}
}

// ToModelLedgerLine converts a domain LedgerLine to its row.
func ToModelLedgerLine(d domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:      d.LineID,
		TenantID:    d.TenantID,
		SourceType:  d.SourceType,
		SourceID:    d.SourceID,
		LineIndex:   d.Index,
		AccountID:   d.AccountID,
		ContactID:   nullableString(d.ContactID),
		ContactType: nullableString(string(d.ContactType)),
		Credit:      d.Credit,
		Debit:       d.Debit,
		LineDate:    d.Date,
		Note:        nullableString(d.Note),
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainLedgerLine converts a ledger_lines row to a domain LedgerLine.
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:      m.LineID,
		TenantID:    m.TenantID,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		Index:       m.LineIndex,
		AccountID:   m.AccountID,
		ContactID:   derefString(m.ContactID),
		ContactType: domain.ContactType(derefString(m.ContactType)),
		Credit:      m.Credit,
		Debit:       m.Debit,
		Date:        m.LineDate,
		Note:        derefString(m.Note),
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}
