package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/dto"
	"github.com/SscSPs/manual_journal_service/internal/utils/accounting"
)

// parseJournalDate accepts a calendar date or an RFC3339 timestamp and normalizes
// it to midnight UTC.
func parseJournalDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid journal date %q", apperrors.ErrValidation, raw)
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// transformRequest builds the journal a request describes. Identity, number,
// publication and audit fields are left for the caller.
func transformRequest(tenantID string, req dto.ManualJournalRequest, baseCurrency string) (domain.ManualJournal, error) {
	date, err := parseJournalDate(req.Date)
	if err != nil {
		return domain.ManualJournal{}, err
	}

	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.JournalEntry{
			Index:       e.Index,
			AccountID:   strings.TrimSpace(e.AccountID),
			Credit:      e.Credit,
			Debit:       e.Debit,
			ContactID:   strings.TrimSpace(e.ContactID),
			ContactType: domain.ContactType(e.ContactType),
			Note:        e.Note,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	credit, _ := accounting.SumEntries(entries)

	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = baseCurrency
	}

	var media []domain.MediaLink
	for _, id := range uniqueStrings(req.MediaIDs) {
		media = append(media, domain.MediaLink{MediaID: id})
	}

	return domain.ManualJournal{
		TenantID:      tenantID,
		JournalNumber: strings.TrimSpace(req.JournalNumber),
		Date:          date,
		Reference:     strings.TrimSpace(req.Reference),
		Description:   req.Description,
		Amount:        credit,
		CurrencyCode:  currency,
		Entries:       entries,
		Media:         media,
	}, nil
}
