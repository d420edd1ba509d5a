package dto

import (
	"time"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ManualJournalEntryRequest is one line of a create/edit request.
type ManualJournalEntryRequest struct {
	Index       int             `json:"index" binding:"required,min=1"`
	AccountID   string          `json:"accountId" binding:"required"`
	Credit      decimal.Decimal `json:"credit" binding:"gte=0"`
	Debit       decimal.Decimal `json:"debit" binding:"gte=0"`
	ContactID   string          `json:"contactId"`
	ContactType string          `json:"contactType" binding:"omitempty,oneof=customer vendor"`
	Note        string          `json:"note" binding:"max=1024"`
}

// ManualJournalRequest is the body of both create and edit.
// An empty JournalNumber asks for an automatic number on create and keeps the
// stored number on edit.
type ManualJournalRequest struct {
	Date          string                      `json:"date" binding:"required"` // YYYY-MM-DD or RFC3339
	JournalNumber string                      `json:"journalNumber" binding:"max=255"`
	Reference     string                      `json:"reference" binding:"max=255"`
	Description   string                      `json:"description" binding:"max=1024"`
	CurrencyCode  string                      `json:"currencyCode" binding:"omitempty,len=3"`
	Publish       bool                        `json:"publish"`
	Entries       []ManualJournalEntryRequest `json:"entries" binding:"required,min=2,dive"`
	MediaIDs      []string                    `json:"attachments" binding:"omitempty,dive,required"`
}

// BulkIDsRequest carries the targets of a bulk operation.
type BulkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// PostManualJournalsRequest asks for journals to be written to the ledger.
type PostManualJournalsRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1,dive,required"`
	Override bool     `json:"override"`
}

// ListManualJournalsParams holds the query parameters of a journal listing.
type ListManualJournalsParams struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1"`
	SortColumn string `form:"column_sort_by"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Search     string `form:"search_keyword"`
	Status     string `form:"status" binding:"omitempty,oneof=draft published"`
}

// FilterMeta echoes the effective listing filter back to the client.
type FilterMeta struct {
	SortColumn string `json:"columnSortBy"`
	SortOrder  string `json:"sortOrder"`
	Search     string `json:"searchKeyword,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ListManualJournalsResponse is one page of manual journals.
type ListManualJournalsResponse struct {
	ManualJournals []ManualJournalResponse `json:"manualJournals"`
	Pagination     pagination.Meta         `json:"pagination"`
	FilterMeta     FilterMeta              `json:"filterMeta"`
}

// ManualJournalEntryResponse is one line of a journal in API responses.
type ManualJournalEntryResponse struct {
	Index       int             `json:"index"`
	AccountID   string          `json:"accountId"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	ContactID   string          `json:"contactId,omitempty"`
	ContactType string          `json:"contactType,omitempty"`
	Note        string          `json:"note,omitempty"`
}

// LedgerLineResponse is a posted ledger line of a journal.
type LedgerLineResponse struct {
	LineID    string          `json:"id"`
	AccountID string          `json:"accountId"`
	ContactID string          `json:"contactId,omitempty"`
	Credit    decimal.Decimal `json:"credit"`
	Debit     decimal.Decimal `json:"debit"`
	Date      string          `json:"date"`
	Index     int             `json:"index"`
}

// ManualJournalResponse defines the data returned for a manual journal.
type ManualJournalResponse struct {
	ID            string                       `json:"id"`
	JournalNumber string                       `json:"journalNumber"`
	Date          string                       `json:"date"`
	Reference     string                       `json:"reference,omitempty"`
	Description   string                       `json:"description,omitempty"`
	Amount        decimal.Decimal              `json:"amount"`
	CurrencyCode  string                       `json:"currencyCode"`
	IsPublished   bool                         `json:"isPublished"`
	PublishedAt   *time.Time                   `json:"publishedAt,omitempty"`
	Entries       []ManualJournalEntryResponse `json:"entries"`
	Transactions  []LedgerLineResponse         `json:"transactions,omitempty"`
	Attachments   []string                     `json:"attachments,omitempty"`
	CreatedAt     time.Time                    `json:"createdAt"`
	CreatedBy     string                       `json:"createdBy"`
	UpdatedAt     time.Time                    `json:"updatedAt"`
	Version       int64                        `json:"version"`
}

// EditManualJournalResponse returns both sides of an edit.
type EditManualJournalResponse struct {
	ManualJournal    ManualJournalResponse `json:"manualJournal"`
	OldManualJournal ManualJournalResponse `json:"oldManualJournal"`
}

// DeleteManualJournalsResponse returns the snapshots of deleted journals.
type DeleteManualJournalsResponse struct {
	OldManualJournals []ManualJournalResponse `json:"oldManualJournals"`
}

const dateLayout = "2006-01-02"

// ToManualJournalResponse converts a domain.ManualJournal to its API form.
func ToManualJournalResponse(j *domain.ManualJournal) ManualJournalResponse {
	resp := ManualJournalResponse{
		ID:            j.ID,
		JournalNumber: j.JournalNumber,
		Date:          j.Date.Format(dateLayout),
		Reference:     j.Reference,
		Description:   j.Description,
		Amount:        j.Amount,
		CurrencyCode:  j.CurrencyCode,
		IsPublished:   j.IsPublished(),
		PublishedAt:   j.PublishedAt,
		Entries:       make([]ManualJournalEntryResponse, len(j.Entries)),
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
		UpdatedAt:     j.LastUpdatedAt,
		Version:       j.Version,
	}
	for i, e := range j.Entries {
		resp.Entries[i] = ManualJournalEntryResponse{
			Index:       e.Index,
			AccountID:   e.AccountID,
			Credit:      e.Credit,
			Debit:       e.Debit,
			ContactID:   e.ContactID,
			ContactType: string(e.ContactType),
			Note:        e.Note,
		}
	}
	for _, line := range j.Transactions {
		resp.Transactions = append(resp.Transactions, LedgerLineResponse{
			LineID:    line.LineID,
			AccountID: line.AccountID,
			ContactID: line.ContactID,
			Credit:    line.Credit,
			Debit:     line.Debit,
			Date:      line.Date.Format(dateLayout),
			Index:     line.Index,
		})
	}
	for _, m := range j.Media {
		resp.Attachments = append(resp.Attachments, m.MediaID)
	}
	return resp
}

// ToManualJournalResponses converts a slice of journals.
func ToManualJournalResponses(journals []domain.ManualJournal) []ManualJournalResponse {
	responses := make([]ManualJournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToManualJournalResponse(&journals[i])
	}
	return responses
}
