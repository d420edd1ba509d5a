package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/SscSPs/manual_journal_service/internal/dto"
	"github.com/SscSPs/manual_journal_service/internal/utils/pagination"
	"github.com/google/uuid"
)

// sortableColumns maps API sort keys to the columns the repository orders by.
var sortableColumns = map[string]string{
	"date":           "journal_date",
	"journal_number": "journal_number",
	"amount":         "amount",
	"created_at":     "created_at",
	"published_at":   "published_at",
}

const (
	defaultSortColumn = "date"
	defaultSortOrder  = "desc"
)

// NotFoundPayload lists the journal ids that could not be resolved.
type NotFoundPayload struct {
	IDs []string `json:"ids"`
}

// manualJournalService implements portssvc.ManualJournalSvcFacade
type manualJournalService struct {
	BaseService
	validator    manualJournalValidator
	journalRepo  portsrepo.ManualJournalRepositoryFacade
	numberRepo   portsrepo.JournalNumberSequencer
	ledgerRepo   portsrepo.LedgerRepository
	eventSink    portssvc.ManualJournalEventSink
	now          func() time.Time
	baseCurrency string
}

// NewManualJournalService creates the manual journals service. Every collaborator
// is passed explicitly; a nil sink discards events.
func NewManualJournalService(repos portsrepo.RepositoryProvider, sink portssvc.ManualJournalEventSink, options ...ServiceOption) portssvc.ManualJournalSvcFacade {
	opts := buildServiceOptions(options)
	if sink == nil {
		sink = nopEventSink{}
	}
	return &manualJournalService{
		BaseService: BaseService{Logger: opts.logger},
		validator: manualJournalValidator{
			accountRepo: repos.AccountRepo,
			contactRepo: repos.ContactRepo,
			journalRepo: repos.ManualJournalRepo,
		},
		journalRepo:  repos.ManualJournalRepo,
		numberRepo:   repos.JournalNumberRepo,
		ledgerRepo:   repos.LedgerRepo,
		eventSink:    sink,
		now:          opts.now,
		baseCurrency: opts.baseCurrency,
	}
}

var _ portssvc.ManualJournalSvcFacade = (*manualJournalService)(nil)

type nopEventSink struct{}

func (nopEventSink) Emit(context.Context, domain.ManualJournalEvent) {}

// CreateManualJournal validates and persists a new journal with its entries.
func (s *manualJournalService) CreateManualJournal(ctx context.Context, tenantID string, req dto.ManualJournalRequest, actingUserID string) (*domain.ManualJournal, error) {
	logger := s.GetLogger(ctx).With(slog.String("tenant_id", tenantID))

	journal, err := transformRequest(tenantID, req, s.baseCurrency)
	if err != nil {
		return nil, err
	}

	autoNumber := false
	if journal.JournalNumber == "" {
		next, enabled, err := s.numberRepo.NextJournalNumber(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve next journal number: %w", err)
		}
		if enabled && next != "" {
			journal.JournalNumber = next
			autoNumber = true
		}
	}
	if journal.JournalNumber == "" {
		return nil, apperrors.NewServiceError(apperrors.KindJournalNumberRequired, "journal number is required", nil)
	}

	if err := s.validator.validate(ctx, tenantID, journal, ""); err != nil {
		s.LogWarn(ctx, "Manual journal failed validation", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now().UTC()
	journal.ID = uuid.NewString()
	if req.Publish {
		journal.PublishedAt = &now
	}
	journal.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actingUserID,
	}

	saved, err := s.journalRepo.UpsertManualJournal(ctx, journal, 0)
	if err != nil {
		return nil, s.mapWriteError(err, journal.JournalNumber)
	}

	if autoNumber {
		if err := s.numberRepo.IncrementJournalNumber(ctx, tenantID); err != nil {
			s.LogError(ctx, err, "Failed to advance journal number sequence", slog.String("journal_id", saved.ID))
		}
	}

	logger.Info("Manual journal created", slog.String("journal_id", saved.ID), slog.String("journal_number", saved.JournalNumber))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalCreated,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		Journal:      saved,
	})
	return saved, nil
}

// EditManualJournal re-validates and replaces an existing journal.
func (s *manualJournalService) EditManualJournal(ctx context.Context, tenantID string, journalID string, req dto.ManualJournalRequest, actingUserID string) (*domain.ManualJournal, *domain.ManualJournal, error) {
	logger := s.GetLogger(ctx).With(slog.String("tenant_id", tenantID), slog.String("journal_id", journalID))

	old, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, nil, err
	}

	journal, err := transformRequest(tenantID, req, s.baseCurrency)
	if err != nil {
		return nil, nil, err
	}
	journal.ID = old.ID
	if journal.JournalNumber == "" {
		journal.JournalNumber = old.JournalNumber
	}

	now := s.now().UTC()
	journal.PublishedAt = old.PublishedAt
	if req.Publish && old.PublishedAt == nil {
		journal.PublishedAt = &now
	}

	if err := s.validator.validate(ctx, tenantID, journal, old.ID); err != nil {
		s.LogWarn(ctx, "Manual journal edit failed validation",
			slog.String("tenant_id", tenantID), slog.String("journal_id", journalID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	journal.AuditFields = domain.AuditFields{
		CreatedAt:     old.CreatedAt,
		CreatedBy:     old.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: actingUserID,
		Version:       old.Version,
	}

	if _, err := s.journalRepo.UpsertManualJournal(ctx, journal, old.Version); err != nil {
		return nil, nil, s.mapWriteError(err, journal.JournalNumber)
	}

	updated, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Manual journal edited", slog.Int64("version", updated.Version))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalEdited,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		Journal:      updated,
		OldJournal:   old,
	})
	return updated, old, nil
}

// DeleteManualJournal removes a journal with its entries.
func (s *manualJournalService) DeleteManualJournal(ctx context.Context, tenantID string, journalID string, actingUserID string) (*domain.ManualJournal, error) {
	old, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.DeleteManualJournals(ctx, tenantID, []string{journalID}); err != nil {
		return nil, s.mapWriteError(err, "")
	}

	s.LogInfo(ctx, "Manual journal deleted", slog.String("tenant_id", tenantID), slog.String("journal_id", journalID))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalDeleted,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		OldJournal:   old,
	})
	return old, nil
}

// DeleteManualJournals removes all listed journals, or none when any is missing.
func (s *manualJournalService) DeleteManualJournals(ctx context.Context, tenantID string, journalIDs []string, actingUserID string) ([]domain.ManualJournal, error) {
	journals, err := s.findJournals(ctx, tenantID, journalIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(journals))
	for i, j := range journals {
		ids[i] = j.ID
	}
	if err := s.journalRepo.DeleteManualJournals(ctx, tenantID, ids); err != nil {
		return nil, s.mapWriteError(err, "")
	}

	s.LogInfo(ctx, "Manual journals deleted", slog.String("tenant_id", tenantID), slog.Int("count", len(ids)))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalDeletedBulk,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		Journals:     journals,
	})
	return journals, nil
}

// PublishManualJournal publishes a draft journal.
func (s *manualJournalService) PublishManualJournal(ctx context.Context, tenantID string, journalID string, actingUserID string) (*domain.ManualJournal, error) {
	old, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, err
	}
	if old.IsPublished() {
		return nil, alreadyPublishedError(journalID)
	}

	changed, err := s.journalRepo.MarkManualJournalsPublished(ctx, tenantID, []string{journalID}, s.now().UTC(), actingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to publish manual journal %s: %w", journalID, err)
	}
	if changed == 0 {
		// Published concurrently between the read and the patch.
		return nil, alreadyPublishedError(journalID)
	}

	published, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Manual journal published", slog.String("tenant_id", tenantID), slog.String("journal_id", journalID))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalPublished,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		Journal:      published,
		OldJournal:   old,
	})
	return published, nil
}

// PublishManualJournals publishes the drafts among the listed journals and skips the rest.
func (s *manualJournalService) PublishManualJournals(ctx context.Context, tenantID string, journalIDs []string, actingUserID string) (*domain.BulkPublishResult, error) {
	journals, err := s.findJournals(ctx, tenantID, journalIDs)
	if err != nil {
		return nil, err
	}

	drafts := make([]string, 0, len(journals))
	for _, j := range journals {
		if !j.IsPublished() {
			drafts = append(drafts, j.ID)
		}
	}

	var changed int64
	var published []domain.ManualJournal
	if len(drafts) > 0 {
		changed, err = s.journalRepo.MarkManualJournalsPublished(ctx, tenantID, drafts, s.now().UTC(), actingUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to publish manual journals: %w", err)
		}
		published, err = s.journalRepo.FindManualJournalsByIDs(ctx, tenantID, drafts)
		if err != nil {
			return nil, fmt.Errorf("failed to reload published journals: %w", err)
		}
	}

	result := &domain.BulkPublishResult{
		Published:        int(changed),
		AlreadyPublished: len(journals) - int(changed),
		Total:            len(journals),
	}

	s.LogInfo(ctx, "Manual journals published",
		slog.String("tenant_id", tenantID),
		slog.Int("published", result.Published),
		slog.Int("already_published", result.AlreadyPublished))
	s.emit(ctx, domain.ManualJournalEvent{
		Name:         domain.EventManualJournalPublishedBulk,
		TenantID:     tenantID,
		ActingUserID: actingUserID,
		Journals:     published,
	})
	return result, nil
}

// GetManualJournal retrieves a journal with entries, ledger transactions and media.
func (s *manualJournalService) GetManualJournal(ctx context.Context, tenantID string, journalID string) (*domain.ManualJournal, error) {
	journal, err := s.findJournal(ctx, tenantID, journalID)
	if err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.FindLedgerLinesBySource(ctx, tenantID, domain.LedgerSourceJournal, []string{journalID})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger transactions of journal %s: %w", journalID, err)
	}
	journal.Transactions = lines
	return journal, nil
}

// ListManualJournals retrieves a filtered, sorted page of journals.
func (s *manualJournalService) ListManualJournals(ctx context.Context, tenantID string, params dto.ListManualJournalsParams) (*dto.ListManualJournalsResponse, error) {
	page, pageSize := pagination.Normalize(params.Page, params.PageSize)

	sortKey := strings.ToLower(strings.TrimSpace(params.SortColumn))
	column, ok := sortableColumns[sortKey]
	if !ok {
		sortKey = defaultSortColumn
		column = sortableColumns[defaultSortColumn]
	}
	order := strings.ToLower(params.SortOrder)
	if order != "asc" && order != "desc" {
		order = defaultSortOrder
	}

	filter := domain.ManualJournalFilter{
		Page:       page,
		PageSize:   pageSize,
		SortColumn: column,
		SortOrder:  order,
		Search:     strings.TrimSpace(params.Search),
		Status:     params.Status,
	}

	journals, total, err := s.journalRepo.ListManualJournals(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list manual journals", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list manual journals: %w", err)
	}

	return &dto.ListManualJournalsResponse{
		ManualJournals: dto.ToManualJournalResponses(journals),
		Pagination:     pagination.NewMeta(page, pageSize, total),
		FilterMeta: dto.FilterMeta{
			SortColumn: sortKey,
			SortOrder:  order,
			Search:     filter.Search,
			Status:     filter.Status,
		},
	}, nil
}

func (s *manualJournalService) findJournal(ctx context.Context, tenantID, journalID string) (*domain.ManualJournal, error) {
	journal, err := s.journalRepo.FindManualJournalByID(ctx, tenantID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewServiceError(apperrors.KindNotFound,
				fmt.Sprintf("manual journal %s not found", journalID),
				NotFoundPayload{IDs: []string{journalID}})
		}
		return nil, fmt.Errorf("failed to load manual journal %s: %w", journalID, err)
	}
	return journal, nil
}

// findJournals resolves every id or fails with NOT_FOUND listing the missing ones.
func (s *manualJournalService) findJournals(ctx context.Context, tenantID string, journalIDs []string) ([]domain.ManualJournal, error) {
	ids := uniqueStrings(journalIDs)
	journals, err := s.journalRepo.FindManualJournalsByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load manual journals: %w", err)
	}

	found := make(map[string]struct{}, len(journals))
	for _, j := range journals {
		found[j.ID] = struct{}{}
	}
	missing := make([]string, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewServiceError(apperrors.KindNotFound,
			fmt.Sprintf("%d manual journal(s) not found", len(missing)),
			NotFoundPayload{IDs: missing})
	}
	return journals, nil
}

// mapWriteError converts repository write failures into typed service errors.
func (s *manualJournalService) mapWriteError(err error, journalNumber string) error {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		return journalNumberExistsError(journalNumber)
	case errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewServiceError(apperrors.KindJournalVersionConflict,
			"manual journal was modified concurrently, reload and retry", nil)
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewServiceError(apperrors.KindNotFound, "manual journal not found", nil)
	default:
		return fmt.Errorf("failed to write manual journal: %w", err)
	}
}

func alreadyPublishedError(journalID string) error {
	return apperrors.NewServiceError(apperrors.KindJournalAlreadyPublished,
		fmt.Sprintf("manual journal %s is already published", journalID), nil)
}

func (s *manualJournalService) emit(ctx context.Context, event domain.ManualJournalEvent) {
	event.OccurredAt = s.now().UTC()
	s.eventSink.Emit(ctx, event)
}
