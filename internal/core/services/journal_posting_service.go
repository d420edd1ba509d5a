package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
)

// journalPostingService implements portssvc.JournalPostingSvc
type journalPostingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.ManualJournalReader
	ledgerRepo  portsrepo.LedgerRepository
	now         func() time.Time
}

// NewJournalPostingService creates the service that writes manual journals to the ledger.
func NewJournalPostingService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.JournalPostingSvc {
	opts := buildServiceOptions(options)
	return &journalPostingService{
		BaseService: BaseService{Logger: opts.logger},
		accountRepo: repos.AccountRepo,
		journalRepo: repos.ManualJournalRepo,
		ledgerRepo:  repos.LedgerRepo,
		now:         opts.now,
	}
}

var _ portssvc.JournalPostingSvc = (*journalPostingService)(nil)

// WriteJournalEntries posts journals to the ledger. With override the lines
// previously posted for the same journals are staged for removal first.
func (s *journalPostingService) WriteJournalEntries(ctx context.Context, tenantID string, journals []domain.ManualJournal, override bool) error {
	if len(journals) == 0 {
		return nil
	}

	journalIDs := make([]string, len(journals))
	accountIDs := make([]string, 0)
	for i, j := range journals {
		journalIDs[i] = j.ID
		for _, e := range j.Entries {
			accountIDs = append(accountIDs, e.AccountID)
		}
	}

	var existing []domain.LedgerLine
	if override {
		var err error
		existing, err = s.ledgerRepo.FindLedgerLinesBySource(ctx, tenantID, domain.LedgerSourceJournal, journalIDs)
		if err != nil {
			return fmt.Errorf("failed to load posted ledger lines: %w", err)
		}
		for _, line := range existing {
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	poster, err := s.newPoster(ctx, tenantID, accountIDs)
	if err != nil {
		return err
	}
	if err := poster.revert(existing); err != nil {
		return err
	}
	now := s.now().UTC()
	for _, j := range journals {
		if err := poster.post(j, now); err != nil {
			return fmt.Errorf("failed to stage journal %s: %w", j.ID, err)
		}
	}

	commit := poster.commit()
	if commit.IsEmpty() {
		return nil
	}
	if err := s.ledgerRepo.CommitPosting(ctx, commit); err != nil {
		s.LogError(ctx, err, "Failed to commit ledger posting", slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to commit ledger posting: %w", err)
	}

	s.LogInfo(ctx, "Manual journals written to ledger",
		slog.String("tenant_id", tenantID),
		slog.Int("journals", len(journals)),
		slog.Int("lines_added", len(commit.NewLines)),
		slog.Int("lines_removed", len(commit.RemovedLineIDs)),
		slog.Bool("override", override))
	return nil
}

// RevertJournalEntries removes the ledger lines of journals and undoes their balances.
func (s *journalPostingService) RevertJournalEntries(ctx context.Context, tenantID string, journalIDs []string) error {
	journalIDs = uniqueStrings(journalIDs)
	if len(journalIDs) == 0 {
		return nil
	}

	lines, err := s.ledgerRepo.FindLedgerLinesBySource(ctx, tenantID, domain.LedgerSourceJournal, journalIDs)
	if err != nil {
		return fmt.Errorf("failed to load posted ledger lines: %w", err)
	}
	if len(lines) == 0 {
		s.LogDebug(ctx, "No ledger lines to revert", slog.String("tenant_id", tenantID))
		return nil
	}

	accountIDs := make([]string, len(lines))
	for i, line := range lines {
		accountIDs[i] = line.AccountID
	}
	poster, err := s.newPoster(ctx, tenantID, accountIDs)
	if err != nil {
		return err
	}
	if err := poster.revert(lines); err != nil {
		return err
	}

	if err := s.ledgerRepo.CommitPosting(ctx, poster.commit()); err != nil {
		s.LogError(ctx, err, "Failed to commit ledger revert", slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to commit ledger revert: %w", err)
	}

	s.LogInfo(ctx, "Manual journal ledger lines reverted",
		slog.String("tenant_id", tenantID),
		slog.Int("lines_removed", len(lines)))
	return nil
}

// PostManualJournals loads journals by id and posts the published ones.
// Drafts are skipped; they reach the ledger when published.
func (s *journalPostingService) PostManualJournals(ctx context.Context, tenantID string, journalIDs []string, override bool) error {
	ids := uniqueStrings(journalIDs)
	journals, err := s.journalRepo.FindManualJournalsByIDs(ctx, tenantID, ids)
	if err != nil {
		return fmt.Errorf("failed to load manual journals: %w", err)
	}
	if len(journals) != len(ids) {
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
		return apperrors.NewServiceError(apperrors.KindNotFound,
			fmt.Sprintf("%d manual journal(s) not found", len(missing)),
			NotFoundPayload{IDs: missing})
	}

	publishable := make([]domain.ManualJournal, 0, len(journals))
	for _, j := range journals {
		if j.IsPublished() {
			publishable = append(publishable, j)
		} else {
			s.LogDebug(ctx, "Skipping draft journal", slog.String("journal_id", j.ID))
		}
	}
	return s.WriteJournalEntries(ctx, tenantID, publishable, override)
}

func (s *journalPostingService) newPoster(ctx context.Context, tenantID string, accountIDs []string) (*journalPoster, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, uniqueStrings(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for posting: %w", err)
	}
	return newJournalPoster(tenantID, accounts), nil
}
