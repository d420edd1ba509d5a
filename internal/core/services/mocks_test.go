package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountBySlug(ctx context.Context, tenantID string, slug string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

var _ portsrepo.ContactReader = (*MockContactRepository)(nil)

func (m *MockContactRepository) FindContactsByIDs(ctx context.Context, tenantID string, contactIDs []string) (map[string]domain.Contact, error) {
	args := m.Called(ctx, tenantID, contactIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Contact), args.Error(1)
}

// --- Mock JournalNumberSequencer ---
type MockJournalNumberRepository struct {
	mock.Mock
}

var _ portsrepo.JournalNumberSequencer = (*MockJournalNumberRepository)(nil)

func (m *MockJournalNumberRepository) NextJournalNumber(ctx context.Context, tenantID string) (string, bool, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockJournalNumberRepository) IncrementJournalNumber(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// --- Mock ManualJournalRepository ---
type MockManualJournalRepository struct {
	mock.Mock
}

var _ portsrepo.ManualJournalRepositoryFacade = (*MockManualJournalRepository)(nil)

func (m *MockManualJournalRepository) FindManualJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.ManualJournal, error) {
	args := m.Called(ctx, tenantID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualJournal), args.Error(1)
}

func (m *MockManualJournalRepository) FindManualJournalsByIDs(ctx context.Context, tenantID string, journalIDs []string) ([]domain.ManualJournal, error) {
	args := m.Called(ctx, tenantID, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualJournal), args.Error(1)
}

func (m *MockManualJournalRepository) ExistsByJournalNumber(ctx context.Context, tenantID string, number string, excludeID string) (bool, error) {
	args := m.Called(ctx, tenantID, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockManualJournalRepository) ListManualJournals(ctx context.Context, tenantID string, filter domain.ManualJournalFilter) ([]domain.ManualJournal, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ManualJournal), args.Int(1), args.Error(2)
}

func (m *MockManualJournalRepository) UpsertManualJournal(ctx context.Context, journal domain.ManualJournal, expectedVersion int64) (*domain.ManualJournal, error) {
	args := m.Called(ctx, journal, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualJournal), args.Error(1)
}

func (m *MockManualJournalRepository) DeleteManualJournals(ctx context.Context, tenantID string, journalIDs []string) error {
	args := m.Called(ctx, tenantID, journalIDs)
	return args.Error(0)
}

func (m *MockManualJournalRepository) MarkManualJournalsPublished(ctx context.Context, tenantID string, journalIDs []string, publishedAt time.Time, userID string) (int64, error) {
	args := m.Called(ctx, tenantID, journalIDs, publishedAt, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerLinesBySource(ctx context.Context, tenantID string, sourceType string, sourceIDs []string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, tenantID, sourceType, sourceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerRepository) CommitPosting(ctx context.Context, commit domain.PostingCommit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

// --- Mock event sink ---
type MockEventSink struct {
	mock.Mock
}

var _ portssvc.ManualJournalEventSink = (*MockEventSink)(nil)

func (m *MockEventSink) Emit(ctx context.Context, event domain.ManualJournalEvent) {
	m.Called(ctx, event)
}

// --- Mock JournalPostingSvc ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.JournalPostingSvc = (*MockPostingService)(nil)

func (m *MockPostingService) WriteJournalEntries(ctx context.Context, tenantID string, journals []domain.ManualJournal, override bool) error {
	args := m.Called(ctx, tenantID, journals, override)
	return args.Error(0)
}

func (m *MockPostingService) RevertJournalEntries(ctx context.Context, tenantID string, journalIDs []string) error {
	args := m.Called(ctx, tenantID, journalIDs)
	return args.Error(0)
}

func (m *MockPostingService) PostManualJournals(ctx context.Context, tenantID string, journalIDs []string, override bool) error {
	args := m.Called(ctx, tenantID, journalIDs, override)
	return args.Error(0)
}
