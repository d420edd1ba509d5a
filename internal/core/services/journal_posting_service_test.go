package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/SscSPs/manual_journal_service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalPostingServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	journalRepo *MockManualJournalRepository
	ledgerRepo  *MockLedgerRepository
	service     portssvc.JournalPostingSvc
	ctx         context.Context
}

func (s *JournalPostingServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.journalRepo = new(MockManualJournalRepository)
	s.ledgerRepo = new(MockLedgerRepository)
	s.ctx = context.Background()
	s.service = services.NewJournalPostingService(portsrepo.RepositoryProvider{
		AccountRepo:       s.accountRepo,
		ManualJournalRepo: s.journalRepo,
		LedgerRepo:        s.ledgerRepo,
	}, services.WithClock(func() time.Time { return testNow }))
}

func TestJournalPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalPostingServiceTestSuite))
}

func invoiceJournal() domain.ManualJournal {
	published := testNow
	return domain.ManualJournal{
		ID:       "j1",
		TenantID: testTenantID,
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Entries: []domain.JournalEntry{
			{Index: 2, AccountID: revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
			{Index: 1, AccountID: receivableAccount.AccountID, Debit: decimal.NewFromInt(100), ContactID: "c1", ContactType: domain.ContactCustomer},
		},
		PublishedAt: &published,
		AuditFields: domain.AuditFields{CreatedBy: "user-1"},
	}
}

func (s *JournalPostingServiceTestSuite) captureCommit() *domain.PostingCommit {
	var captured domain.PostingCommit
	s.ledgerRepo.On("CommitPosting", mock.Anything, mock.AnythingOfType("domain.PostingCommit")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.PostingCommit) }).
		Return(nil).Once()
	return &captured
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_StagesLinesAndBalances() {
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	commit := s.captureCommit()

	err := s.service.WriteJournalEntries(s.ctx, testTenantID, []domain.ManualJournal{invoiceJournal()}, false)

	s.Require().NoError(err)
	s.ledgerRepo.AssertNotCalled(s.T(), "FindLedgerLinesBySource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.Empty(commit.RemovedLineIDs)
	s.Require().Len(commit.NewLines, 2)
	s.Equal(1, commit.NewLines[0].Index)
	s.Equal(receivableAccount.AccountID, commit.NewLines[0].AccountID)
	s.Equal(domain.LedgerSourceJournal, commit.NewLines[0].SourceType)
	s.Equal("j1", commit.NewLines[1].SourceID)
	s.Equal(testNow, commit.NewLines[1].CreatedAt)
	s.True(commit.AccountDeltas[receivableAccount.AccountID].Equal(decimal.NewFromInt(100)))
	s.True(commit.AccountDeltas[revenueAccount.AccountID].Equal(decimal.NewFromInt(100)))
	s.True(commit.ContactDeltas["c1"].Equal(decimal.NewFromInt(100)))
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_OverrideRevertsFirst() {
	existing := []domain.LedgerLine{
		{LineID: "old-1", SourceID: "j1", AccountID: cashAccount.AccountID, Debit: decimal.NewFromInt(50)},
		{LineID: "old-2", SourceID: "j1", AccountID: revenueAccount.AccountID, Credit: decimal.NewFromInt(50)},
	}
	s.ledgerRepo.On("FindLedgerLinesBySource", mock.Anything, testTenantID, domain.LedgerSourceJournal, []string{"j1"}).Return(existing, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, []string{"acc-rev", "acc-ar", "acc-cash"}).Return(allAccounts(), nil).Once()
	commit := s.captureCommit()

	err := s.service.WriteJournalEntries(s.ctx, testTenantID, []domain.ManualJournal{invoiceJournal()}, true)

	s.Require().NoError(err)
	s.Equal([]string{"old-1", "old-2"}, commit.RemovedLineIDs)
	s.Len(commit.NewLines, 2)
	s.True(commit.AccountDeltas[cashAccount.AccountID].Equal(decimal.NewFromInt(-50)))
	s.True(commit.AccountDeltas[revenueAccount.AccountID].Equal(decimal.NewFromInt(50)))
	s.True(commit.AccountDeltas[receivableAccount.AccountID].Equal(decimal.NewFromInt(100)))
	s.accountRepo.AssertExpectations(s.T())
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_NetZeroDeltaDropped() {
	journal := invoiceJournal()
	existing := []domain.LedgerLine{
		{LineID: "old-1", SourceID: "j1", AccountID: revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
	}
	s.ledgerRepo.On("FindLedgerLinesBySource", mock.Anything, testTenantID, domain.LedgerSourceJournal, []string{"j1"}).Return(existing, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	commit := s.captureCommit()

	s.Require().NoError(s.service.WriteJournalEntries(s.ctx, testTenantID, []domain.ManualJournal{journal}, true))

	_, present := commit.AccountDeltas[revenueAccount.AccountID]
	s.False(present)
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_UnknownAccount() {
	journal := invoiceJournal()
	journal.Entries[0].AccountID = "acc-ghost"
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()

	err := s.service.WriteJournalEntries(s.ctx, testTenantID, []domain.ManualJournal{journal}, false)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ledgerRepo.AssertNotCalled(s.T(), "CommitPosting", mock.Anything, mock.Anything)
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_CommitFailure() {
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.ledgerRepo.On("CommitPosting", mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

	err := s.service.WriteJournalEntries(s.ctx, testTenantID, []domain.ManualJournal{invoiceJournal()}, false)

	s.ErrorContains(err, "tx aborted")
}

func (s *JournalPostingServiceTestSuite) TestWriteJournalEntries_NothingToWrite() {
	s.NoError(s.service.WriteJournalEntries(s.ctx, testTenantID, nil, true))
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalPostingServiceTestSuite) TestRevertJournalEntries() {
	existing := []domain.LedgerLine{
		{LineID: "l1", AccountID: receivableAccount.AccountID, Debit: decimal.NewFromInt(100), ContactID: "c1", ContactType: domain.ContactCustomer},
		{LineID: "l2", AccountID: revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
	}
	s.ledgerRepo.On("FindLedgerLinesBySource", mock.Anything, testTenantID, domain.LedgerSourceJournal, []string{"j1"}).Return(existing, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, []string{"acc-ar", "acc-rev"}).Return(allAccounts(), nil).Once()
	commit := s.captureCommit()

	s.Require().NoError(s.service.RevertJournalEntries(s.ctx, testTenantID, []string{"j1", "j1"}))

	s.Equal([]string{"l1", "l2"}, commit.RemovedLineIDs)
	s.Empty(commit.NewLines)
	s.True(commit.AccountDeltas[receivableAccount.AccountID].Equal(decimal.NewFromInt(-100)))
	s.True(commit.AccountDeltas[revenueAccount.AccountID].Equal(decimal.NewFromInt(-100)))
	s.True(commit.ContactDeltas["c1"].Equal(decimal.NewFromInt(-100)))
}

func (s *JournalPostingServiceTestSuite) TestRevertJournalEntries_NoLines() {
	s.ledgerRepo.On("FindLedgerLinesBySource", mock.Anything, testTenantID, domain.LedgerSourceJournal, []string{"j1"}).Return([]domain.LedgerLine{}, nil).Once()

	s.NoError(s.service.RevertJournalEntries(s.ctx, testTenantID, []string{"j1"}))
	s.ledgerRepo.AssertNotCalled(s.T(), "CommitPosting", mock.Anything, mock.Anything)
}

func (s *JournalPostingServiceTestSuite) TestPostManualJournals_SkipsDrafts() {
	draft := invoiceJournal()
	draft.ID = "j2"
	draft.PublishedAt = nil
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j1", "j2"}).
		Return([]domain.ManualJournal{invoiceJournal(), draft}, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	commit := s.captureCommit()

	s.Require().NoError(s.service.PostManualJournals(s.ctx, testTenantID, []string{"j1", "j2"}, false))

	s.Require().Len(commit.NewLines, 2)
	for _, line := range commit.NewLines {
		s.Equal("j1", line.SourceID)
	}
}

func (s *JournalPostingServiceTestSuite) TestPostManualJournals_NotFound() {
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j1", "j9"}).
		Return([]domain.ManualJournal{invoiceJournal()}, nil).Once()

	err := s.service.PostManualJournals(s.ctx, testTenantID, []string{"j1", "j9"}, false)

	s.True(apperrors.IsKind(err, apperrors.KindNotFound))
	s.ledgerRepo.AssertNotCalled(s.T(), "CommitPosting", mock.Anything, mock.Anything)
}
