package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/SscSPs/manual_journal_service/internal/core/services"
	"github.com/SscSPs/manual_journal_service/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testTenantID = "tenant-1"

var (
	testNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	cashAccount       = domain.Account{AccountID: "acc-cash", TenantID: testTenantID, Slug: "cash", AccountType: domain.Asset}
	revenueAccount    = domain.Account{AccountID: "acc-rev", TenantID: testTenantID, Slug: "sales", AccountType: domain.Revenue}
	receivableAccount = domain.Account{AccountID: "acc-ar", TenantID: testTenantID, Slug: domain.AccountsReceivableSlug, AccountType: domain.Asset}
	payableAccount    = domain.Account{AccountID: "acc-ap", TenantID: testTenantID, Slug: domain.AccountsPayableSlug, AccountType: domain.Liability}
)

func allAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		cashAccount.AccountID:       cashAccount,
		revenueAccount.AccountID:    revenueAccount,
		receivableAccount.AccountID: receivableAccount,
		payableAccount.AccountID:    payableAccount,
	}
}

func entryReq(index int, accountID string, debit, credit int64) dto.ManualJournalEntryRequest {
	return dto.ManualJournalEntryRequest{
		Index:     index,
		AccountID: accountID,
		Debit:     decimal.NewFromInt(debit),
		Credit:    decimal.NewFromInt(credit),
	}
}

func balancedRequest(number string) dto.ManualJournalRequest {
	return dto.ManualJournalRequest{
		Date:          "2024-05-01",
		JournalNumber: number,
		Entries: []dto.ManualJournalEntryRequest{
			entryReq(1, cashAccount.AccountID, 100, 0),
			entryReq(2, revenueAccount.AccountID, 0, 100),
		},
	}
}

func storedJournal(id string, published bool) *domain.ManualJournal {
	j := &domain.ManualJournal{
		ID:            id,
		TenantID:      testTenantID,
		JournalNumber: "MJ-" + id,
		Date:          time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(100),
		CurrencyCode:  "USD",
		Entries: []domain.JournalEntry{
			{Index: 1, AccountID: cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{Index: 2, AccountID: revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
		AuditFields: domain.AuditFields{CreatedBy: "user-0", Version: 3},
	}
	if published {
		at := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
		j.PublishedAt = &at
	}
	return j
}

type ManualJournalServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	contactRepo *MockContactRepository
	numberRepo  *MockJournalNumberRepository
	journalRepo *MockManualJournalRepository
	ledgerRepo  *MockLedgerRepository
	sink        *MockEventSink
	service     portssvc.ManualJournalSvcFacade
	ctx         context.Context
}

func (s *ManualJournalServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.contactRepo = new(MockContactRepository)
	s.numberRepo = new(MockJournalNumberRepository)
	s.journalRepo = new(MockManualJournalRepository)
	s.ledgerRepo = new(MockLedgerRepository)
	s.sink = new(MockEventSink)
	s.ctx = context.Background()

	repos := portsrepo.RepositoryProvider{
		AccountRepo:       s.accountRepo,
		ContactRepo:       s.contactRepo,
		JournalNumberRepo: s.numberRepo,
		ManualJournalRepo: s.journalRepo,
		LedgerRepo:        s.ledgerRepo,
	}
	s.service = services.NewManualJournalService(repos, s.sink,
		services.WithClock(func() time.Time { return testNow }),
		services.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		services.WithBaseCurrency("USD"),
	)
}

func TestManualJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ManualJournalServiceTestSuite))
}

// expectSlugLookups wires the receivable and payable account lookups.
func (s *ManualJournalServiceTestSuite) expectSlugLookups() {
	s.accountRepo.On("FindAccountBySlug", mock.Anything, testTenantID, domain.AccountsReceivableSlug).Return(&receivableAccount, nil).Maybe()
	s.accountRepo.On("FindAccountBySlug", mock.Anything, testTenantID, domain.AccountsPayableSlug).Return(&payableAccount, nil).Maybe()
}

func (s *ManualJournalServiceTestSuite) assertKind(err error, kind apperrors.Kind) *apperrors.ServiceError {
	s.Require().Error(err)
	var svcErr *apperrors.ServiceError
	s.Require().True(errors.As(err, &svcErr), "expected ServiceError, got %v", err)
	s.Equal(kind, svcErr.Kind)
	return svcErr
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_Success() {
	req := balancedRequest("MJ-1")
	req.Publish = true
	req.CurrencyCode = "eur"

	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, []string{"acc-cash", "acc-rev"}).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(false, nil).Once()
	s.expectSlugLookups()

	var saved domain.ManualJournal
	result := &domain.ManualJournal{ID: "j-new", JournalNumber: "MJ-1"}
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.AnythingOfType("domain.ManualJournal"), int64(0)).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.ManualJournal) }).
		Return(result, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalCreated && e.Journal != nil && e.ActingUserID == "user-1" && e.OccurredAt.Equal(testNow)
	})).Once()

	journal, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	s.Require().NoError(err)
	s.Equal(result, journal)
	s.NotEmpty(saved.ID)
	s.Equal("MJ-1", saved.JournalNumber)
	s.Equal("EUR", saved.CurrencyCode)
	s.True(saved.Amount.Equal(decimal.NewFromInt(100)))
	s.Require().NotNil(saved.PublishedAt)
	s.True(saved.PublishedAt.Equal(testNow))
	s.Equal("user-1", saved.CreatedBy)
	s.contactRepo.AssertNotCalled(s.T(), "FindContactsByIDs", mock.Anything, mock.Anything, mock.Anything)
	s.numberRepo.AssertNotCalled(s.T(), "NextJournalNumber", mock.Anything, mock.Anything)
	s.journalRepo.AssertExpectations(s.T())
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_Unbalanced() {
	req := balancedRequest("MJ-1")
	req.Entries[1] = entryReq(2, revenueAccount.AccountID, 0, 90)

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	s.assertKind(err, apperrors.KindCreditDebitNotEqual)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "UpsertManualJournal", mock.Anything, mock.Anything, mock.Anything)
	s.sink.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_ZeroTotals() {
	req := balancedRequest("MJ-1")
	req.Entries = []dto.ManualJournalEntryRequest{
		entryReq(1, cashAccount.AccountID, 0, 0),
		entryReq(2, revenueAccount.AccountID, 0, 0),
	}

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	s.assertKind(err, apperrors.KindCreditDebitNotEqualZero)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_ContactsReportedExhaustively() {
	req := balancedRequest("MJ-1")
	req.Entries[0].ContactID = "c-missing"
	req.Entries[0].ContactType = "customer"
	req.Entries[1].ContactID = "c-vendor"
	req.Entries[1].ContactType = "customer"

	s.contactRepo.On("FindContactsByIDs", mock.Anything, testTenantID, []string{"c-missing", "c-vendor"}).
		Return(map[string]domain.Contact{
			"c-vendor": {ContactID: "c-vendor", ContactService: domain.ContactVendor},
		}, nil).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	svcErr := s.assertKind(err, apperrors.KindContactsNotFound)
	s.Equal(apperrors.ContactsNotFoundPayload{ContactIDs: []string{"c-missing", "c-vendor"}}, svcErr.Payload)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_AccountsNotFound() {
	req := balancedRequest("MJ-1")
	req.Entries[1].AccountID = "acc-ghost"

	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, []string{"acc-cash", "acc-ghost"}).Return(allAccounts(), nil).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	svcErr := s.assertKind(err, apperrors.KindAccountsIDsNotFound)
	s.Equal(apperrors.AccountsNotFoundPayload{AccountIDs: []string{"acc-ghost"}}, svcErr.Payload)
	s.journalRepo.AssertNotCalled(s.T(), "ExistsByJournalNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_JournalNumberExists() {
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(true, nil).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, balancedRequest("MJ-1"), "user-1")

	s.assertKind(err, apperrors.KindJournalNumberExists)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountBySlug", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_ReceivableNeedsCustomer() {
	req := balancedRequest("MJ-1")
	req.Entries[0].AccountID = receivableAccount.AccountID

	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(false, nil).Once()
	s.expectSlugLookups()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	svcErr := s.assertKind(err, apperrors.KindEntriesShouldHaveContact)
	s.Equal(apperrors.ContactAssignmentPayload{
		Indexes:     []int{1},
		AccountSlug: domain.AccountsReceivableSlug,
		ContactType: "customer",
	}, svcErr.Payload)
	s.journalRepo.AssertNotCalled(s.T(), "UpsertManualJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_ReceivableWithCustomerContact() {
	req := balancedRequest("MJ-1")
	req.Entries = []dto.ManualJournalEntryRequest{
		entryReq(1, receivableAccount.AccountID, 0, 100),
		entryReq(2, cashAccount.AccountID, 100, 0),
	}
	req.Entries[0].ContactID = "C1"
	req.Entries[0].ContactType = "customer"

	s.contactRepo.On("FindContactsByIDs", mock.Anything, testTenantID, []string{"C1"}).
		Return(map[string]domain.Contact{"C1": {ContactID: "C1", ContactService: domain.ContactCustomer}}, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(false, nil).Once()
	s.expectSlugLookups()

	var saved domain.ManualJournal
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.AnythingOfType("domain.ManualJournal"), int64(0)).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.ManualJournal) }).
		Return(&domain.ManualJournal{ID: "j-new", JournalNumber: "MJ-1"}, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.Anything).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	s.Require().NoError(err)
	s.True(saved.Amount.Equal(decimal.NewFromInt(100)))
	s.Require().Len(saved.Entries, 2)
	s.Equal("C1", saved.Entries[0].ContactID)
	s.contactRepo.AssertExpectations(s.T())
	s.journalRepo.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_DuplicateEntryIndex() {
	req := balancedRequest("MJ-1")
	req.Entries = []dto.ManualJournalEntryRequest{
		entryReq(1, cashAccount.AccountID, 100, 0),
		entryReq(1, revenueAccount.AccountID, 0, 100),
	}

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	svcErr := s.assertKind(err, apperrors.KindDuplicateEntryIndex)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.DuplicateEntryIndexPayload{Indexes: []int{1}}, svcErr.Payload)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "UpsertManualJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_PayableWithWrongContactType() {
	req := balancedRequest("MJ-1")
	req.Entries[1].AccountID = payableAccount.AccountID
	req.Entries[1].ContactID = "c1"
	req.Entries[1].ContactType = "customer"

	s.contactRepo.On("FindContactsByIDs", mock.Anything, testTenantID, []string{"c1"}).
		Return(map[string]domain.Contact{"c1": {ContactID: "c1", ContactService: domain.ContactCustomer}}, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(false, nil).Once()
	s.expectSlugLookups()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	svcErr := s.assertKind(err, apperrors.KindEntriesShouldHaveContact)
	payload := svcErr.Payload.(apperrors.ContactAssignmentPayload)
	s.Equal(domain.AccountsPayableSlug, payload.AccountSlug)
	s.Equal([]int{2}, payload.Indexes)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_TenantWithoutReceivableAccount() {
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-1", "").Return(false, nil).Once()
	s.accountRepo.On("FindAccountBySlug", mock.Anything, testTenantID, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.Anything, int64(0)).Return(storedJournal("j1", false), nil).Once()
	s.sink.On("Emit", mock.Anything, mock.Anything).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, balancedRequest("MJ-1"), "user-1")

	s.NoError(err)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_AutoNumber() {
	s.numberRepo.On("NextJournalNumber", mock.Anything, testTenantID).Return("MJ-00007", true, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-00007", "").Return(false, nil).Once()
	s.expectSlugLookups()
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.MatchedBy(func(j domain.ManualJournal) bool {
		return j.JournalNumber == "MJ-00007" && j.PublishedAt == nil
	}), int64(0)).Return(&domain.ManualJournal{ID: "j7", JournalNumber: "MJ-00007"}, nil).Once()
	s.numberRepo.On("IncrementJournalNumber", mock.Anything, testTenantID).Return(nil).Once()
	s.sink.On("Emit", mock.Anything, mock.Anything).Once()

	journal, err := s.service.CreateManualJournal(s.ctx, testTenantID, balancedRequest(""), "user-1")

	s.Require().NoError(err)
	s.Equal("MJ-00007", journal.JournalNumber)
	s.numberRepo.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_NumberRequired() {
	s.numberRepo.On("NextJournalNumber", mock.Anything, testTenantID).Return("", false, nil).Once()

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, balancedRequest(""), "user-1")

	s.assertKind(err, apperrors.KindJournalNumberRequired)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestCreateManualJournal_InvalidDate() {
	req := balancedRequest("MJ-1")
	req.Date = "01/05/2024"

	_, err := s.service.CreateManualJournal(s.ctx, testTenantID, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ManualJournalServiceTestSuite) TestEditManualJournal_NotFound() {
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j404").Return(nil, apperrors.ErrNotFound).Once()

	// Unbalanced on purpose: existence is checked before validation.
	req := balancedRequest("MJ-1")
	req.Entries[0] = entryReq(1, cashAccount.AccountID, 1, 0)
	_, _, err := s.service.EditManualJournal(s.ctx, testTenantID, "j404", req, "user-1")

	s.assertKind(err, apperrors.KindNotFound)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ManualJournalServiceTestSuite) TestEditManualJournal_KeepsPublishedAtAndExcludesSelf() {
	old := storedJournal("j1", true)
	updated := storedJournal("j1", true)
	updated.Version = 4
	updated.Description = "corrected"

	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(old, nil).Once()
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(updated, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, old.JournalNumber, "j1").Return(false, nil).Once()
	s.expectSlugLookups()
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.MatchedBy(func(j domain.ManualJournal) bool {
		return j.ID == "j1" &&
			j.PublishedAt != nil && j.PublishedAt.Equal(*old.PublishedAt) &&
			j.CreatedBy == "user-0" && j.LastUpdatedBy == "user-2"
	}), int64(3)).Return(updated, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalEdited && e.Journal == updated && e.OldJournal == old
	})).Once()

	req := balancedRequest("")
	req.Description = "corrected"
	got, prev, err := s.service.EditManualJournal(s.ctx, testTenantID, "j1", req, "user-2")

	s.Require().NoError(err)
	s.Equal(updated, got)
	s.Equal(old, prev)
	s.journalRepo.AssertExpectations(s.T())
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestEditManualJournal_VersionConflict() {
	old := storedJournal("j1", false)
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(old, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-9", "j1").Return(false, nil).Once()
	s.expectSlugLookups()
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.Anything, int64(3)).Return(nil, apperrors.ErrConflict).Once()

	_, _, err := s.service.EditManualJournal(s.ctx, testTenantID, "j1", balancedRequest("MJ-9"), "user-1")

	s.assertKind(err, apperrors.KindJournalVersionConflict)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.sink.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestEditManualJournal_DuplicateOnWrite() {
	old := storedJournal("j1", false)
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(old, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-9", "j1").Return(false, nil).Once()
	s.expectSlugLookups()
	s.journalRepo.On("UpsertManualJournal", mock.Anything, mock.Anything, int64(3)).Return(nil, apperrors.ErrDuplicate).Once()

	_, _, err := s.service.EditManualJournal(s.ctx, testTenantID, "j1", balancedRequest("MJ-9"), "user-1")

	s.assertKind(err, apperrors.KindJournalNumberExists)
}

func (s *ManualJournalServiceTestSuite) TestEditManualJournal_NumberTakenByOther() {
	old := storedJournal("j1", false)
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(old, nil).Once()
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(allAccounts(), nil).Once()
	s.journalRepo.On("ExistsByJournalNumber", mock.Anything, testTenantID, "MJ-j2", "j1").Return(true, nil).Once()

	_, _, err := s.service.EditManualJournal(s.ctx, testTenantID, "j1", balancedRequest("MJ-j2"), "user-1")

	s.assertKind(err, apperrors.KindJournalNumberExists)
	s.journalRepo.AssertExpectations(s.T())
	s.journalRepo.AssertNotCalled(s.T(), "UpsertManualJournal", mock.Anything, mock.Anything, mock.Anything)
	s.sink.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestPublishManualJournal_AlreadyPublished() {
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(storedJournal("j1", true), nil).Once()

	_, err := s.service.PublishManualJournal(s.ctx, testTenantID, "j1", "user-1")

	s.assertKind(err, apperrors.KindJournalAlreadyPublished)
	s.journalRepo.AssertNotCalled(s.T(), "MarkManualJournalsPublished", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestPublishManualJournal_Success() {
	draft := storedJournal("j1", false)
	published := storedJournal("j1", true)

	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(draft, nil).Once()
	s.journalRepo.On("MarkManualJournalsPublished", mock.Anything, testTenantID, []string{"j1"}, testNow, "user-1").Return(int64(1), nil).Once()
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(published, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalPublished && e.Journal == published
	})).Once()

	got, err := s.service.PublishManualJournal(s.ctx, testTenantID, "j1", "user-1")

	s.Require().NoError(err)
	s.True(got.IsPublished())
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestPublishManualJournal_LostRace() {
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(storedJournal("j1", false), nil).Once()
	s.journalRepo.On("MarkManualJournalsPublished", mock.Anything, testTenantID, []string{"j1"}, testNow, "user-1").Return(int64(0), nil).Once()

	_, err := s.service.PublishManualJournal(s.ctx, testTenantID, "j1", "user-1")

	s.assertKind(err, apperrors.KindJournalAlreadyPublished)
	s.sink.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestPublishManualJournals_SkipsPublished() {
	ids := []string{"j1", "j2", "j3"}
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, ids).Return([]domain.ManualJournal{
		*storedJournal("j1", true), *storedJournal("j2", false), *storedJournal("j3", false),
	}, nil).Once()
	s.journalRepo.On("MarkManualJournalsPublished", mock.Anything, testTenantID, []string{"j2", "j3"}, testNow, "user-1").Return(int64(2), nil).Once()
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j2", "j3"}).Return([]domain.ManualJournal{
		*storedJournal("j2", true), *storedJournal("j3", true),
	}, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalPublishedBulk && len(e.Journals) == 2
	})).Once()

	result, err := s.service.PublishManualJournals(s.ctx, testTenantID, ids, "user-1")

	s.Require().NoError(err)
	s.Equal(&domain.BulkPublishResult{AlreadyPublished: 1, Published: 2, Total: 3}, result)
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestPublishManualJournals_AllPublished() {
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j1"}).Return([]domain.ManualJournal{
		*storedJournal("j1", true),
	}, nil).Once()
	s.sink.On("Emit", mock.Anything, mock.Anything).Once()

	result, err := s.service.PublishManualJournals(s.ctx, testTenantID, []string{"j1", "j1"}, "user-1")

	s.Require().NoError(err)
	s.Equal(&domain.BulkPublishResult{AlreadyPublished: 1, Published: 0, Total: 1}, result)
	s.journalRepo.AssertNotCalled(s.T(), "MarkManualJournalsPublished", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestDeleteManualJournal() {
	old := storedJournal("j1", true)
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(old, nil).Once()
	s.journalRepo.On("DeleteManualJournals", mock.Anything, testTenantID, []string{"j1"}).Return(nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalDeleted && e.OldJournal == old
	})).Once()

	got, err := s.service.DeleteManualJournal(s.ctx, testTenantID, "j1", "user-1")

	s.Require().NoError(err)
	s.Equal(old, got)
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestDeleteManualJournals_MissingDeletesNothing() {
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j1", "j2"}).Return([]domain.ManualJournal{
		*storedJournal("j1", false),
	}, nil).Once()

	_, err := s.service.DeleteManualJournals(s.ctx, testTenantID, []string{"j1", "j2"}, "user-1")

	svcErr := s.assertKind(err, apperrors.KindNotFound)
	s.Equal(services.NotFoundPayload{IDs: []string{"j2"}}, svcErr.Payload)
	s.journalRepo.AssertNotCalled(s.T(), "DeleteManualJournals", mock.Anything, mock.Anything, mock.Anything)
	s.sink.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ManualJournalServiceTestSuite) TestDeleteManualJournals_Success() {
	journals := []domain.ManualJournal{*storedJournal("j1", false), *storedJournal("j2", true)}
	s.journalRepo.On("FindManualJournalsByIDs", mock.Anything, testTenantID, []string{"j1", "j2"}).Return(journals, nil).Once()
	s.journalRepo.On("DeleteManualJournals", mock.Anything, testTenantID, []string{"j1", "j2"}).Return(nil).Once()
	s.sink.On("Emit", mock.Anything, mock.MatchedBy(func(e domain.ManualJournalEvent) bool {
		return e.Name == domain.EventManualJournalDeletedBulk && len(e.Journals) == 2
	})).Once()

	got, err := s.service.DeleteManualJournals(s.ctx, testTenantID, []string{"j1", "j2"}, "user-1")

	s.Require().NoError(err)
	s.Len(got, 2)
	s.sink.AssertExpectations(s.T())
}

func (s *ManualJournalServiceTestSuite) TestGetManualJournal_AttachesTransactions() {
	lines := []domain.LedgerLine{{LineID: "l1", SourceID: "j1"}}
	s.journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(storedJournal("j1", true), nil).Once()
	s.ledgerRepo.On("FindLedgerLinesBySource", mock.Anything, testTenantID, domain.LedgerSourceJournal, []string{"j1"}).Return(lines, nil).Once()

	got, err := s.service.GetManualJournal(s.ctx, testTenantID, "j1")

	s.Require().NoError(err)
	s.Equal(lines, got.Transactions)
}

func (s *ManualJournalServiceTestSuite) TestListManualJournals_NormalizesFilter() {
	expected := domain.ManualJournalFilter{
		Page:       1,
		PageSize:   12,
		SortColumn: "journal_date",
		SortOrder:  "desc",
		Search:     "rent",
		Status:     domain.JournalStatusDraft,
	}
	s.journalRepo.On("ListManualJournals", mock.Anything, testTenantID, expected).
		Return([]domain.ManualJournal{*storedJournal("j1", false)}, 31, nil).Once()

	resp, err := s.service.ListManualJournals(s.ctx, testTenantID, dto.ListManualJournalsParams{
		SortColumn: "bogus",
		Search:     "  rent ",
		Status:     domain.JournalStatusDraft,
	})

	s.Require().NoError(err)
	s.Len(resp.ManualJournals, 1)
	s.Equal(31, resp.Pagination.Total)
	s.Equal("date", resp.FilterMeta.SortColumn)
	s.Equal("desc", resp.FilterMeta.SortOrder)
}

func TestNewManualJournalServiceNilSink(t *testing.T) {
	journalRepo := new(MockManualJournalRepository)
	journalRepo.On("FindManualJournalByID", mock.Anything, testTenantID, "j1").Return(storedJournal("j1", false), nil).Once()
	journalRepo.On("DeleteManualJournals", mock.Anything, testTenantID, []string{"j1"}).Return(nil).Once()

	svc := services.NewManualJournalService(portsrepo.RepositoryProvider{ManualJournalRepo: journalRepo}, nil)

	_, err := svc.DeleteManualJournal(context.Background(), testTenantID, "j1", "user-1")
	require.NoError(t, err)
	assert.True(t, journalRepo.AssertExpectations(t))
}
