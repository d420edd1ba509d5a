package repositories

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
)

// AccountReader defines read operations for the tenant's chart of accounts
type AccountReader interface {
	// FindAccountsByIDs retrieves the accounts of a tenant matching the given ids.
	// Missing ids are simply absent from the result.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountBySlug retrieves the account carrying a well-known slug.
	// Returns apperrors.ErrNotFound when the tenant has no such account.
	FindAccountBySlug(ctx context.Context, tenantID string, slug string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
