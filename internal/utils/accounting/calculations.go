package accounting

import (
	"fmt"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of a debit/credit pair on the balance
// of an account of the given type.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func CalculateSignedAmount(debit, credit decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// ContactBalanceChange returns the effect of a line on a contact balance.
// Customers owe the tenant (debit increases), vendors are owed (credit increases).
func ContactBalanceChange(debit, credit decimal.Decimal, contactType domain.ContactType) decimal.Decimal {
	if contactType == domain.ContactVendor {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// SumEntries totals both sides of the given entries.
func SumEntries(entries []domain.JournalEntry) (credit, debit decimal.Decimal) {
	credit, debit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		credit = credit.Add(e.Credit)
		debit = debit.Add(e.Debit)
	}
	return credit, debit
}

// AddDelta accumulates a non-zero change into deltas.
func AddDelta(deltas map[string]decimal.Decimal, key string, change decimal.Decimal) {
	if key == "" || change.IsZero() {
		return
	}
	next := deltas[key].Add(change)
	if next.IsZero() {
		delete(deltas, key)
		return
	}
	deltas[key] = next
}
