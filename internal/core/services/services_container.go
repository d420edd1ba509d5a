package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/manual_journal_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/SscSPs/manual_journal_service/internal/events"
	"github.com/SscSPs/manual_journal_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// sinks receive every manual journal event; with ledger auto-posting enabled the
// ledger subscriber is appended after them.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger, sinks ...portssvc.ManualJournalEventSink) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithLogger(logger),
		WithBaseCurrency(cfg.BaseCurrency),
	}

	// Posting first since the ledger subscriber depends on it
	posting := NewJournalPostingService(repos, options...)

	if cfg.LedgerAutoPost {
		sinks = append(sinks, NewJournalLedgerSubscriber(posting, logger))
	}

	sink := events.NewFanOutSink(sinks...)
	logger.Info("Manual journal event sinks attached", slog.Int("count", sink.Len()))

	return &portssvc.ServiceContainer{
		ManualJournal: NewManualJournalService(repos, sink, options...),
		Posting:       posting,
	}
}
