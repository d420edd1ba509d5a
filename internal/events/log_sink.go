package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	"github.com/SscSPs/manual_journal_service/internal/middleware"
)

// LogSink writes one structured log record per event.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, event domain.ManualJournalEvent) {
	logger := s.logger
	if reqLogger, ok := middleware.LoggerFromCtx(ctx); ok {
		logger = reqLogger
	}
	logger.InfoContext(ctx, "Manual journal event",
		slog.String("event", string(event.Name)),
		slog.String("tenant_id", event.TenantID),
		slog.String("user_id", event.ActingUserID),
		slog.Any("journal_ids", event.JournalIDs()),
		slog.Time("occurred_at", event.OccurredAt))
}
