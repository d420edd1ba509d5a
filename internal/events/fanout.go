// Package events delivers manual journal lifecycle notifications to their consumers.
package events

import (
	"context"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
)

// FanOutSink forwards every event to each of its sinks, in order.
type FanOutSink struct {
	sinks []portssvc.ManualJournalEventSink
}

// NewFanOutSink creates a sink over the non-nil sinks given.
func NewFanOutSink(sinks ...portssvc.ManualJournalEventSink) *FanOutSink {
	kept := make([]portssvc.ManualJournalEventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &FanOutSink{sinks: kept}
}

var _ portssvc.ManualJournalEventSink = (*FanOutSink)(nil)

func (f *FanOutSink) Emit(ctx context.Context, event domain.ManualJournalEvent) {
	for _, s := range f.sinks {
		s.Emit(ctx, event)
	}
}

// Len returns the number of attached sinks.
func (f *FanOutSink) Len() int {
	return len(f.sinks)
}
