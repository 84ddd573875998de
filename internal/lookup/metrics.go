package lookup

import (
	"context"

	"idscope_backend/internal/events"
	"idscope_backend/platform/metrics"
)

// SubscribeMetrics feeds lookup events into the Prometheus collectors.
func SubscribeMetrics(bus events.Bus, m *metrics.Metrics) {
	bus.Subscribe(events.IDClassified{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.IDClassified); ok {
			m.IncClassification(e.Country)
		}
		return nil
	}))
	bus.Subscribe(events.EnrichmentFailed{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.EnrichmentFailed); ok {
			m.IncEnrichmentFailure(e.Country)
		}
		return nil
	}))
	bus.Subscribe(events.LookupSuperseded{}.EventName(), events.HandlerFunc(func(_ context.Context, _ events.Event) error {
		m.IncStaleDiscard()
		return nil
	}))
	bus.Subscribe(events.LookupCompleted{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LookupCompleted); ok {
			m.ObserveLookup(e.Outcome, e.Duration.Seconds())
		}
		return nil
	}))
}
