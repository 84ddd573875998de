// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"idscope_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// Lookup outcomes carried by LookupCompleted.
const (
	OutcomeEnriched        = "enriched"
	OutcomePartial         = "partial"
	OutcomeFormatMismatch  = "format_mismatch"
	OutcomeStale           = "stale"
	OutcomeMapUpdateFailed = "map_failed"
)

// =============================================================================
// Lookup Domain Events
// =============================================================================

// IDClassified is published once per lookup after the classifier ran. The raw
// ID is deliberately absent.
type IDClassified struct {
	BaseEvent
	ViewID  uuid.UUID `json:"viewId"`
	Country string    `json:"country"`
	Valid   bool      `json:"valid"`
}

func (e IDClassified) EventName() string { return "lookup.id.classified" }

// EnrichmentFailed is published when the country metadata lookup fails.
type EnrichmentFailed struct {
	BaseEvent
	ViewID  uuid.UUID `json:"viewId"`
	Country string    `json:"country"`
	Reason  string    `json:"reason"`
}

func (e EnrichmentFailed) EventName() string { return "lookup.enrichment.failed" }

// LookupSuperseded is published when a result is dropped because a newer
// lookup started on the same view.
type LookupSuperseded struct {
	BaseEvent
	ViewID     uuid.UUID `json:"viewId"`
	Generation uint64    `json:"generation"`
	Current    uint64    `json:"current"`
}

func (e LookupSuperseded) EventName() string { return "lookup.superseded" }

// LookupCompleted is published at the end of every lookup, whatever the
// outcome.
type LookupCompleted struct {
	BaseEvent
	ViewID   uuid.UUID     `json:"viewId"`
	Country  string        `json:"country"`
	Outcome  string        `json:"outcome"`
	Duration time.Duration `json:"duration"`
}

func (e LookupCompleted) EventName() string { return "lookup.completed" }
