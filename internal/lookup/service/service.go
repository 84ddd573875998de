// Package service runs the lookup pipeline: classify, then update the view's
// map and enrich with country metadata in parallel, then append the leader
// only when enrichment succeeded.
package service

import (
	"context"
	"time"

	countryservice "idscope_backend/internal/countryinfo/service"
	"idscope_backend/internal/events"
	"idscope_backend/internal/identity"
	"idscope_backend/internal/leaders"
	"idscope_backend/internal/lookup/transport"
	"idscope_backend/internal/views"
	"idscope_backend/platform/apperr"
	"idscope_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// User-facing messages.
const (
	MsgInvalidFormat = "Invalid ID format."
	MsgLookupFailed  = "Could not fetch country details."
	msgSuperseded    = "lookup superseded by a newer request"
)

// ProfileSource resolves country metadata.
type ProfileSource interface {
	GetProfile(ctx context.Context, country string) (*countryservice.Profile, error)
}

// LeaderSource resolves the leader for a country.
type LeaderSource interface {
	Lookup(country string) leaders.Profile
}

type Service struct {
	profiles ProfileSource
	leaders  LeaderSource
	bus      events.Bus
	log      *logger.Logger
	now      func() time.Time
}

func New(profiles ProfileSource, leaderSource LeaderSource, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		profiles: profiles,
		leaders:  leaderSource,
		bus:      bus,
		log:      log,
		now:      time.Now,
	}
}

// Classify runs only the classifier.
func (s *Service) Classify(rawID string) transport.Details {
	return transport.NewDetails(identity.Classify(rawID), s.now())
}

// Process runs the full pipeline against view. A format mismatch returns a
// FormatMismatch error and touches nothing. A failed enrichment still returns
// a report, with Errors set and no country or leader block. A lookup
// overtaken by a newer one on the same view returns a Stale error.
func (s *Service) Process(ctx context.Context, view *views.View, rawID string) (*transport.Report, error) {
	start := s.now()
	log := s.log.WithContext(ctx)

	rec := identity.Classify(rawID)
	log.Classification(rec.Country.String(), rec.Valid)
	s.bus.Publish(ctx, events.IDClassified{
		BaseEvent: events.NewBaseEvent(),
		ViewID:    view.ID,
		Country:   rec.Country.String(),
		Valid:     rec.Valid,
	})

	if !rec.Valid {
		s.completed(ctx, view, rec, events.OutcomeFormatMismatch, start)
		return nil, apperr.FormatMismatch(MsgInvalidFormat)
	}

	gen := view.Begin()
	report := &transport.Report{
		Details:    transport.NewDetails(rec, start),
		Generation: gen,
	}

	var (
		profile    *countryservice.Profile
		enrichErr  error
		mapApplied bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		applied, err := view.Map().ShowLocationWhen(rec.Lat, rec.Lon, func() bool {
			return view.IsCurrent(gen)
		})
		mapApplied = applied
		return err
	})
	g.Go(func() error {
		profile, enrichErr = s.profiles.GetProfile(gctx, rec.Country.String())
		return nil
	})
	if err := g.Wait(); err != nil {
		s.completed(ctx, view, rec, events.OutcomeMapUpdateFailed, start)
		return nil, apperr.Wrap(apperr.KindInternal, "could not update map", err)
	}
	report.MapUpdated = mapApplied

	if current := view.Generation(); current != gen {
		log.StaleDiscarded(view.ID.String(), gen, current)
		s.bus.Publish(ctx, events.LookupSuperseded{
			BaseEvent:  events.NewBaseEvent(),
			ViewID:     view.ID,
			Generation: gen,
			Current:    current,
		})
		s.completed(ctx, view, rec, events.OutcomeStale, start)
		return nil, apperr.Stale(msgSuperseded).WithDetails(map[string]uint64{
			"generation": gen,
			"current":    current,
		})
	}

	if enrichErr != nil {
		report.Errors = append(report.Errors, MsgLookupFailed)
		s.bus.Publish(ctx, events.EnrichmentFailed{
			BaseEvent: events.NewBaseEvent(),
			ViewID:    view.ID,
			Country:   rec.Country.String(),
			Reason:    enrichErr.Error(),
		})
		s.completed(ctx, view, rec, events.OutcomePartial, start)
		return report, nil
	}

	report.Country = profile
	leader := s.leaders.Lookup(rec.Country.String())
	report.Leader = &leader

	s.completed(ctx, view, rec, events.OutcomeEnriched, start)
	return report, nil
}

func (s *Service) completed(ctx context.Context, view *views.View, rec identity.Record, outcome string, start time.Time) {
	s.bus.Publish(ctx, events.LookupCompleted{
		BaseEvent: events.NewBaseEvent(),
		ViewID:    view.ID,
		Country:   rec.Country.String(),
		Outcome:   outcome,
		Duration:  s.now().Sub(start),
	})
}
