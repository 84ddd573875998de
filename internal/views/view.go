// Package views manages hosting views. A view owns one map controller and a
// generation counter that orders the lookups run against it.
package views

import (
	"sync/atomic"
	"time"

	"idscope_backend/internal/mapview"

	"github.com/google/uuid"
)

// View is one hosting surface.
type View struct {
	ID        uuid.UUID
	CreatedAt time.Time

	canvas     *mapview.StateCanvas
	controller *mapview.Controller
	generation atomic.Uint64
	lastSeen   atomic.Int64
}

func newView(settings mapview.Settings, now time.Time) *View {
	canvas := mapview.NewStateCanvas()
	v := &View{
		ID:         uuid.New(),
		CreatedAt:  now,
		canvas:     canvas,
		controller: mapview.NewController(canvas, settings),
	}
	v.lastSeen.Store(now.UnixNano())
	return v
}

// Map returns the view's map controller.
func (v *View) Map() *mapview.Controller {
	return v.controller
}

// Snapshot returns the rendered map state.
func (v *View) Snapshot() mapview.Snapshot {
	return v.canvas.Snapshot()
}

// Begin starts a new lookup and returns its generation. Every lookup that
// began earlier is superseded from this point on.
func (v *View) Begin() uint64 {
	return v.generation.Add(1)
}

// Generation returns the most recently started generation.
func (v *View) Generation() uint64 {
	return v.generation.Load()
}

// IsCurrent reports whether gen is still the latest lookup.
func (v *View) IsCurrent(gen uint64) bool {
	return v.generation.Load() == gen
}

// Touch records activity on the view.
func (v *View) Touch(now time.Time) {
	v.lastSeen.Store(now.UnixNano())
}

// LastSeen returns the last recorded activity.
func (v *View) LastSeen() time.Time {
	return time.Unix(0, v.lastSeen.Load())
}
