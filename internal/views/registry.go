package views

import (
	"sync"
	"time"

	"idscope_backend/internal/mapview"
	"idscope_backend/platform/apperr"

	"github.com/google/uuid"
)

// Registry holds the live views.
type Registry struct {
	mu       sync.RWMutex
	views    map[uuid.UUID]*View
	settings mapview.Settings
	now      func() time.Time
}

func NewRegistry(settings mapview.Settings) *Registry {
	return &Registry{
		views:    make(map[uuid.UUID]*View),
		settings: settings,
		now:      time.Now,
	}
}

// Create registers a fresh view with an uninitialized map.
func (r *Registry) Create() *View {
	v := newView(r.settings, r.now())
	r.mu.Lock()
	r.views[v.ID] = v
	r.mu.Unlock()
	return v
}

// Get returns the view and marks it active.
func (r *Registry) Get(id uuid.UUID) (*View, error) {
	r.mu.RLock()
	v, ok := r.views[id]
	r.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("view not found")
	}
	v.Touch(r.now())
	return v, nil
}

// Delete drops a view. Unknown IDs are not an error.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}

// Prune removes views idle for longer than idle and returns how many went.
func (r *Registry) Prune(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, v := range r.views {
		if v.LastSeen().Before(cutoff) {
			delete(r.views, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
