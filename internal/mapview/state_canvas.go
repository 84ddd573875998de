package mapview

import (
	"errors"
	"sort"
	"sync"
)

// ErrContainerInUse is returned when a second widget is created in the same
// container.
var ErrContainerInUse = errors.New("map container is already initialized")

// TileLayer is an attached base layer.
type TileLayer struct {
	URLTemplate string `json:"urlTemplate"`
	Attribution string `json:"attribution"`
}

// MarkerSnapshot describes one marker on the widget.
type MarkerSnapshot struct {
	Position  LatLng `json:"position"`
	Popup     string `json:"popup"`
	PopupOpen bool   `json:"popupOpen"`
}

// Snapshot is the observable widget state served to clients.
type Snapshot struct {
	Exists       bool             `json:"exists"`
	ContainerID  string           `json:"containerId,omitempty"`
	Center       *LatLng          `json:"center,omitempty"`
	Zoom         int              `json:"zoom"`
	TileLayers   []TileLayer      `json:"tileLayers"`
	Markers      []MarkerSnapshot `json:"markers"`
	CreatedCount int              `json:"createdCount"`
	ViewChanges  int              `json:"viewChanges"`
}

// StateCanvas is a Canvas that keeps widget state in memory. Clients render
// from its Snapshot.
type StateCanvas struct {
	mu      sync.Mutex
	created int
	widget  *stateMap
}

func NewStateCanvas() *StateCanvas {
	return &StateCanvas{}
}

func (s *StateCanvas) CreateMap(containerID string, center LatLng, zoom int) (Map, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.widget != nil && s.widget.containerID == containerID {
		return nil, ErrContainerInUse
	}
	s.created++
	s.widget = &stateMap{
		canvas:      s,
		containerID: containerID,
		center:      center,
		zoom:        zoom,
		markers:     make(map[int]*stateMarker),
	}
	return s.widget, nil
}

// Snapshot copies the current widget state.
func (s *StateCanvas) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		CreatedCount: s.created,
		TileLayers:   []TileLayer{},
		Markers:      []MarkerSnapshot{},
	}
	w := s.widget
	if w == nil {
		return snap
	}

	center := w.center
	snap.Exists = true
	snap.ContainerID = w.containerID
	snap.Center = &center
	snap.Zoom = w.zoom
	snap.ViewChanges = w.viewChanges
	snap.TileLayers = append(snap.TileLayers, w.tiles...)

	ids := make([]int, 0, len(w.markers))
	for id := range w.markers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		m := w.markers[id]
		snap.Markers = append(snap.Markers, MarkerSnapshot{Position: m.at, Popup: m.popup, PopupOpen: m.open})
	}
	return snap
}

type stateMap struct {
	canvas      *StateCanvas
	containerID string
	center      LatLng
	zoom        int
	viewChanges int
	tiles       []TileLayer
	markers     map[int]*stateMarker
	nextID      int
}

func (m *stateMap) SetView(center LatLng, zoom int) {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.center = center
	m.zoom = zoom
	m.viewChanges++
}

func (m *stateMap) AddTileLayer(urlTemplate, attribution string) {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.tiles = append(m.tiles, TileLayer{URLTemplate: urlTemplate, Attribution: attribution})
}

func (m *stateMap) AddMarker(at LatLng) Marker {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.nextID++
	marker := &stateMarker{id: m.nextID, widget: m, at: at}
	m.markers[marker.id] = marker
	return marker
}

func (m *stateMap) RemoveMarker(marker Marker) {
	sm, ok := marker.(*stateMarker)
	if !ok {
		return
	}
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	delete(m.markers, sm.id)
}

type stateMarker struct {
	id     int
	widget *stateMap
	at     LatLng
	popup  string
	open   bool
}

func (k *stateMarker) BindPopup(text string) Marker {
	k.widget.canvas.mu.Lock()
	defer k.widget.canvas.mu.Unlock()
	k.popup = text
	return k
}

func (k *stateMarker) OpenPopup() Marker {
	k.widget.canvas.mu.Lock()
	defer k.widget.canvas.mu.Unlock()
	k.open = true
	return k
}
