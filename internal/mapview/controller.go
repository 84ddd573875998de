package mapview

import (
	"fmt"
	"sync"

	"idscope_backend/platform/config"
	"idscope_backend/platform/sanitize"
)

// State is the controller lifecycle state.
type State int

const (
	Uninitialized State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "uninitialized"
}

// Settings are the fixed widget parameters applied on every update.
type Settings struct {
	ContainerID string
	Zoom        int
	TileURL     string
	Attribution string
	PopupText   string
}

// SettingsFrom reads widget settings from configuration.
func SettingsFrom(cfg config.MapConfig) Settings {
	return Settings{
		ContainerID: cfg.GetMapContainerID(),
		Zoom:        cfg.GetMapZoom(),
		TileURL:     cfg.GetMapTileURL(),
		Attribution: sanitize.Text(cfg.GetMapTileAttribution()),
		PopupText:   sanitize.Text(cfg.GetMapPopupText()),
	}
}

// Controller keeps exactly one widget per hosting view and at most one
// marker on it.
type Controller struct {
	mu       sync.Mutex
	canvas   Canvas
	settings Settings
	state    State
	widget   Map
	markers  []Marker
}

func NewController(canvas Canvas, settings Settings) *Controller {
	return &Controller{canvas: canvas, settings: settings}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ShowLocation centers the widget on (lat, lon) and replaces any marker with
// a single marker whose popup is open. The widget is created on first use and
// reused afterwards.
func (c *Controller) ShowLocation(lat, lon float64) error {
	_, err := c.ShowLocationWhen(lat, lon, nil)
	return err
}

// ShowLocationWhen behaves like ShowLocation but first evaluates current
// while holding the controller lock; when it reports false nothing changes
// and applied is false. A nil current always applies.
func (c *Controller) ShowLocationWhen(lat, lon float64, current func() bool) (applied bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current != nil && !current() {
		return false, nil
	}

	center := LatLng{Lat: lat, Lon: lon}
	switch c.state {
	case Uninitialized:
		widget, err := c.canvas.CreateMap(c.settings.ContainerID, center, c.settings.Zoom)
		if err != nil {
			return false, fmt.Errorf("create map: %w", err)
		}
		widget.AddTileLayer(c.settings.TileURL, c.settings.Attribution)
		c.widget = widget
		c.state = Active
	case Active:
		c.widget.SetView(center, c.settings.Zoom)
	}

	for _, m := range c.markers {
		c.widget.RemoveMarker(m)
	}
	marker := c.widget.AddMarker(center).BindPopup(c.settings.PopupText).OpenPopup()
	c.markers = append(c.markers[:0], marker)
	return true, nil
}
