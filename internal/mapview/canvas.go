// Package mapview owns the map widget shown next to lookup results. The
// widget itself sits behind the Canvas/Map/Marker capabilities so the
// controller can drive any rendering surface.
package mapview

// LatLng is a WGS84 point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Canvas creates map widgets inside a named container.
type Canvas interface {
	CreateMap(containerID string, center LatLng, zoom int) (Map, error)
}

// Map is a live map widget.
type Map interface {
	SetView(center LatLng, zoom int)
	AddTileLayer(urlTemplate, attribution string)
	AddMarker(at LatLng) Marker
	RemoveMarker(m Marker)
}

// Marker is a point on a Map. Popup calls chain.
type Marker interface {
	BindPopup(text string) Marker
	OpenPopup() Marker
}
