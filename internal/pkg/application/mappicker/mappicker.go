package mappicker

import (
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
)

// DrawingMode is the picker's current interaction intent.
type DrawingMode string

const (
	ModeIdle      DrawingMode = ""
	ModePoint     DrawingMode = "point"
	ModeRectangle DrawingMode = "rectangle"
)

// Marker is a committed point overlay.
type Marker struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OverlayState is the declarative view-model of everything the picker wants
// drawn on the map. The widget adapter diffs it against what is actually
// shown, so the dispose-before-create discipline lives in exactly one place.
// Center is where the viewport should move to; only resolved searches set
// it, plain clicks leave the viewport alone.
type OverlayState struct {
	Marker    *Marker                  `json:"marker,omitempty"`
	Rectangle *domain.CoordinateBounds `json:"rectangle,omitempty"`
	Preview   *domain.CoordinateBounds `json:"preview,omitempty"`
	Center    *Marker                  `json:"center,omitempty"`
}

// Callbacks receive committed selections. Both are optional.
type Callbacks struct {
	PointSelected  func(latitude, longitude float64)
	BoundsSelected func(bounds domain.CoordinateBounds)
}

// Picker is the map interaction state machine. All transitions are client
// local and synchronous; the zero value of every transient field means "no
// draw in progress".
type Picker struct {
	mode      DrawingMode
	dragging  bool
	anchorLat float64
	anchorLon float64

	overlays  OverlayState
	callbacks Callbacks
}

func New(callbacks Callbacks) *Picker {
	return &Picker{callbacks: callbacks}
}

func (p *Picker) Mode() DrawingMode {
	return p.mode
}

// PanEnabled reports whether the underlying map may pan. Panning is disabled
// only while a rectangle drag is in progress, so the drag gesture is not
// swallowed by the map's own drag handling.
func (p *Picker) PanEnabled() bool {
	return !p.dragging
}

// Overlays returns the current overlay view-model.
func (p *Picker) Overlays() OverlayState {
	return p.overlays
}

// SelectTool switches the drawing mode. Switching always cancels an
// in-progress draw; no partial state survives a tool change.
func (p *Picker) SelectTool(mode DrawingMode) {
	p.cancelDraw()
	p.mode = mode
}

// Click handles a plain map click. Outside point mode it is a no-op. In
// point mode it commits the clicked location, clears any rectangle overlay
// and returns the picker to idle.
func (p *Picker) Click(latitude, longitude float64) {
	if p.mode != ModePoint {
		return
	}

	p.commitPoint(latitude, longitude)
	p.mode = ModeIdle
}

// DragStart captures the anchor corner of a rectangle. Outside rectangle
// mode it is a no-op.
func (p *Picker) DragStart(latitude, longitude float64) {
	if p.mode != ModeRectangle {
		return
	}

	p.anchorLat = latitude
	p.anchorLon = longitude
	p.dragging = true
	p.overlays.Preview = nil
}

// DragMove redraws the preview rectangle from the anchor and the live
// pointer position. Bounds are normalized regardless of drag direction.
func (p *Picker) DragMove(latitude, longitude float64) {
	if !p.dragging {
		return
	}

	bounds := domain.NewCoordinateBounds(p.anchorLat, p.anchorLon, latitude, longitude)
	p.overlays.Preview = &bounds
}

// DragEnd commits the final bounds, removes the preview, re-enables panning
// and returns to idle.
func (p *Picker) DragEnd(latitude, longitude float64) {
	if !p.dragging {
		return
	}

	bounds := domain.NewCoordinateBounds(p.anchorLat, p.anchorLon, latitude, longitude)

	p.dragging = false
	p.overlays.Preview = nil
	p.overlays.Marker = nil
	p.overlays.Rectangle = &bounds
	p.mode = ModeIdle

	if p.callbacks.BoundsSelected != nil {
		p.callbacks.BoundsSelected(bounds)
	}
}

// SetBounds reflects an external coordinate change (fields edited by hand or
// values arriving from storage). A draw in progress is cancelled first.
func (p *Picker) SetBounds(bounds domain.CoordinateBounds) {
	p.cancelDraw()
	p.overlays.Marker = nil
	p.overlays.Rectangle = &bounds
}

// SetMarker reflects externally supplied point coordinates.
func (p *Picker) SetMarker(latitude, longitude float64) {
	p.cancelDraw()
	p.overlays.Rectangle = nil
	p.overlays.Marker = &Marker{Latitude: latitude, Longitude: longitude}
}

// SearchResult treats a resolved geocoding hit like a point click, firing
// the same callback, but leaves the drawing mode untouched. Unlike a click
// it also recenters the viewport on the hit.
func (p *Picker) SearchResult(latitude, longitude float64) {
	p.commitPoint(latitude, longitude)
	p.overlays.Center = &Marker{Latitude: latitude, Longitude: longitude}
}

func (p *Picker) commitPoint(latitude, longitude float64) {
	p.overlays.Rectangle = nil
	p.overlays.Preview = nil
	p.overlays.Marker = &Marker{Latitude: latitude, Longitude: longitude}

	if p.callbacks.PointSelected != nil {
		p.callbacks.PointSelected(latitude, longitude)
	}
}

func (p *Picker) cancelDraw() {
	p.dragging = false
	p.overlays.Preview = nil
}
