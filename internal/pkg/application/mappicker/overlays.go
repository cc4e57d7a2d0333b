package mappicker

import (
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
)

//go:generate moq -rm -out mapwidget_mock.go . MapWidget

// MapWidget is the imperative surface of the underlying map. Implementations
// wrap the actual widget; the adapter below is the only caller, so overlay
// creation and removal stay idempotent.
type MapWidget interface {
	ShowMarker(latitude, longitude float64)
	RemoveMarker()
	ShowRectangle(bounds domain.CoordinateBounds)
	RemoveRectangle()
	ShowPreview(bounds domain.CoordinateBounds)
	RemovePreview()
	SetDraggingEnabled(enabled bool)
	PanTo(latitude, longitude float64)
}

// WidgetAdapter reconciles a Picker's declarative overlay state with a
// MapWidget. Every overlay is disposed before a replacement is created, so
// re-entering a state can not leak widget objects.
type WidgetAdapter struct {
	widget MapWidget

	shown       OverlayState
	panEnabled  bool
	initialized bool
}

func NewWidgetAdapter(widget MapWidget) *WidgetAdapter {
	return &WidgetAdapter{widget: widget, panEnabled: true}
}

// Apply diffs the picker's view-model against what is currently shown and
// issues the minimal set of widget calls.
func (a *WidgetAdapter) Apply(p *Picker) {
	target := p.Overlays()

	a.applyMarker(target.Marker)
	a.applyRectangle(target.Rectangle)
	a.applyPreview(target.Preview)
	a.applyCenter(target.Center)

	if pan := p.PanEnabled(); !a.initialized || pan != a.panEnabled {
		a.widget.SetDraggingEnabled(pan)
		a.panEnabled = pan
	}

	a.initialized = true
	a.shown = target
}

func (a *WidgetAdapter) applyMarker(target *Marker) {
	current := a.shown.Marker

	if markerEqual(current, target) {
		return
	}

	if current != nil {
		a.widget.RemoveMarker()
	}
	if target != nil {
		a.widget.ShowMarker(target.Latitude, target.Longitude)
	}
}

func (a *WidgetAdapter) applyRectangle(target *domain.CoordinateBounds) {
	current := a.shown.Rectangle

	if boundsEqual(current, target) {
		return
	}

	if current != nil {
		a.widget.RemoveRectangle()
	}
	if target != nil {
		a.widget.ShowRectangle(*target)
	}
}

func (a *WidgetAdapter) applyPreview(target *domain.CoordinateBounds) {
	current := a.shown.Preview

	if boundsEqual(current, target) {
		return
	}

	if current != nil {
		a.widget.RemovePreview()
	}
	if target != nil {
		a.widget.ShowPreview(*target)
	}
}

func (a *WidgetAdapter) applyCenter(target *Marker) {
	if markerEqual(a.shown.Center, target) {
		return
	}

	if target != nil {
		a.widget.PanTo(target.Latitude, target.Longitude)
	}
}

func markerEqual(a, b *Marker) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func boundsEqual(a, b *domain.CoordinateBounds) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
