package mappicker

import (
	"fmt"
)

// EventType names the pointer and tool events the editor forwards to the
// picker.
type EventType string

const (
	EventSelectTool EventType = "selectTool"
	EventClick      EventType = "click"
	EventDragStart  EventType = "dragStart"
	EventDragMove   EventType = "dragMove"
	EventDragEnd    EventType = "dragEnd"

	// EventSearch is resolved to a coordinate before it reaches the state
	// machine, so Handle treats it as unknown.
	EventSearch EventType = "search"
)

// Event is one interaction event as posted by the editor front-end.
type Event struct {
	Type      EventType   `json:"type"`
	Mode      DrawingMode `json:"mode,omitempty"`
	Latitude  float64     `json:"latitude,omitempty"`
	Longitude float64     `json:"longitude,omitempty"`
}

// Handle dispatches a single event into the state machine.
func (p *Picker) Handle(ev Event) error {
	switch ev.Type {
	case EventSelectTool:
		if ev.Mode != ModeIdle && ev.Mode != ModePoint && ev.Mode != ModeRectangle {
			return fmt.Errorf("unknown drawing mode %q", ev.Mode)
		}
		p.SelectTool(ev.Mode)
	case EventClick:
		p.Click(ev.Latitude, ev.Longitude)
	case EventDragStart:
		p.DragStart(ev.Latitude, ev.Longitude)
	case EventDragMove:
		p.DragMove(ev.Latitude, ev.Longitude)
	case EventDragEnd:
		p.DragEnd(ev.Latitude, ev.Longitude)
	default:
		return fmt.Errorf("unknown picker event %q", ev.Type)
	}

	return nil
}
