package notify

import (
	"sync"

	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

// Container positions for the toast region.
const (
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
)

// positionClasses maps a position name to its placement classes.
var positionClasses = map[string][]string{
	PositionTopRight:    {"top-0", "end-0"},
	PositionTopLeft:     {"top-0", "start-0"},
	PositionBottomRight: {"bottom-0", "end-0"},
	PositionBottomLeft:  {"bottom-0", "start-0"},
}

// Container is the fixed-position region holding all live toasts.
// There is one container per Notifier; toasts stack in insertion order.
//
// A Container is safe for concurrent use. Dismissal callbacks arrive
// from connection goroutines, not only from the goroutine that showed
// the toast.
type Container struct {
	mu       sync.Mutex
	position string
	toasts   []*Toast
	nextID   uint64
}

// NewContainer creates an empty container at the given position.
// An unrecognized position falls back to top-right.
func NewContainer(position string) *Container {
	if _, ok := positionClasses[position]; !ok {
		position = PositionTopRight
	}
	return &Container{position: position}
}

// Position returns the container's corner anchor.
func (c *Container) Position() string {
	return c.position
}

// Append creates a toast with the next ID and adds it to the end of
// the container. The returned toast is owned by the container until
// Remove is called with its ID.
func (c *Container) Append(severity Severity, message string) *Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &Toast{
		ID:       c.nextID,
		Severity: severity,
		Message:  message,
	}
	c.toasts = append(c.toasts, t)
	return t
}

// Remove deletes the toast with the given ID. It is idempotent:
// removing an unknown or already-removed ID is a no-op and returns false.
func (c *Container) Remove(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Toasts returns a snapshot of the live toasts in insertion order.
func (c *Container) Toasts() []*Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Len returns the number of live toasts.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.toasts)
}

// Render returns the container markup with all live toasts as children.
func (c *Container) Render() *vdom.VNode {
	c.mu.Lock()
	toasts := make([]*Toast, len(c.toasts))
	copy(toasts, c.toasts)
	position := c.position
	c.mu.Unlock()

	classes := append([]string{"toast-container", "position-fixed"}, positionClasses[position]...)
	classes = append(classes, "p-3")

	return vdom.Div(
		vdom.Class(classes...),
		vdom.ID("notification-area"),
		vdom.Range(toasts, func(t *Toast, _ int) *vdom.VNode {
			return t.Render()
		}),
	)
}
