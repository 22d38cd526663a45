package session

import (
	"errors"
	"fmt"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

var ErrRoverExists = errors.New("rover already registered")

// Registry maps rover names to rovers and remembers landing order
type Registry struct {
	rovers map[string]*engine.Rover
	order  []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		rovers: make(map[string]*engine.Rover),
	}
}

// Register adds a rover. Names are unique; re-registering fails.
func (r *Registry) Register(rover *engine.Rover) error {
	if rover == nil {
		return fmt.Errorf("rover cannot be nil")
	}
	if _, exists := r.rovers[rover.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrRoverExists, rover.Name())
	}

	r.rovers[rover.Name()] = rover
	r.order = append(r.order, rover.Name())
	return nil
}

// Get retrieves a rover by name
func (r *Registry) Get(name string) (*engine.Rover, bool) {
	rover, exists := r.rovers[name]
	return rover, exists
}

// List returns all rovers in landing order
func (r *Registry) List() []*engine.Rover {
	result := make([]*engine.Rover, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.rovers[name])
	}
	return result
}

// Len returns the number of registered rovers
func (r *Registry) Len() int {
	return len(r.order)
}

// Statuses returns every rover's status line in landing order
func (r *Registry) Statuses() []string {
	statuses := make([]string, 0, len(r.order))
	for _, rover := range r.List() {
		statuses = append(statuses, rover.Status())
	}
	return statuses
}
