package theme

import (
	"sync"
)

// Registry dispatches theme change events to subscribers.
//
// Subscriptions are explicit: a subscriber that is torn down must cancel its
// subscription, there is no automatic cleanup of abandoned listeners.
// Dispatch order follows subscription order.
type Registry struct {
	mu     sync.Mutex
	nextID int
	order  []int
	subs   map[int]Listener
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[int]Listener),
	}
}

// Subscription represents a single registered listener
type Subscription struct {
	id       int
	registry *Registry
}

// Subscribe registers a listener and returns its subscription handle
func (r *Registry) Subscribe(listener Listener) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subs[id] = listener
	r.order = append(r.order, id)

	return &Subscription{id: id, registry: r}
}

// Cancel removes the listener from the registry. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s.registry == nil {
		return
	}

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	delete(s.registry.subs, s.id)
	for i, id := range s.registry.order {
		if id == s.id {
			s.registry.order = append(s.registry.order[:i], s.registry.order[i+1:]...)
			break
		}
	}
	s.registry = nil
}

// Len returns the number of active subscriptions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// NotifyFontChanged delivers a font change event to every subscriber
func (r *Registry) NotifyFontChanged(event FontChangedEvent) {
	for _, listener := range r.snapshot() {
		listener.FontChanged(event)
	}
}

// NotifyColorChanged delivers a color change event to every subscriber
func (r *Registry) NotifyColorChanged(event ColorChangedEvent) {
	for _, listener := range r.snapshot() {
		listener.ColorChanged(event)
	}
}

// snapshot copies the active listeners so a listener may cancel its own
// subscription from inside a callback
func (r *Registry) snapshot() []Listener {
	r.mu.Lock()
	defer r.mu.Unlock()

	listeners := make([]Listener, 0, len(r.order))
	for _, id := range r.order {
		if listener, ok := r.subs[id]; ok {
			listeners = append(listeners, listener)
		}
	}
	return listeners
}
