package breakout

import "sync"

// Subscription identifies a registered observer.
type Subscription uint64

type observer struct {
	id Subscription
	fn func()
}

// Observers is a push-notification list. Callbacks carry no payload; observers
// read whatever state they need through the model's accessors.
type Observers struct {
	mu   sync.Mutex
	next Subscription
	subs []observer
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (o *Observers) Subscribe(fn func()) Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.next++
	o.subs = append(o.subs, observer{id: o.next, fn: fn})
	return o.next
}

// Unsubscribe removes an observer. Reports whether it was registered.
func (o *Observers) Unsubscribe(id Subscription) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, s := range o.subs {
		if s.id == id {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (o *Observers) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// Notify calls every observer registered at the time of the call, in
// subscription order, on the caller's goroutine.
func (o *Observers) Notify() {
	o.mu.Lock()
	subs := make([]observer, len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}
