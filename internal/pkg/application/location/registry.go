package location

import (
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

// Callback receives location updates. Callbacks run synchronously on the
// notifying goroutine and should return quickly.
type Callback func(p geo.Point)

// Registry holds location subscribers, each with a minimum delivery interval.
// Updates arriving before a subscriber's interval has elapsed are skipped for
// that subscriber only.
type Registry struct {
	subscribers cmap.ConcurrentMap[string, *subscription]
	now         func() time.Time
}

type subscription struct {
	mu           sync.Mutex
	callback     Callback
	interval     time.Duration
	lastDelivery time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		subscribers: cmap.New[*subscription](),
		now:         time.Now,
	}
}

// Subscribe registers a callback under the given identity, replacing any
// previous registration with the same identity.
func (r *Registry) Subscribe(id string, interval time.Duration, cb Callback) {
	r.subscribers.Set(id, &subscription{
		callback: cb,
		interval: interval,
	})
}

func (r *Registry) Unsubscribe(id string) {
	r.subscribers.Remove(id)
}

func (r *Registry) Count() int {
	return r.subscribers.Count()
}

// Notify broadcasts a location update to every due subscriber.
func (r *Registry) Notify(p geo.Point) {
	for item := range r.subscribers.IterBuffered() {
		item.Val.deliver(r.now(), p)
	}
}

func (s *subscription) deliver(at time.Time, p geo.Point) {
	s.mu.Lock()

	if !s.lastDelivery.IsZero() && at.Sub(s.lastDelivery) < s.interval {
		s.mu.Unlock()
		return
	}

	s.lastDelivery = at
	cb := s.callback
	s.mu.Unlock()

	cb(p)
}
