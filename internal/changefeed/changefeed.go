// internal/changefeed/changefeed.go
package changefeed

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
)

// Subscription is the handle returned by Subscribe. Unsubscribe is safe to
// call more than once and safe after the broker has been closed.
type Subscription interface {
	Unsubscribe()
}

// Broker fans out per-table change notifications. Services publish after each
// successful mutation; subscribers get a coarse "something changed" signal
// and re-fetch the full collection themselves. The interface exists so the
// in-process bus can later be swapped for a row-level diffing transport
// without touching callers.
type Broker interface {
	// Subscribe registers onChange for every mutation on table. Delivery is
	// debounced by the broker's refresh delay to ride out read-after-write
	// lag in the remote store.
	Subscribe(table string, onChange func()) Subscription
	// Publish signals that table changed. Which row or which operation is
	// deliberately not part of the contract.
	Publish(table string)
	Close()
}

// Bus is the in-process Broker used in production. One dispatcher per table
// is registered on the event bus; each subscription keeps its own debounce
// timer, so concurrent subscribers to the same table stay independent.
type Bus struct {
	bus   EventBus.Bus
	delay time.Duration

	mu     sync.Mutex
	topics map[string]*topicDispatch
	closed bool
}

type topicDispatch struct {
	handler func()
	subs    map[*busSubscription]struct{}
}

func NewBus(delay time.Duration) *Bus {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	return &Bus{
		bus:    EventBus.New(),
		delay:  delay,
		topics: make(map[string]*topicDispatch),
	}
}

func (b *Bus) Subscribe(table string, onChange func()) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return InertSubscription()
	}

	td, ok := b.topics[table]
	if !ok {
		td = &topicDispatch{subs: make(map[*busSubscription]struct{})}
		td.handler = func() { b.dispatch(table) }
		if err := b.bus.Subscribe(table, td.handler); err != nil {
			logrus.WithError(err).WithField("table", table).Error("changefeed subscribe failed")
			return InertSubscription()
		}
		b.topics[table] = td
	}

	sub := &busSubscription{bus: b, topic: table, onChange: onChange}
	td.subs[sub] = struct{}{}
	return sub
}

func (b *Bus) Publish(table string) {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return
	}
	b.bus.Publish(table)
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for table, td := range b.topics {
		for sub := range td.subs {
			sub.stop()
		}
		b.bus.Unsubscribe(table, td.handler)
		delete(b.topics, table)
	}
}

func (b *Bus) dispatch(table string) {
	b.mu.Lock()
	td, ok := b.topics[table]
	if !ok {
		b.mu.Unlock()
		return
	}
	subs := make([]*busSubscription, 0, len(td.subs))
	for sub := range td.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.notify()
	}
}

func (b *Bus) remove(table string, sub *busSubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	td, ok := b.topics[table]
	if !ok {
		return
	}
	delete(td.subs, sub)
	if len(td.subs) == 0 {
		b.bus.Unsubscribe(table, td.handler)
		delete(b.topics, table)
	}
}

type busSubscription struct {
	bus      *Bus
	topic    string
	onChange func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// notify runs on every published event. Rapid successive events reset the
// timer; the callback fires once the table has been quiet for the delay.
func (s *busSubscription) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.bus.delay, s.fire)
}

func (s *busSubscription) fire() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.onChange()
}

func (s *busSubscription) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *busSubscription) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.bus.remove(s.topic, s)
}

// Inert is the Broker used when the catalog service is unconfigured. Every
// subscription is a harmless no-op handle, so callers never special-case the
// degraded mode.
type Inert struct{}

func NewInert() Inert { return Inert{} }

func (Inert) Subscribe(string, func()) Subscription { return InertSubscription() }
func (Inert) Publish(string)                        {}
func (Inert) Close()                                {}

type inertSubscription struct{}

func (inertSubscription) Unsubscribe() {}

// InertSubscription returns a handle whose Unsubscribe does nothing.
func InertSubscription() Subscription { return inertSubscription{} }
