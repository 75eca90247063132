// Package signal provides typed multicast signals.
//
// A signal keeps an ordered set of callbacks keyed by the ID handed out when
// they subscribe. Firing a signal calls every callback synchronously, in
// ascending ID order, on the caller's goroutine.
//
//	var say signal.Signal[string]
//	id := say.Subscribe(func(msg string) {
//		fmt.Println("received:", msg)
//	})
//	say.Fire("Have a nice day!")
//	say.Unsubscribe(id)
//
// Signals are not safe for concurrent use.
//
// The one argument Signal is written by hand, the other arities are generated
// by cmd/codegen into signals_gen.go.
package signal

// Listenable is the subscribe side of a Signal. Owners hand it out when
// outsiders may listen but must not fire.
type Listenable[T any] interface {
	Subscribe(fn func(T)) ID
	Unsubscribe(id ID)
}

// Signal multicasts a single value to its subscribers.
type Signal[T any] struct {
	table[func(T)]
}

var _ Listenable[int] = (*Signal[int])(nil)

func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe registers fn and returns its ID.
func (s *Signal[T]) Subscribe(fn func(T)) ID {
	return s.add(fn)
}

// Unsubscribe removes the subscriber with the given ID. Unknown, foreign or
// already removed IDs are ignored.
func (s *Signal[T]) Unsubscribe(id ID) {
	s.remove(id)
}

// UnsubscribeAll removes every subscriber.
func (s *Signal[T]) UnsubscribeAll() {
	s.clear()
}

// Len returns the number of live subscribers.
func (s *Signal[T]) Len() int {
	return s.len()
}

// Fire calls every subscriber with v.
//
// The subscribers are captured when Fire starts: one added during Fire is
// first called by the next Fire, and one removed during Fire is still called
// if it had not been reached yet.
func (s *Signal[T]) Fire(v T) {
	for _, e := range s.snapshot() {
		e.fn(v)
	}
}

// SubscribeMember subscribes method bound to recv, typically given as a
// method expression:
//
//	signal.SubscribeMember(&alice.Say, bob, (*Person).Listen)
func SubscribeMember[R, T any](s *Signal[T], recv R, method func(R, T)) ID {
	return s.Subscribe(func(v T) {
		method(recv, v)
	})
}
