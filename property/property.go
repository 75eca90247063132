// Package property provides observable values.
//
// A Property holds a single value and fires two signals whenever that value
// changes: PriorToChange with the value about to be replaced, then OnChange
// with the committed value. A Property may also be bound from another
// Property, in which case it mirrors every change of its source.
//
//	input := property.New(0.0)
//	output := property.New(0.0)
//	output.OnChange().Subscribe(func(v float64) {
//		fmt.Println("output:", v)
//	})
//	if err := output.BindFrom(input); err != nil {
//		return err
//	}
//	input.Set(0.6) // output: 0.6
//
// Notifications run synchronously on the caller's goroutine, and callbacks may
// set other properties. Long binding chains recurse once per link. Properties
// are not safe for concurrent use.
package property

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/slotparty/signal"
)

var (
	// ErrBindingCycle is returned by BindFrom when the source is, directly or
	// through its own bindings, bound from the receiver.
	ErrBindingCycle = errors.New("binding cycle")
	// ErrNilSource is returned by BindFrom when given a nil source.
	ErrNilSource = errors.New("nil binding source")
)

// Property is an observable value. The zero value holds the zero T and is
// unbound.
type Property[T comparable] struct {
	value T

	priorToChange signal.Signal[T]
	onChange      signal.Signal[T]

	// source is not owned; bindingID is only meaningful while it is set.
	source    *Property[T]
	bindingID signal.ID
}

func New[T comparable](value T) *Property[T] {
	return &Property[T]{value: value}
}

// Clone returns a new Property holding the same value. Bindings and
// subscribers belong to the original and are not copied.
func (p *Property[T]) Clone() *Property[T] {
	return New(p.value)
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set assigns v. Nothing happens if v equals the current value, otherwise
// PriorToChange fires with the old value, v is stored and OnChange fires
// with v.
func (p *Property[T]) Set(v T) {
	if v == p.value {
		return
	}
	p.priorToChange.Fire(p.value)
	p.value = v
	p.onChange.Fire(p.value)
}

// SetSilently assigns v without notifying anyone.
func (p *Property[T]) SetSilently(v T) {
	p.value = v
}

// Touch fires both signals with the current value without changing it.
func (p *Property[T]) Touch() {
	p.priorToChange.Fire(p.value)
	p.onChange.Fire(p.value)
}

// Assign sets the value held by other, going through the same equality
// check and notifications as Set.
func (p *Property[T]) Assign(other *Property[T]) {
	p.Set(other.Get())
}

// Equal reports whether both properties hold equal values.
func (p *Property[T]) Equal(other *Property[T]) bool {
	return p.value == other.Get()
}

// Is reports whether the property holds v.
func (p *Property[T]) Is(v T) bool {
	return p.value == v
}

func (p *Property[T]) PriorToChange() signal.Listenable[T] {
	return &p.priorToChange
}

func (p *Property[T]) OnChange() signal.Listenable[T] {
	return &p.onChange
}

// BindFrom makes p follow source: any existing binding is dropped, p is set to
// source's current value and from then on to every value source changes to.
//
// Binding is one directional, setting p directly does not touch source. A
// binding that would make p depend on itself is refused with
// ErrBindingCycle, leaving p unbound.
func (p *Property[T]) BindFrom(source *Property[T]) error {
	p.Unbind()

	if source == nil {
		return ErrNilSource
	}
	if p.reachableFrom(source) {
		return fmt.Errorf("binding from %v: %w", source.value, ErrBindingCycle)
	}

	p.source = source
	p.bindingID = source.onChange.Subscribe(p.Set)
	p.Set(source.Get())
	return nil
}

// reachableFrom walks the binding chain starting at start and reports whether
// it reaches p.
func (p *Property[T]) reachableFrom(start *Property[T]) bool {
	seen := mapset.NewThreadUnsafeSet[*Property[T]]()
	for cur := start; cur != nil; cur = cur.source {
		if cur == p {
			return true
		}
		if !seen.Add(cur) {
			return false
		}
	}
	return false
}

// Unbind stops following the current source, if any.
func (p *Property[T]) Unbind() {
	if p.source == nil {
		return
	}
	p.source.onChange.Unsubscribe(p.bindingID)
	p.source = nil
	p.bindingID = 0
}

// IsBound reports whether p currently follows a source.
func (p *Property[T]) IsBound() bool {
	return p.source != nil
}

// Source returns the property p is bound from, or nil.
func (p *Property[T]) Source() *Property[T] {
	return p.source
}

// MuteListeners removes every subscriber of both signals. The property's own
// binding, if any, is left alone.
func (p *Property[T]) MuteListeners() {
	p.priorToChange.UnsubscribeAll()
	p.onChange.UnsubscribeAll()
}

// Close releases p's binding so its source no longer calls into it. A bound
// property that is being discarded must be closed. Properties bound from p
// are not affected.
func (p *Property[T]) Close() {
	p.Unbind()
}
