package signal

import (
	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/avl"
)

// ID identifies a subscription within a single signal. Ids start at 1 and are
// never reused by the signal that issued them.
type ID uint64

type entry[F any] struct {
	id ID
	fn F
}

// table is the subscriber bookkeeping shared by every signal arity. It is
// lazily initialised so that the zero value of each signal is usable.
type table[F any] struct {
	subs   *avl.Tree[ID, F]
	lastID ID
	count  int
}

func (t *table[F]) add(fn F) ID {
	if t.subs == nil {
		t.subs = avl.New[ID, F](g.Less[ID])
	}
	t.lastID++
	t.subs.Put(t.lastID, fn)
	t.count++
	return t.lastID
}

func (t *table[F]) remove(id ID) {
	if t.subs == nil {
		return
	}
	if _, ok := t.subs.Get(id); !ok {
		return
	}
	t.subs.Remove(id)
	t.count--
}

func (t *table[F]) clear() {
	t.subs = nil
	t.count = 0
}

// snapshot copies the live subscribers in ascending id order. Dispatch works
// off the copy, so callbacks may subscribe or unsubscribe freely; those changes
// apply from the next dispatch on.
func (t *table[F]) snapshot() []entry[F] {
	if t.count == 0 {
		return nil
	}
	entries := make([]entry[F], 0, t.count)
	t.subs.Each(func(id ID, fn F) {
		entries = append(entries, entry[F]{id: id, fn: fn})
	})
	return entries
}

func (t *table[F]) len() int {
	return t.count
}
