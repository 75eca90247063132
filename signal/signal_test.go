package signal_test

import (
	"testing"

	"github.com/delaneyj/slotparty/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should hand out distinct, strictly increasing ids
func TestSubscribeIDsIncrease(t *testing.T) {
	var s signal.Signal[int]

	var last signal.ID
	for i := 0; i < 100; i++ {
		id := s.Subscribe(func(int) {})
		require.Greater(t, id, last)
		last = id
	}
	assert.Equal(t, 100, s.Len())
}

// should never reuse an id after unsubscribing
func TestIDsNotReused(t *testing.T) {
	var s signal.Signal[int]

	a := s.Subscribe(func(int) {})
	b := s.Subscribe(func(int) {})
	s.Unsubscribe(b)
	s.Unsubscribe(a)
	s.UnsubscribeAll()

	c := s.Subscribe(func(int) {})
	assert.Greater(t, c, b)
}

// should keep ids independent between signals
func TestIDsPerSignal(t *testing.T) {
	var a, b signal.Signal[string]

	a.Subscribe(func(string) {})
	a.Subscribe(func(string) {})
	assert.Equal(t, signal.ID(1), b.Subscribe(func(string) {}))
}

// should ignore repeated, unknown and foreign ids
func TestUnsubscribeIdempotent(t *testing.T) {
	var a, b signal.Signal[int]

	calls := 0
	keep := a.Subscribe(func(int) { calls++ })
	drop := a.Subscribe(func(int) { calls += 100 })
	foreign := b.Subscribe(func(int) {})

	a.Unsubscribe(drop)
	a.Unsubscribe(drop)
	a.Unsubscribe(signal.ID(42))
	a.Unsubscribe(foreign + 10)
	a.Unsubscribe(0)

	var empty signal.Signal[int]
	empty.Unsubscribe(1)

	a.Fire(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, a.Len())
	assert.NotZero(t, keep)
}

// should call every subscriber once with the same value
func TestFanOut(t *testing.T) {
	var s signal.Signal[int]

	const n = 16
	got := make([][]int, n)
	for i := 0; i < n; i++ {
		i := i
		s.Subscribe(func(v int) {
			got[i] = append(got[i], v)
		})
	}

	s.Fire(7)
	for i := 0; i < n; i++ {
		assert.Equal(t, []int{7}, got[i], "subscriber %d", i)
	}
}

// should deliver in ascending id order
func TestFireOrder(t *testing.T) {
	var s signal.Signal[string]

	var order []signal.ID
	ids := make([]signal.ID, 0, 5)
	for i := 0; i < 5; i++ {
		var id signal.ID
		id = s.Subscribe(func(string) {
			order = append(order, id)
		})
		ids = append(ids, id)
	}
	s.Unsubscribe(ids[2])

	s.Fire("go")
	assert.Equal(t, []signal.ID{ids[0], ids[1], ids[3], ids[4]}, order)
}

// should pass values by copy
func TestFireByValue(t *testing.T) {
	type point struct{ X, Y int }
	var s signal.Signal[point]

	var seen point
	s.Subscribe(func(p point) {
		p.X = 100
	})
	s.Subscribe(func(p point) {
		seen = p
	})

	s.Fire(point{X: 1, Y: 2})
	assert.Equal(t, point{X: 1, Y: 2}, seen)
}

// should reach nobody after unsubscribing all
func TestUnsubscribeAll(t *testing.T) {
	var s signal.Signal[int]

	calls := 0
	s.Subscribe(func(int) { calls++ })
	s.Subscribe(func(int) { calls++ })
	s.UnsubscribeAll()
	s.Fire(1)
	assert.Equal(t, 0, calls)
	assert.Zero(t, s.Len())

	s.Subscribe(func(int) { calls++ })
	s.Fire(1)
	assert.Equal(t, 1, calls)
}

// should let a subscriber remove itself while firing
func TestUnsubscribeSelfDuringFire(t *testing.T) {
	var s signal.Signal[int]

	calls := 0
	var id signal.ID
	id = s.Subscribe(func(int) {
		calls++
		s.Unsubscribe(id)
	})
	after := 0
	s.Subscribe(func(int) { after++ })

	s.Fire(1)
	s.Fire(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, after)
}

// should still call a subscriber removed by an earlier one in the same fire
func TestUnsubscribeOtherDuringFire(t *testing.T) {
	var s signal.Signal[int]

	var victim signal.ID
	s.Subscribe(func(int) {
		s.Unsubscribe(victim)
	})
	victimCalls := 0
	victim = s.Subscribe(func(int) { victimCalls++ })

	s.Fire(1)
	assert.Equal(t, 1, victimCalls)
	s.Fire(2)
	assert.Equal(t, 1, victimCalls)
}

// should only call subscribers added during a fire from the next fire on
func TestSubscribeDuringFire(t *testing.T) {
	var s signal.Signal[int]

	added := 0
	once := false
	s.Subscribe(func(int) {
		if once {
			return
		}
		once = true
		s.Subscribe(func(int) { added++ })
	})

	s.Fire(1)
	assert.Equal(t, 0, added)
	s.Fire(2)
	assert.Equal(t, 1, added)
}

// should survive unsubscribing everything while firing
func TestUnsubscribeAllDuringFire(t *testing.T) {
	var s signal.Signal[int]

	calls := 0
	s.Subscribe(func(int) {
		calls++
		s.UnsubscribeAll()
	})
	s.Subscribe(func(int) { calls++ })

	s.Fire(1)
	assert.Equal(t, 2, calls)
	s.Fire(2)
	assert.Equal(t, 2, calls)
}

// should allow firing the same signal from a subscriber
func TestReentrantFire(t *testing.T) {
	var s signal.Signal[int]

	var got []int
	s.Subscribe(func(v int) {
		got = append(got, v)
		if v > 0 {
			s.Fire(v - 1)
		}
	})

	s.Fire(3)
	assert.Equal(t, []int{3, 2, 1, 0}, got)
}

type person struct {
	name  string
	heard []string
}

func (p *person) listen(msg string) {
	p.heard = append(p.heard, p.name+" received: "+msg)
}

// should subscribe methods through SubscribeMember
func TestSubscribeMember(t *testing.T) {
	alice := &person{name: "Alice"}
	bob := &person{name: "Bob"}
	var aliceSays, bobSays signal.Signal[string]

	signal.SubscribeMember(&aliceSays, bob, (*person).listen)
	id := signal.SubscribeMember(&bobSays, alice, (*person).listen)

	aliceSays.Fire("Have a nice day!")
	bobSays.Fire("Thank you!")
	assert.Equal(t, []string{"Bob received: Have a nice day!"}, bob.heard)
	assert.Equal(t, []string{"Alice received: Thank you!"}, alice.heard)

	bobSays.Unsubscribe(id)
	bobSays.Fire("Bye")
	assert.Len(t, alice.heard, 1)
}

// should work through the Listenable view
func TestListenable(t *testing.T) {
	s := signal.New[int]()
	var l signal.Listenable[int] = s

	got := 0
	id := l.Subscribe(func(v int) { got = v })
	s.Fire(5)
	assert.Equal(t, 5, got)

	l.Unsubscribe(id)
	s.Fire(6)
	assert.Equal(t, 5, got)
}
