package main

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotparty/property"
	"github.com/delaneyj/slotparty/signal"
	"github.com/jamiealquiza/tachymeter"
)

// checksum folds every delivered value into an xxhash digest so a run can be
// compared against the deliveries it should have produced.
type checksum struct {
	d     *xxhash.Digest
	buf   [8]byte
	count int64
}

func newChecksum() *checksum {
	return &checksum{d: xxhash.New()}
}

func (c *checksum) add(v int) {
	binary.LittleEndian.PutUint64(c.buf[:], uint64(v))
	c.d.Write(c.buf[:])
	c.count++
}

func (c *checksum) sum() uint64 {
	return c.d.Sum64()
}

type result struct {
	name       string
	deliveries int64
	total      time.Duration
	calc       *tachymeter.Metrics
}

// expected replays the deliveries a scenario should produce: each of width
// receivers sees every value from 2 to iters+1, in that order per value.
func expected(width, iters int) *checksum {
	c := newChecksum()
	for i := 0; i < iters; i++ {
		for w := 0; w < width; w++ {
			c.add(i + 2)
		}
	}
	return c
}

// fanOut fires a signal with width subscribers iters times.
func fanOut(width, iters int) (*result, error) {
	var s signal.Signal[int]
	got := newChecksum()
	for i := 0; i < width; i++ {
		s.Subscribe(got.add)
	}
	if s.Len() != width {
		return nil, fmt.Errorf("fan-out %d: %d subscribers registered", width, s.Len())
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	start := time.Now()
	for i := 0; i < iters; i++ {
		t := time.Now()
		s.Fire(i + 2)
		tach.AddTime(time.Since(t))
	}
	total := time.Since(start)

	if err := verify(got, expected(width, iters)); err != nil {
		return nil, fmt.Errorf("fan-out %d: %w", width, err)
	}
	return &result{
		name:       fmt.Sprintf("fan-out: %d", width),
		deliveries: got.count,
		total:      total,
		calc:       tach.Calc(),
	}, nil
}

// propagate builds width binding chains of the given depth off one source
// property and times setting the source.
func propagate(width, depth, iters int) (*result, error) {
	src := property.New(1)
	got := newChecksum()
	var all []*property.Property[int]
	for i := 0; i < width; i++ {
		last := src
		for j := 0; j < depth; j++ {
			next := property.New(0)
			if err := next.BindFrom(last); err != nil {
				return nil, fmt.Errorf("binding chain %d link %d: %w", i, j, err)
			}
			all = append(all, next)
			last = next
		}
		last.OnChange().Subscribe(got.add)
	}
	defer func() {
		for _, p := range all {
			p.Close()
		}
	}()

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	start := time.Now()
	for i := 0; i < iters; i++ {
		t := time.Now()
		src.Set(src.Get() + 1)
		tach.AddTime(time.Since(t))
	}
	total := time.Since(start)

	if err := verify(got, expected(width, iters)); err != nil {
		return nil, fmt.Errorf("propagate %d * %d: %w", width, depth, err)
	}
	return &result{
		name:       fmt.Sprintf("propagate: %d * %d", width, depth),
		deliveries: got.count * int64(depth),
		total:      total,
		calc:       tach.Calc(),
	}, nil
}

func verify(got, want *checksum) error {
	if got.count != want.count {
		return fmt.Errorf("delivered %d values, want %d", got.count, want.count)
	}
	if got.sum() != want.sum() {
		return fmt.Errorf("delivery checksum %x, want %x", got.sum(), want.sum())
	}
	return nil
}
