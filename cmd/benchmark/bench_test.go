package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should deliver every fire to every subscriber
func TestFanOut(t *testing.T) {
	r, err := fanOut(10, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(200), r.deliveries)
	assert.Equal(t, "fan-out: 10", r.name)
	assert.NotNil(t, r.calc)
}

// should propagate every set through each binding chain
func TestPropagate(t *testing.T) {
	r, err := propagate(3, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3*5*10), r.deliveries)
	assert.Equal(t, "propagate: 3 * 5", r.name)
}

// should detect missing deliveries
func TestVerifyMismatch(t *testing.T) {
	want := expected(2, 3)
	got := expected(2, 2)
	assert.Error(t, verify(got, want))

	got = newChecksum()
	for i := 0; i < 6; i++ {
		got.add(7)
	}
	assert.Error(t, verify(got, want))
	assert.NoError(t, verify(expected(2, 3), want))
}

// should parse comma separated sizes
func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes(" 1, 10,,100 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 100}, sizes)

	_, err = parseSizes("1,x")
	assert.Error(t, err)
	_, err = parseSizes("0")
	assert.Error(t, err)
	_, err = parseSizes(",")
	assert.Error(t, err)
}
