package queue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumming_Scenario(t *testing.T) {
	q := NewSumming[int]()
	q.Push(10).Push(20).Push(30)
	assert.Equal(t, 60, q.Sum())

	for _, want := range []int{10, 20, 30} {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, 0, q.Sum())

	q.Push(40).Push(50)
	assert.Equal(t, 90, q.Sum())
}

func TestSumming_Sum(t *testing.T) {
	tests := []struct {
		name  string
		items []int64
		want  int64
	}{
		{"empty", nil, 0},
		{"single", []int64{7}, 7},
		{"mixed_signs", []int64{5, -3, 10, -12}, 0},
		{"large", []int64{math.MaxInt32, math.MaxInt32}, 2 * math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewSumming[int64]()
			for _, v := range tt.items {
				q.Push(v)
			}
			assert.Equal(t, tt.want, q.Sum())
			// Sum is read-only.
			assert.Equal(t, len(tt.items), q.Size())
			assert.Equal(t, tt.want, q.Sum())
		})
	}
}

func TestSumming_TracksLiveContents(t *testing.T) {
	q := NewSumming[int]().Push(1).Push(2).Push(3)
	assert.Equal(t, 6, q.Sum())

	_, _ = q.Dequeue()
	assert.Equal(t, 5, q.Sum())

	q.Push(100)
	assert.Equal(t, 105, q.Sum())

	q.Reset()
	assert.Equal(t, 0, q.Sum())
}

func TestSumming_Float(t *testing.T) {
	q := NewSumming[float64]().Push(0.5).Push(1.25).Push(-0.75)
	assert.InDelta(t, 1.0, q.Sum(), 1e-12)
}

func TestSumming_IntegerWraps(t *testing.T) {
	q := NewSumming[int8]().Push(100).Push(100)
	assert.Equal(t, int8(-56), q.Sum())
}
