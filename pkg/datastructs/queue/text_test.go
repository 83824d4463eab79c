package queue

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sameBacking reports whether a and b start at the same address.
func sameBacking(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// =============================================================================
// Type: Text
// =============================================================================

func TestText_Clone(t *testing.T) {
	tests := []struct {
		name string
		in   Text
	}{
		{"nil", nil},
		{"empty", Text{}},
		{"ascii", Text("Hello")},
		{"binary", Text{0, 1, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.in.Clone()
			require.NotNil(t, out)
			assert.Equal(t, tt.in.Len(), out.Len())
			assert.Equal(t, tt.in.String(), out.String())
			assert.False(t, sameBacking(tt.in, out))
		})
	}
}

// =============================================================================
// Method: Enqueue() / Dequeue()
// =============================================================================

func TestTextQueue_Scenario(t *testing.T) {
	hello, world := Text("Hello"), Text("World")

	q := NewTextQueue().Push(hello).Push(world)
	require.Equal(t, 2, q.Size())

	got1, ok := q.Dequeue()
	require.True(t, ok)
	got2, ok := q.Dequeue()
	require.True(t, ok)

	assert.Equal(t, "Hello", got1.String())
	assert.Equal(t, "World", got2.String())
	assert.False(t, sameBacking(got1, hello))
	assert.False(t, sameBacking(got2, world))
	assert.Equal(t, 0, q.Size())

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestTextQueue_ByteForByte(t *testing.T) {
	tests := []struct {
		name string
		in   Text
	}{
		{"empty", Text{}},
		{"embedded_nul", Text("ab\x00cd")},
		{"utf8", Text("xin chào")},
		{"pool_bucket_edge", Text(make([]byte, 64))},
		{"above_bucket_edge", Text(make([]byte, 65))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewTextQueue()
			require.NoError(t, q.Enqueue(tt.in))
			out, ok := q.Dequeue()
			require.True(t, ok)
			assert.Equal(t, tt.in.Len(), out.Len())
			assert.Equal(t, []byte(tt.in), []byte(out))
		})
	}
}

func TestTextQueue_CallerInputNotShared(t *testing.T) {
	in := Text("Hello")
	q := NewTextQueue()
	require.NoError(t, q.Enqueue(in))
	assert.False(t, sameBacking(q.c.head.value, in))

	in[0] = 'J'
	out, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "Hello", out.String())
}

func TestTextQueue_ResultNotShared(t *testing.T) {
	q := NewTextQueue()
	require.NoError(t, q.EnqueueString("Hello"))
	internal := q.c.head.value

	out, ok := q.Dequeue()
	require.True(t, ok)
	assert.False(t, sameBacking(out, internal))

	// Scribble on the copy, then run a separate "Hello" through the queue.
	// Its internal buffer may come back from the pool; the result must not care.
	for i := range out {
		out[i] = '#'
	}
	require.NoError(t, q.EnqueueString("Hello"))
	again, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "Hello", again.String())
	assert.Equal(t, "#####", out.String())
}

func TestTextQueue_EnqueueStringCopies(t *testing.T) {
	buf := []byte("mutable")
	q := NewTextQueue().PushString(string(buf))
	buf[0] = 'M'

	out, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "mutable", out.String())
}

// =============================================================================
// Method: Reset()
// =============================================================================

func TestTextQueue_Reset(t *testing.T) {
	q := NewTextQueue().PushString("a").PushString("b").PushString("c")
	q.Reset()

	assert.Equal(t, 0, q.Size())
	assert.True(t, q.IsEmpty())
	checkChain(t, &q.c)

	q.PushString("d")
	out, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "d", out.String())
}
