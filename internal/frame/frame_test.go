package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsPendingOnce(t *testing.T) {
	l := NewLoop()
	calls := 0
	l.RequestFrame(func() { calls++ })

	require.Equal(t, 1, l.Advance())
	require.Equal(t, 0, l.Advance(), "second Advance")
	assert.Equal(t, 1, calls)
}

func TestLoopDefersRequestsMadeDuringAdvance(t *testing.T) {
	l := NewLoop()
	depth := 0
	var tick func()
	tick = func() {
		depth++
		l.RequestFrame(tick)
	}
	l.RequestFrame(tick)

	for i := 0; i < 3; i++ {
		l.Advance()
	}
	assert.Equal(t, 3, depth, "self-scheduling callback over 3 frames")
	assert.Equal(t, 1, l.Pending())
}

func TestLoopCancel(t *testing.T) {
	l := NewLoop()
	called := false
	id := l.RequestFrame(func() { called = true })
	l.CancelFrame(id)
	l.CancelFrame(id)
	l.CancelFrame(ID(999))

	assert.Equal(t, 0, l.Advance())
	assert.False(t, called, "cancelled callback ran")
}

func TestLoopCancelWithinBatch(t *testing.T) {
	l := NewLoop()
	var second ID
	secondRan := false
	l.RequestFrame(func() { l.CancelFrame(second) })
	second = l.RequestFrame(func() { secondRan = true })

	assert.Equal(t, 1, l.Advance())
	assert.False(t, secondRan, "callback cancelled by an earlier one in the same frame still ran")
}

func TestResizeNotifier(t *testing.T) {
	n := NewResizeNotifier()
	var got [][2]int
	unsub := n.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	require.True(t, n.Notify(800, 600), "first Notify should report a change")
	assert.False(t, n.Notify(800, 600), "same size should not report a change")
	n.Notify(1024, 768)

	require.Equal(t, [][2]int{{800, 600}, {1024, 768}}, got)

	unsub()
	unsub()
	n.Notify(10, 10)
	assert.Len(t, got, 2, "handler called after unsubscribe")

	w, h := n.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestResizeUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	n := NewResizeNotifier()
	a, b := 0, 0
	unsubA := n.OnResize(func(int, int) { a++ })
	n.OnResize(func(int, int) { b++ })

	unsubA()
	n.Notify(1, 1)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, n.Len())
}
