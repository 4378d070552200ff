// File: core/listener/table_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/evq/api"
	"github.com/momentics/evq/fake"
)

func TestTable_FanOutInRegistrationOrder(t *testing.T) {
	tbl := NewTable(8)
	var order []int
	mk := func(id int) api.Listener {
		return &orderedListener{id: id, order: &order}
	}
	l1, l2, l3 := mk(1), mk(2), mk(3)
	require.True(t, tbl.AddListener(5, l1))
	require.True(t, tbl.AddListener(5, l2))
	require.True(t, tbl.AddListener(5, l3))

	handled := tbl.SendEvent(5, 42)
	assert.Equal(t, 3, handled)
	assert.Equal(t, []int{1, 2, 3}, order)
}

type orderedListener struct {
	id    int
	order *[]int
}

func (l *orderedListener) HandleEvent(code, param int) {
	*l.order = append(*l.order, l.id)
}

func TestTable_NonMatchingCodesDoNotFire(t *testing.T) {
	tbl := NewTable(8)
	l := fake.NewListener()
	require.True(t, tbl.AddListener(5, l))

	assert.Equal(t, 0, tbl.SendEvent(6, 0))
	assert.Equal(t, 0, l.Count())
}

func TestTable_DefaultFallback(t *testing.T) {
	tbl := NewTable(8)
	def := fake.NewListener()
	require.True(t, tbl.SetDefaultListener(def))

	handled := tbl.SendEvent(7, 99)
	assert.Equal(t, 1, handled)
	require.Equal(t, 1, def.Count())
	assert.Equal(t, api.Event{Code: 7, Param: 99}, def.Last())

	tbl.EnableDefaultListener(false)
	assert.Equal(t, 0, tbl.SendEvent(7, 99))
	assert.Equal(t, 1, def.Count())

	tbl.EnableDefaultListener(true)
	assert.Equal(t, 1, tbl.SendEvent(7, 1))
	assert.Equal(t, 2, def.Count())
}

func TestTable_DefaultNotInvokedWhenListenerMatched(t *testing.T) {
	tbl := NewTable(8)
	l := fake.NewListener()
	def := fake.NewListener()
	require.True(t, tbl.AddListener(5, l))
	require.True(t, tbl.SetDefaultListener(def))

	assert.Equal(t, 1, tbl.SendEvent(5, 0))
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, 0, def.Count())

	// An unmatched code still reaches the default.
	assert.Equal(t, 1, tbl.SendEvent(6, 0))
	assert.Equal(t, 1, def.Count())
}

func TestTable_SetDefaultListenerRejectsNil(t *testing.T) {
	tbl := NewTable(8)
	assert.False(t, tbl.SetDefaultListener(nil))
	assert.False(t, tbl.HasDefaultListener())
}

func TestTable_RemoveDefaultListener(t *testing.T) {
	tbl := NewTable(8)
	def := fake.NewListener()
	require.True(t, tbl.SetDefaultListener(def))
	tbl.RemoveDefaultListener()
	assert.False(t, tbl.HasDefaultListener())
	assert.Equal(t, 0, tbl.SendEvent(7, 0))
}

func TestTable_AddListenerRejectsNilAndFull(t *testing.T) {
	tbl := NewTable(2)
	assert.False(t, tbl.AddListener(1, nil))
	require.True(t, tbl.AddListener(1, fake.NewListener()))
	require.True(t, tbl.AddListener(2, fake.NewListener()))
	assert.True(t, tbl.IsFull())
	assert.False(t, tbl.AddListener(3, fake.NewListener()))
	assert.Equal(t, 2, tbl.NumListeners())
}

func TestTable_RemovalIdempotence(t *testing.T) {
	tbl := NewTable(8)
	registered := fake.NewListener()
	stranger := fake.NewListener()
	require.True(t, tbl.AddListener(5, registered))

	assert.False(t, tbl.RemoveListener(5, stranger))
	assert.False(t, tbl.RemoveListener(6, registered))
	assert.Equal(t, 1, tbl.NumListeners())

	assert.True(t, tbl.RemoveListener(5, registered))
	assert.Equal(t, 0, tbl.NumListeners())
	assert.False(t, tbl.RemoveListener(5, registered))
}

func TestTable_DuplicatesBothFireOnlyOneRemoved(t *testing.T) {
	tbl := NewTable(8)
	l := fake.NewListener()
	require.True(t, tbl.AddListener(5, l))
	require.True(t, tbl.AddListener(5, l))

	assert.Equal(t, 2, tbl.SendEvent(5, 0))
	assert.Equal(t, 2, l.Count())

	assert.True(t, tbl.RemoveListener(5, l))
	assert.Equal(t, 1, tbl.NumListeners())
	assert.Equal(t, 1, tbl.SendEvent(5, 0))
}

func TestTable_BulkRemoval(t *testing.T) {
	tbl := NewTable(8)
	l := fake.NewListener()
	other := fake.NewListener()
	require.True(t, tbl.AddListener(1, l))
	require.True(t, tbl.AddListener(2, l))
	require.True(t, tbl.AddListener(3, l))
	require.True(t, tbl.AddListener(2, other))

	assert.Equal(t, 3, tbl.RemoveListenerAll(l))
	assert.Equal(t, 1, tbl.NumListeners())
	for _, code := range []int{1, 3} {
		assert.Equal(t, 0, tbl.SendEvent(code, 0))
	}
	assert.Equal(t, 1, tbl.SendEvent(2, 0))
	assert.Equal(t, 0, tbl.RemoveListenerAll(l))
}

func TestTable_RemovalCompactsPreservingOrder(t *testing.T) {
	tbl := NewTable(8)
	var order []int
	a := &orderedListener{id: 1, order: &order}
	b := &orderedListener{id: 2, order: &order}
	c := &orderedListener{id: 3, order: &order}
	require.True(t, tbl.AddListener(5, a))
	require.True(t, tbl.AddListener(5, b))
	require.True(t, tbl.AddListener(5, c))

	require.True(t, tbl.RemoveListener(5, b))
	tbl.SendEvent(5, 0)
	assert.Equal(t, []int{1, 3}, order)
}

func TestTable_EnableDisable(t *testing.T) {
	tbl := NewTable(8)
	l := fake.NewListener()
	require.True(t, tbl.AddListener(5, l))
	assert.True(t, tbl.IsListenerEnabled(5, l))

	require.True(t, tbl.EnableListener(5, l, false))
	assert.False(t, tbl.IsListenerEnabled(5, l))
	assert.Equal(t, 0, tbl.SendEvent(5, 0))
	assert.Equal(t, 0, l.Count())

	require.True(t, tbl.EnableListener(5, l, true))
	assert.Equal(t, 1, tbl.SendEvent(5, 0))

	assert.False(t, tbl.EnableListener(6, l, true))
	assert.False(t, tbl.IsListenerEnabled(6, l))
	assert.False(t, tbl.IsListenerEnabled(5, nil))
}

// Mutating the table from inside a callback during a dispatch scan is
// refused: the mutators return false/0 and the table is unchanged after
// the scan completes.
func TestTable_ReentrantMutationRefused(t *testing.T) {
	tbl := NewTable(8)
	outer := fake.NewListener()
	late := fake.NewListener()

	var addResult, removeResult, enableResult, setDefaultResult bool
	var removeAllResult int
	reentrant := &funcListener{fn: func(code, param int) {
		addResult = tbl.AddListener(code, late)
		removeResult = tbl.RemoveListener(code, outer)
		removeAllResult = tbl.RemoveListenerAll(outer)
		enableResult = tbl.EnableListener(code, outer, false)
		setDefaultResult = tbl.SetDefaultListener(late)
	}}
	require.True(t, tbl.AddListener(5, reentrant))
	require.True(t, tbl.AddListener(5, outer))

	handled := tbl.SendEvent(5, 0)

	assert.Equal(t, 2, handled, "scan should still visit the outer listener")
	assert.False(t, addResult)
	assert.False(t, removeResult)
	assert.Zero(t, removeAllResult)
	assert.False(t, enableResult)
	assert.False(t, setDefaultResult)
	assert.Equal(t, 2, tbl.NumListeners())
	assert.False(t, tbl.HasDefaultListener())

	// After the scan the latch is released and mutation works again.
	assert.True(t, tbl.AddListener(5, late))
}

type funcListener struct {
	fn func(code, param int)
}

func (l *funcListener) HandleEvent(code, param int) { l.fn(code, param) }

func TestTable_QueueFromCallbackAllowed(t *testing.T) {
	// The latch refuses table mutation only; arbitrary work, including
	// queueing events elsewhere, is fine from a callback.
	tbl := NewTable(8)
	fired := 0
	l := &funcListener{fn: func(code, param int) { fired++ }}
	require.True(t, tbl.AddListener(5, l))
	assert.Equal(t, 1, tbl.SendEvent(5, 0))
	assert.Equal(t, 1, fired)
}

func TestTable_CapacityAndEmptiness(t *testing.T) {
	tbl := NewTable(3)
	assert.Equal(t, 3, tbl.Cap())
	assert.True(t, tbl.IsEmpty())
	assert.False(t, tbl.IsFull())
	tbl.AddListener(1, fake.NewListener())
	assert.False(t, tbl.IsEmpty())
}
