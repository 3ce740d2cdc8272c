package history

import (
	"testing"
	"time"

	"github.com/ether/delta-go/lib/delta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestManager(maxStack int) (*Manager, *fakeClock) {
	var clock = &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var m = NewManager(Options{MaxStack: maxStack, Delay: time.Second}, nil).WithClock(clock.now)
	return m, clock
}

func text(s string) delta.Delta {
	return delta.NewBuilder().Insert(s, nil).Build()
}

// apply records change against doc and returns the new document.
func apply(m *Manager, doc, change delta.Delta, selection *Selection) delta.Delta {
	m.Record(change, doc, selection)
	return doc.Compose(change)
}

func TestClassifyChange(t *testing.T) {
	assert.Equal(t, ChangeInsert, ClassifyChange(delta.NewBuilder().Retain(2, nil).Insert("a", nil).Build()))
	assert.Equal(t, ChangeDelete, ClassifyChange(delta.NewBuilder().Retain(2, nil).Delete(1).Build()))
	assert.Equal(t, ChangeFormat, ClassifyChange(delta.NewBuilder().Retain(2, delta.AttributeMap{"bold": delta.Bool(true)}).Build()))
	assert.Equal(t, ChangeOther, ClassifyChange(delta.NewBuilder().Retain(2, nil).Build()))
	assert.Equal(t, ChangeOther, ClassifyChange(delta.Delta{}))
}

func TestRecord_EmptyChangeIsIgnored(t *testing.T) {
	m, _ := newTestManager(10)

	m.Record(delta.Delta{}, text("abc"), nil)

	assert.False(t, m.CanUndo())
}

func TestUndoRedo(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("Hello")
	var change = delta.NewBuilder().Retain(5, nil).Insert(" World", nil).Build()

	doc = apply(m, doc, change, &Selection{Index: 5})
	require.Equal(t, "Hello World", doc.Text())
	clock.advance(2 * time.Second)

	undone, sel, err := m.Undo(doc, &Selection{Index: 11})
	require.NoError(t, err)
	assert.Equal(t, "Hello", undone.Text())
	assert.Equal(t, &Selection{Index: 5}, sel)
	assert.True(t, m.CanRedo())
	assert.False(t, m.CanUndo())

	redone, sel, err := m.Redo(undone, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", redone.Text())
	assert.Equal(t, &Selection{Index: 11}, sel)
	assert.True(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestUndo_Empty(t *testing.T) {
	m, _ := newTestManager(10)

	doc, sel, err := m.Undo(text("a"), nil)
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Nil(t, sel)
	assert.Equal(t, "a", doc.Text())

	_, _, err = m.Redo(text("a"), nil)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestRecord_MergesQuickChangesOfSameType(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("")

	doc = apply(m, doc, text("a"), &Selection{Index: 0})
	clock.advance(100 * time.Millisecond)
	doc = apply(m, doc, delta.NewBuilder().Retain(1, nil).Insert("b", nil).Build(), &Selection{Index: 1})
	clock.advance(100 * time.Millisecond)
	doc = apply(m, doc, delta.NewBuilder().Retain(2, nil).Insert("c", nil).Build(), &Selection{Index: 2})

	require.Equal(t, "abc", doc.Text())
	assert.Equal(t, 1, m.UndoCount())

	undone, sel, err := m.Undo(doc, nil)
	require.NoError(t, err)
	assert.True(t, undone.IsEmpty())
	assert.Equal(t, &Selection{Index: 0}, sel)
}

func TestRecord_DoesNotMergeAfterDelay(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("")

	doc = apply(m, doc, text("a"), nil)
	clock.advance(2 * time.Second)
	doc = apply(m, doc, delta.NewBuilder().Retain(1, nil).Insert("b", nil).Build(), nil)

	assert.Equal(t, 2, m.UndoCount())

	undone, _, err := m.Undo(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", undone.Text())
}

func TestRecord_DoesNotMergeDifferentTypes(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("abc")

	doc = apply(m, doc, delta.NewBuilder().Retain(3, nil).Insert("d", nil).Build(), nil)
	clock.advance(10 * time.Millisecond)
	doc = apply(m, doc, delta.NewBuilder().Retain(3, nil).Delete(1).Build(), nil)

	assert.Equal(t, 2, m.UndoCount())
	assert.Equal(t, "abc", doc.Text())
}

func TestRecord_MergesFormatting(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("abcd")
	var bold = delta.AttributeMap{"bold": delta.Bool(true)}

	doc = apply(m, doc, delta.NewBuilder().Retain(2, bold).Build(), nil)
	clock.advance(10 * time.Millisecond)
	doc = apply(m, doc, delta.NewBuilder().Retain(2, nil).Retain(2, bold).Build(), nil)
	require.Equal(t, 1, m.UndoCount())

	undone, _, err := m.Undo(doc, nil)
	require.NoError(t, err)
	assert.True(t, undone.Equal(text("abcd")), undone.String())
}

func TestRecord_OtherChangesNeverMerge(t *testing.T) {
	m, _ := newTestManager(10)
	var doc = text("abcd")
	var keep = delta.NewBuilder().Retain(2, nil).Build()

	doc = apply(m, doc, keep, nil)
	apply(m, doc, keep, nil)

	assert.Equal(t, 2, m.UndoCount())
}

func TestRecord_EvictsOldest(t *testing.T) {
	m, clock := newTestManager(3)
	var doc = text("")

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		doc = apply(m, doc, delta.NewBuilder().Retain(doc.Length(), nil).Insert(s, nil).Build(), nil)
		clock.advance(2 * time.Second)
	}
	assert.Equal(t, 3, m.UndoCount())

	for m.CanUndo() {
		var err error
		doc, _, err = m.Undo(doc, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, "ab", doc.Text())
}

func TestRecord_ClearsRedo(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = apply(m, text("a"), delta.NewBuilder().Retain(1, nil).Insert("b", nil).Build(), nil)
	clock.advance(2 * time.Second)

	doc, _, err := m.Undo(doc, nil)
	require.NoError(t, err)
	require.True(t, m.CanRedo())

	apply(m, doc, delta.NewBuilder().Retain(1, nil).Insert("c", nil).Build(), nil)
	assert.False(t, m.CanRedo())
}

func TestUndo_StartsNewStep(t *testing.T) {
	m, clock := newTestManager(10)
	var doc = text("")

	doc = apply(m, doc, text("a"), nil)
	clock.advance(2 * time.Second)
	doc = apply(m, doc, delta.NewBuilder().Retain(1, nil).Insert("b", nil).Build(), nil)
	doc, _, _ = m.Undo(doc, nil)
	clock.advance(10 * time.Millisecond)
	doc = apply(m, doc, delta.NewBuilder().Retain(1, nil).Insert("c", nil).Build(), nil)

	require.Equal(t, "ac", doc.Text())
	assert.Equal(t, 2, m.UndoCount())
}

func TestClear(t *testing.T) {
	m, _ := newTestManager(10)
	apply(m, text("a"), delta.NewBuilder().Delete(1).Build(), nil)

	m.Clear()

	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}
