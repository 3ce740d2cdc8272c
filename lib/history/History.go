// Package history keeps undo and redo stacks of deltas for one document.
//
// Every recorded change is stored as its inverse against the document it was
// applied to. Changes of the same type that arrive within Options.Delay of
// each other are merged into one undo step. A Manager is not safe for
// concurrent use; callers serialize access per document.
package history

import (
	"errors"
	"time"

	"github.com/ether/delta-go/lib/delta"
	"go.uber.org/zap"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

const (
	DefaultMaxStack = 100
	DefaultDelay    = time.Second
)

// Selection is a caret position or range in document offsets.
type Selection struct {
	Index  int `json:"index" validate:"gte=0"`
	Length int `json:"length" validate:"gte=0"`
}

type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeDelete ChangeType = "delete"
	ChangeFormat ChangeType = "format"
	ChangeOther  ChangeType = "other"
)

// ClassifyChange looks at the last op of a change.
func ClassifyChange(change delta.Delta) ChangeType {
	var ops = change.Ops()
	if len(ops) == 0 {
		return ChangeOther
	}
	var op = ops[len(ops)-1]
	switch {
	case op.IsInsert():
		return ChangeInsert
	case op.IsDelete():
		return ChangeDelete
	case op.HasAttributes():
		return ChangeFormat
	}
	return ChangeOther
}

type Options struct {
	MaxStack int
	Delay    time.Duration
}

type Item struct {
	Delta     delta.Delta
	Selection *Selection
}

type lastRecord struct {
	time       time.Time
	changeType ChangeType
}

type Manager struct {
	undoStack []Item
	redoStack []Item
	last      lastRecord
	options   Options
	now       func() time.Time
	logger    *zap.SugaredLogger
}

func NewManager(options Options, logger *zap.SugaredLogger) *Manager {
	if options.MaxStack <= 0 {
		options.MaxStack = DefaultMaxStack
	}
	if options.Delay < 0 {
		options.Delay = 0
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Manager{
		undoStack: make([]Item, 0),
		redoStack: make([]Item, 0),
		last:      lastRecord{changeType: ChangeOther},
		options:   options,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock replaces the time source, mostly for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Record stores the inverse of change against oldDoc. selection is the caret
// to restore when the step is undone.
func (m *Manager) Record(change, oldDoc delta.Delta, selection *Selection) {
	if change.IsEmpty() {
		return
	}
	m.redoStack = m.redoStack[:0]

	var undo = change.Invert(oldDoc)
	var now = m.now()
	var changeType = ClassifyChange(change)

	if len(m.undoStack) > 0 &&
		now.Sub(m.last.time) < m.options.Delay &&
		changeType == m.last.changeType &&
		changeType != ChangeOther {
		var top = &m.undoStack[len(m.undoStack)-1]
		top.Delta = undo.Compose(top.Delta)
		m.logger.Debugw("merged change into last undo step", "type", changeType, "depth", len(m.undoStack))
	} else {
		m.undoStack = append(m.undoStack, Item{Delta: undo, Selection: copySelection(selection)})
		if len(m.undoStack) > m.options.MaxStack {
			var excess = len(m.undoStack) - m.options.MaxStack
			m.undoStack = m.undoStack[excess:]
		}
		m.logger.Debugw("recorded undo step", "type", changeType, "depth", len(m.undoStack))
	}

	m.last = lastRecord{time: now, changeType: changeType}
}

// Undo reverts the latest step on doc. current is the caret at the time of
// the call and is restored by a later Redo.
func (m *Manager) Undo(doc delta.Delta, current *Selection) (delta.Delta, *Selection, error) {
	if len(m.undoStack) == 0 {
		return doc, nil, ErrNothingToUndo
	}
	var item = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	m.redoStack = append(m.redoStack, Item{Delta: item.Delta.Invert(doc), Selection: copySelection(current)})
	m.Cutoff()
	m.logger.Debugw("undo", "remaining", len(m.undoStack))
	return doc.Compose(item.Delta), copySelection(item.Selection), nil
}

func (m *Manager) Redo(doc delta.Delta, current *Selection) (delta.Delta, *Selection, error) {
	if len(m.redoStack) == 0 {
		return doc, nil, ErrNothingToRedo
	}
	var item = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	m.undoStack = append(m.undoStack, Item{Delta: item.Delta.Invert(doc), Selection: copySelection(current)})
	m.Cutoff()
	m.logger.Debugw("redo", "remaining", len(m.redoStack))
	return doc.Compose(item.Delta), copySelection(item.Selection), nil
}

// Cutoff makes the next Record start a new undo step.
func (m *Manager) Cutoff() {
	m.last = lastRecord{changeType: ChangeOther}
}

func (m *Manager) Clear() {
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
	m.Cutoff()
}

func (m *Manager) CanUndo() bool {
	return len(m.undoStack) > 0
}

func (m *Manager) CanRedo() bool {
	return len(m.redoStack) > 0
}

func (m *Manager) UndoCount() int {
	return len(m.undoStack)
}

func (m *Manager) RedoCount() int {
	return len(m.redoStack)
}

func copySelection(selection *Selection) *Selection {
	if selection == nil {
		return nil
	}
	var c = *selection
	return &c
}
