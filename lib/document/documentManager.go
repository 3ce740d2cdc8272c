package document

import (
	"math"
	"slices"
	"sync"

	"github.com/ether/delta-go/lib/delta"
	"github.com/ether/delta-go/lib/exception"
	"github.com/ether/delta-go/lib/history"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	History history.Options
	// MaxLength bounds the length of every document, 0 disables the check.
	MaxLength int
}

type Manager struct {
	mu        sync.RWMutex
	documents map[string]*Document
	options   Options
	logger    *zap.SugaredLogger
}

func NewManager(options Options, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Manager{
		documents: make(map[string]*Document),
		options:   options,
		logger:    logger,
	}
}

// Create stores a new document. initial may only contain inserts.
func (m *Manager) Create(initial delta.Delta) (*Snapshot, error) {
	for i, op := range initial.Ops() {
		if !op.IsInsert() {
			return nil, exception.NewInvalidDeltaError(i, "document content may only contain inserts", nil)
		}
	}
	if err := m.checkLength(initial); err != nil {
		return nil, err
	}

	var doc = &Document{
		Id:      uuid.NewString(),
		content: initial,
		history: history.NewManager(m.options.History, m.logger),
	}

	m.mu.Lock()
	m.documents[doc.Id] = doc
	m.mu.Unlock()

	m.logger.Infow("created document", "id", doc.Id, "length", initial.Length())
	return doc.snapshot(), nil
}

func (m *Manager) lookup(id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var doc, ok = m.documents[id]
	if !ok {
		return nil, exception.NewDocumentNotFoundError(id)
	}
	return doc, nil
}

func (m *Manager) Get(id string) (*Snapshot, error) {
	doc, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.snapshot(), nil
}

// List returns the ids of all documents in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	var ids = make([]string, 0, len(m.documents))
	for id := range m.documents {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.documents[id]; !ok {
		return exception.NewDocumentNotFoundError(id)
	}
	delete(m.documents, id)
	m.logger.Infow("removed document", "id", id)
	return nil
}

// Apply composes change onto the document and records its inverse for undo.
// selection is the caret before the change.
func (m *Manager) Apply(id string, change delta.Delta, selection *history.Selection) (*Snapshot, error) {
	doc, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()

	if consumed, fits := baseLengthWithin(change, doc.content.Length()); !fits {
		return nil, exception.NewChangeOutOfRangeError(doc.content.Length(), consumed)
	}
	var next = doc.content.Compose(change)
	if err := m.checkLength(next); err != nil {
		return nil, err
	}

	doc.history.Record(change, doc.content, selection)
	doc.content = next
	m.logger.Debugw("applied change", "id", id, "ops", change.Size(), "length", next.Length())
	return doc.snapshot(), nil
}

func (m *Manager) Undo(id string, current *history.Selection) (*Snapshot, error) {
	return m.step(id, current, (*history.Manager).Undo)
}

func (m *Manager) Redo(id string, current *history.Selection) (*Snapshot, error) {
	return m.step(id, current, (*history.Manager).Redo)
}

func (m *Manager) step(
	id string,
	current *history.Selection,
	move func(*history.Manager, delta.Delta, *history.Selection) (delta.Delta, *history.Selection, error),
) (*Snapshot, error) {
	doc, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()

	content, selection, err := move(doc.history, doc.content, current)
	if err != nil {
		return nil, err
	}
	doc.content = content

	var snapshot = doc.snapshot()
	snapshot.Selection = selection
	return snapshot, nil
}

func (m *Manager) checkLength(d delta.Delta) error {
	if m.options.MaxLength > 0 && d.Length() > m.options.MaxLength {
		return exception.NewDocumentTooLargeError(d.Length(), m.options.MaxLength)
	}
	return nil
}

// baseLengthWithin sums the retains and deletes of change, stopping as soon
// as the sum passes limit so that huge lengths cannot wrap around.
func baseLengthWithin(change delta.Delta, limit int) (int, bool) {
	var consumed = 0
	for _, op := range change.Ops() {
		if op.IsInsert() {
			continue
		}
		if op.Len() > limit-consumed {
			return consumed + min(op.Len(), math.MaxInt-consumed), false
		}
		consumed += op.Len()
	}
	return consumed, true
}
