package document

import (
	"sync"

	"github.com/ether/delta-go/lib/delta"
	"github.com/ether/delta-go/lib/history"
)

type Document struct {
	Id      string
	mu      sync.Mutex
	content delta.Delta
	history *history.Manager
}

// Snapshot is a copy of a document's state taken under its lock.
type Snapshot struct {
	Id        string             `json:"id"`
	Content   delta.Delta        `json:"content"`
	Length    int                `json:"length"`
	Text      string             `json:"text"`
	CanUndo   bool               `json:"canUndo"`
	CanRedo   bool               `json:"canRedo"`
	Selection *history.Selection `json:"selection,omitempty"`
}

func (d *Document) snapshot() *Snapshot {
	return &Snapshot{
		Id:      d.Id,
		Content: d.content,
		Length:  d.content.Length(),
		Text:    d.content.Text(),
		CanUndo: d.history.CanUndo(),
		CanRedo: d.history.CanRedo(),
	}
}
