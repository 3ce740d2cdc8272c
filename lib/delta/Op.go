package delta

import (
	"fmt"
	"maps"
	"strings"

	"github.com/ether/delta-go/lib/utils"
	"github.com/google/go-cmp/cmp"
)

type OpKind int

const (
	KindUnknown OpKind = iota
	KindInsert
	KindDelete
	KindRetain
)

func (k OpKind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindRetain:
		return "retain"
	}
	return "unknown"
}

// Embed is an opaque inserted object such as {"image": "cat.png"}. It always
// occupies one position.
type Embed map[string]any

func (e Embed) Equal(other Embed) bool {
	return cmp.Equal(map[string]any(e), map[string]any(other))
}

// Op is one of insert, delete or retain. Use the New* constructors; the kind
// decides which payload is meaningful, so an op can never carry two.
type Op struct {
	kind       OpKind
	text       string
	embed      Embed
	n          int
	open       bool
	attributes AttributeMap
}

func NewInsert(text string, attributes AttributeMap) Op {
	return Op{
		kind:       KindInsert,
		text:       text,
		n:          utils.RuneCount(text),
		attributes: attributes.Clone(),
	}
}

func NewInsertEmbed(embed Embed, attributes AttributeMap) Op {
	if len(embed) == 0 {
		panic("delta: embed insert without payload")
	}
	return Op{
		kind:       KindInsert,
		embed:      maps.Clone(embed),
		n:          1,
		attributes: attributes.Clone(),
	}
}

func NewDelete(n int) Op {
	if n < 0 {
		panic(fmt.Sprintf("delta: negative delete length %d", n))
	}
	return Op{kind: KindDelete, n: n}
}

func NewRetain(n int, attributes AttributeMap) Op {
	if n < 0 {
		panic(fmt.Sprintf("delta: negative retain length %d", n))
	}
	return Op{kind: KindRetain, n: n, attributes: attributes.Clone()}
}

// openRetain is what an exhausted iterator yields: keep everything that is left.
func openRetain() Op {
	return Op{kind: KindRetain, open: true}
}

func (op Op) Kind() OpKind {
	return op.kind
}

func (op Op) IsInsert() bool {
	return op.kind == KindInsert
}

func (op Op) IsDelete() bool {
	return op.kind == KindDelete
}

func (op Op) IsRetain() bool {
	return op.kind == KindRetain
}

// IsOpen reports whether op is the unbounded retain returned past the end of
// a sequence. Its Len is 0.
func (op Op) IsOpen() bool {
	return op.open
}

func (op Op) IsEmbed() bool {
	return op.kind == KindInsert && op.embed != nil
}

// Len is the rune count of a text insert, 1 for an embed and the length of a
// delete or retain.
func (op Op) Len() int {
	return op.n
}

func (op Op) Text() string {
	return op.text
}

func (op Op) Embed() Embed {
	return maps.Clone(op.embed)
}

func (op Op) Attributes() AttributeMap {
	return op.attributes.Clone()
}

func (op Op) HasAttributes() bool {
	return len(op.attributes) > 0
}

func (op Op) Equal(other Op) bool {
	if op.kind != other.kind || op.n != other.n || op.open != other.open {
		return false
	}
	if op.text != other.text || !op.embed.Equal(other.embed) {
		return false
	}
	return op.attributes.Equal(other.attributes)
}

func (op Op) withAttributes(attributes AttributeMap) Op {
	op.attributes = attributes
	return op
}

func (op Op) String() string {
	var sb strings.Builder
	switch {
	case op.IsEmbed():
		fmt.Fprintf(&sb, "insert(%v)", map[string]any(op.embed))
	case op.kind == KindInsert:
		fmt.Fprintf(&sb, "insert(%q)", op.text)
	case op.open:
		sb.WriteString("retain(*)")
	default:
		fmt.Fprintf(&sb, "%s(%d)", op.kind, op.n)
	}
	if len(op.attributes) > 0 {
		fmt.Fprintf(&sb, "%v", map[string]Value(op.attributes))
	}
	return sb.String()
}
