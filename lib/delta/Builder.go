package delta

import (
	"fmt"
	"math"
	"slices"
)

// Builder assembles a delta op by op. Every append goes through Push, so the
// sequence is in canonical form after each call.
type Builder struct {
	ops []Op
}

func NewBuilder() *Builder {
	return &Builder{ops: make([]Op, 0)}
}

// Insert appends a text insert. Empty text is dropped.
func (b *Builder) Insert(text string, attributes AttributeMap) *Builder {
	if text == "" {
		return b
	}
	return b.Push(NewInsert(text, attributes))
}

func (b *Builder) InsertEmbed(embed Embed, attributes AttributeMap) *Builder {
	return b.Push(NewInsertEmbed(embed, attributes))
}

func (b *Builder) Delete(n int) *Builder {
	if n <= 0 {
		return b
	}
	return b.Push(NewDelete(n))
}

func (b *Builder) Retain(n int, attributes AttributeMap) *Builder {
	if n <= 0 {
		return b
	}
	return b.Push(NewRetain(n, attributes))
}

// Push appends op, merging it into the last op when both are text inserts,
// deletes or retains with equal attributes. Zero length and open ops are
// dropped.
func (b *Builder) Push(op Op) *Builder {
	if op.open || op.n == 0 {
		return b
	}
	var index = len(b.ops)
	if index == 0 {
		b.ops = append(b.ops, op)
		return b
	}

	var lastOp = &b.ops[index-1]
	switch {
	case lastOp.IsInsert() && op.IsInsert():
		if !lastOp.IsEmbed() && !op.IsEmbed() && lastOp.attributes.Equal(op.attributes) {
			lastOp.n = addLengths(lastOp.n, op.n)
			lastOp.text += op.text
			return b
		}
	case lastOp.IsDelete() && op.IsDelete():
		lastOp.n = addLengths(lastOp.n, op.n)
		return b
	case lastOp.IsRetain() && op.IsRetain():
		if lastOp.attributes.Equal(op.attributes) {
			lastOp.n = addLengths(lastOp.n, op.n)
			return b
		}
	}

	b.ops = append(b.ops, op)
	return b
}

// Size is the number of ops assembled so far.
func (b *Builder) Size() int {
	return len(b.ops)
}

// Build returns the assembled delta. The builder keeps its own copy and can
// be appended to afterwards without affecting the result.
func (b *Builder) Build() Delta {
	return Delta{ops: slices.Clone(b.ops)}
}

// addLengths panics when a merged op would no longer fit an int.
func addLengths(a, b int) int {
	if b > math.MaxInt-a {
		panic(fmt.Sprintf("delta: merged length %d + %d overflows", a, b))
	}
	return a + b
}
