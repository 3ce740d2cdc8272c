// Package delta implements a rich-text document delta: an ordered sequence of
// insert, delete and retain ops with optional format attributes, plus the
// algebra over it (compose, invert, slice).
//
// A Delta is an immutable value. Deltas are authored with a Builder and every
// function that produces a Delta allocates a fresh op slice. Attribute maps
// held by ops are never modified once an op is constructed, so ops may share
// them freely.
//
// Positions are 0-based rune offsets. Embeds occupy one position.
package delta

import (
	"math"
	"slices"
	"strings"
)

// ObjectReplacement stands in for an embed in Text.
const ObjectReplacement = '\uFFFC'

type Delta struct {
	ops []Op
}

// New builds a canonical delta from ops.
func New(ops ...Op) Delta {
	var b = NewBuilder()
	for _, op := range ops {
		b.Push(op)
	}
	return b.Build()
}

func (d Delta) Ops() []Op {
	return slices.Clone(d.ops)
}

// Size is the number of ops.
func (d Delta) Size() int {
	return len(d.ops)
}

func (d Delta) IsEmpty() bool {
	return len(d.ops) == 0
}

// Length is the sum of all op lengths.
func (d Delta) Length() int {
	var length = 0
	for _, op := range d.ops {
		length += op.Len()
	}
	return length
}

// BaseLength is the document length the delta consumes: retains plus deletes.
func (d Delta) BaseLength() int {
	var length = 0
	for _, op := range d.ops {
		if !op.IsInsert() {
			length += op.Len()
		}
	}
	return length
}

// ChangeLength is how much the delta grows or shrinks a document.
func (d Delta) ChangeLength() int {
	var length = 0
	for _, op := range d.ops {
		switch op.Kind() {
		case KindInsert:
			length += op.Len()
		case KindDelete:
			length -= op.Len()
		}
	}
	return length
}

// IsDocument reports whether the delta only inserts, i.e. describes a
// document rather than a change.
func (d Delta) IsDocument() bool {
	for _, op := range d.ops {
		if !op.IsInsert() {
			return false
		}
	}
	return true
}

// Text concatenates inserted text. Embeds become ObjectReplacement so rune
// offsets into the result match delta positions.
func (d Delta) Text() string {
	var sb strings.Builder
	for _, op := range d.ops {
		if op.IsEmbed() {
			sb.WriteRune(ObjectReplacement)
		} else if op.IsInsert() {
			sb.WriteString(op.text)
		}
	}
	return sb.String()
}

func (d Delta) Equal(other Delta) bool {
	return slices.EqualFunc(d.ops, other.ops, Op.Equal)
}

// Chop drops a trailing retain without attributes, which changes nothing.
func (d Delta) Chop() Delta {
	var ops = slices.Clone(d.ops)
	if n := len(ops); n > 0 && ops[n-1].IsRetain() && !ops[n-1].HasAttributes() {
		ops = ops[:n-1]
	}
	return Delta{ops: ops}
}

func (d Delta) String() string {
	var parts = make([]string, len(d.ops))
	for i, op := range d.ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Compose returns the delta equivalent to applying d and then other.
func (d Delta) Compose(other Delta) Delta {
	var thisIter = NewOpIterator(d.ops)
	var otherIter = NewOpIterator(other.ops)
	var result = NewBuilder()

	for thisIter.HasNext() || otherIter.HasNext() {
		if otherIter.PeekKind() == KindInsert {
			result.Push(otherIter.Next())
			continue
		}
		if thisIter.PeekKind() == KindDelete {
			result.Push(thisIter.Next())
			continue
		}

		var length = minPeekLength(thisIter, otherIter)
		var thisOp = thisIter.NextN(length)
		var otherOp = otherIter.NextN(length)

		switch otherOp.Kind() {
		case KindRetain:
			// retain over retain stays an instruction, so removal markers must
			// survive; retain over insert yields final attributes
			var isRetain = thisOp.IsRetain()
			var attributes = ComposeAttributes(thisOp.attributes, otherOp.attributes, isRetain)
			var newOp = thisOp
			if isRetain {
				newOp = Op{kind: KindRetain, n: length}
			}
			result.Push(newOp.withAttributes(attributes))
		case KindDelete:
			// an insert deleted right away cancels out
			if thisOp.IsRetain() {
				result.Push(NewDelete(length))
			}
		}
	}
	return result.Build()
}

func minPeekLength(a, b *OpIterator) int {
	var aLen, aOk = a.PeekLength()
	var bLen, bOk = b.PeekLength()
	switch {
	case aOk && bOk:
		return min(aLen, bLen)
	case aOk:
		return aLen
	}
	return bLen
}

// Slice returns the part of d covering [start, end).
func (d Delta) Slice(start, end int) Delta {
	var result = NewBuilder()
	var iter = NewOpIterator(d.ops)
	var index = 0

	for index < start && iter.HasNext() {
		var nextLength, _ = iter.PeekLength()
		if index+nextLength <= start {
			index += nextLength
			iter.Next()
		} else {
			var offset = start - index
			iter.NextN(offset)
			index += offset
		}
	}

	for index < end && iter.HasNext() {
		var nextLength, _ = iter.PeekLength()
		var take = min(nextLength, end-index)
		result.Push(iter.NextN(take))
		index += take
	}
	return result.Build()
}

// SliceFrom returns everything from start to the end of d.
func (d Delta) SliceFrom(start int) Delta {
	return d.Slice(start, math.MaxInt)
}

// Invert returns the delta that takes the result of applying d to base back
// to base. base must be a document.
func (d Delta) Invert(base Delta) Delta {
	var inverted = NewBuilder()
	var baseIndex = 0

	for _, op := range d.ops {
		switch {
		case op.IsInsert():
			inverted.Delete(op.Len())
		case op.IsRetain() && op.HasAttributes():
			for _, baseOp := range base.Slice(baseIndex, baseIndex+op.n).ops {
				inverted.Retain(baseOp.Len(), InvertAttributes(baseOp.attributes, op.attributes))
			}
			baseIndex += op.n
		case op.IsRetain():
			inverted.Retain(op.n, nil)
			baseIndex += op.n
		case op.IsDelete():
			for _, baseOp := range base.Slice(baseIndex, baseIndex+op.n).ops {
				if baseOp.IsInsert() {
					inverted.Push(baseOp)
				}
			}
			baseIndex += op.n
		}
	}
	return inverted.Build()
}
