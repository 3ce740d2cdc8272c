package delta

import "github.com/ether/delta-go/lib/utils"

// OpIterator walks an op sequence and hands out pieces of arbitrary length,
// splitting ops where needed. It never modifies the sequence.
type OpIterator struct {
	ops    []Op
	index  int
	offset int
}

func NewOpIterator(ops []Op) *OpIterator {
	return &OpIterator{ops: ops}
}

func (it *OpIterator) HasNext() bool {
	return it.index < len(it.ops)
}

// PeekLength returns what is left of the current op. ok is false once the
// iterator is exhausted, which callers treat as an unbounded retain.
func (it *OpIterator) PeekLength() (n int, ok bool) {
	if !it.HasNext() {
		return 0, false
	}
	return it.ops[it.index].Len() - it.offset, true
}

func (it *OpIterator) PeekKind() OpKind {
	if !it.HasNext() {
		return KindUnknown
	}
	return it.ops[it.index].Kind()
}

// Next returns the rest of the current op.
func (it *OpIterator) Next() Op {
	if !it.HasNext() {
		return openRetain()
	}
	remaining, _ := it.PeekLength()
	return it.NextN(remaining)
}

// NextN returns at most n units of the current op, keeping its attributes.
// Past the end it returns Retain(n). A non-positive n consumes nothing and
// yields a zero-length op.
func (it *OpIterator) NextN(n int) Op {
	n = max(n, 0)
	if !it.HasNext() {
		return NewRetain(n, nil)
	}
	var nextOp = it.ops[it.index]
	if n == 0 {
		return Op{kind: nextOp.kind}
	}
	var offset = it.offset
	var opLength = nextOp.Len()

	if n >= opLength-offset {
		n = opLength - offset
	}

	var retOp Op
	switch {
	case nextOp.IsEmbed():
		retOp = nextOp
	case nextOp.IsInsert():
		if offset == 0 && n == opLength {
			retOp = nextOp
		} else {
			var text = utils.RuneSlice(nextOp.text, offset, offset+n)
			retOp = Op{kind: KindInsert, text: text, n: n}
		}
	default:
		retOp = Op{kind: nextOp.kind, n: n}
	}
	retOp = retOp.withAttributes(nextOp.attributes)

	it.offset += n
	if it.offset >= opLength {
		it.index++
		it.offset = 0
	}
	return retOp
}
