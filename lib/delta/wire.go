package delta

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"github.com/ether/delta-go/lib/exception"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// wireOp is the JSON shape of an op:
// {"insert": "text" | {...}, "delete": n, "retain": n, "attributes": {...}}
type wireOp struct {
	Insert     json.RawMessage  `json:"insert,omitempty"`
	Delete     *int             `json:"delete,omitempty" validate:"omitnil,gt=0"`
	Retain     *int             `json:"retain,omitempty" validate:"omitnil,gt=0"`
	Attributes map[string]Value `json:"attributes,omitempty"`
}

type wireOut struct {
	Insert     any          `json:"insert,omitempty"`
	Delete     int          `json:"delete,omitempty"`
	Retain     int          `json:"retain,omitempty"`
	Attributes AttributeMap `json:"attributes,omitempty"`
}

type wireDelta struct {
	Ops []json.RawMessage `json:"ops"`
}

func (op Op) MarshalJSON() ([]byte, error) {
	var out = wireOut{Attributes: op.attributes}
	switch {
	case op.open:
		return nil, errors.New("delta: an open retain has no wire form")
	case op.IsEmbed():
		out.Insert = map[string]any(op.embed)
	case op.IsInsert():
		out.Insert = op.text
	case op.IsDelete():
		out.Delete = op.n
	case op.IsRetain():
		out.Retain = op.n
	default:
		return nil, errors.New("delta: cannot encode an op without kind")
	}
	return json.Marshal(out)
}

func (op *Op) UnmarshalJSON(data []byte) error {
	decoded, err := decodeOp(0, data)
	if err != nil {
		return err
	}
	*op = decoded
	return nil
}

func decodeOp(index int, data []byte) (Op, error) {
	var raw wireOp
	if err := json.Unmarshal(data, &raw); err != nil {
		return Op{}, exception.NewInvalidDeltaError(index, "malformed op", err)
	}
	if err := validate.Struct(raw); err != nil {
		return Op{}, exception.NewInvalidDeltaError(index, "length must be positive", err)
	}

	var hasInsert = len(raw.Insert) > 0 && !bytes.Equal(bytes.TrimSpace(raw.Insert), []byte("null"))
	var populated = 0
	for _, present := range []bool{hasInsert, raw.Delete != nil, raw.Retain != nil} {
		if present {
			populated++
		}
	}
	if populated != 1 {
		return Op{}, exception.NewInvalidDeltaError(index, "exactly one of insert, delete or retain must be set", nil)
	}
	for key := range raw.Attributes {
		if key == "" {
			return Op{}, exception.NewInvalidDeltaError(index, "attribute name must not be empty", nil)
		}
	}
	var attributes = AttributeMap(raw.Attributes)

	switch {
	case raw.Delete != nil:
		if len(attributes) > 0 {
			return Op{}, exception.NewInvalidDeltaError(index, "delete cannot carry attributes", nil)
		}
		return NewDelete(*raw.Delete), nil
	case raw.Retain != nil:
		return NewRetain(*raw.Retain, attributes), nil
	}

	var text string
	if err := json.Unmarshal(raw.Insert, &text); err == nil {
		return NewInsert(text, attributes), nil
	}
	var embed Embed
	if err := json.Unmarshal(raw.Insert, &embed); err != nil {
		return Op{}, exception.NewInvalidDeltaError(index, "insert must be a string or an object", err)
	}
	if len(embed) == 0 {
		return Op{}, exception.NewInvalidDeltaError(index, "embed must not be empty", nil)
	}
	return NewInsertEmbed(embed, attributes), nil
}

func (d Delta) MarshalJSON() ([]byte, error) {
	var ops = d.ops
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(struct {
		Ops []Op `json:"ops"`
	}{Ops: ops})
}

// UnmarshalJSON accepts {"ops": [...]} or a bare op array and normalizes the
// result.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var wire wireDelta
	var trimmed = bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &wire.Ops); err != nil {
			return exception.NewInvalidDeltaError(0, "malformed op list", err)
		}
	} else if err := json.Unmarshal(trimmed, &wire); err != nil {
		return exception.NewInvalidDeltaError(0, "malformed delta", err)
	}

	var b = NewBuilder()
	var total = 0
	for i, rawOp := range wire.Ops {
		op, err := decodeOp(i, rawOp)
		if err != nil {
			return err
		}
		if op.n > math.MaxInt-total {
			return exception.NewInvalidDeltaError(i, "total op length overflows", nil)
		}
		total += op.n
		b.Push(op)
	}
	*d = b.Build()
	return nil
}

// Parse decodes a JSON delta.
func Parse(data []byte) (Delta, error) {
	var d Delta
	if err := json.Unmarshal(data, &d); err != nil {
		return Delta{}, err
	}
	return d, nil
}
