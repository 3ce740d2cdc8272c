package delta

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"

	"github.com/google/go-cmp/cmp"
)

type ValueKind int

const (
	// KindUnset marks a key for removal when the map is applied.
	KindUnset ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a single format value. The zero Value is the removal marker.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

func Unset() Value {
	return Value{kind: KindUnset}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsUnset() bool {
	return v.kind == KindUnset
}

func (v Value) Str() string {
	return v.str
}

func (v Value) Num() float64 {
	return v.num
}

func (v Value) Bool() bool {
	return v.b
}

// Equal is picked up by cmp.Equal, so AttributeMap comparisons stay structural.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "null"
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	converted, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = converted
	return nil
}

// ValueOf converts a decoded JSON scalar. nil maps to Unset.
func ValueOf(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Unset(), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case int:
		return Number(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	}
	return Value{}, fmt.Errorf("unsupported attribute value of type %T", raw)
}

// AttributeMap maps format names to values. An empty map is always nil.
type AttributeMap map[string]Value

func (a AttributeMap) Clone() AttributeMap {
	if len(a) == 0 {
		return nil
	}
	return maps.Clone(a)
}

func (a AttributeMap) Equal(other AttributeMap) bool {
	if len(a) == 0 && len(other) == 0 {
		return true
	}
	return cmp.Equal(map[string]Value(a), map[string]Value(other))
}

func (a AttributeMap) Get(key string) (Value, bool) {
	v, ok := a[key]
	return v, ok
}

// ComposeAttributes merges change over base. With keepNull the removal marker
// survives in the result, otherwise it drops the key.
func ComposeAttributes(base, change AttributeMap, keepNull bool) AttributeMap {
	var attributes = make(AttributeMap, len(base)+len(change))
	maps.Copy(attributes, base)
	for key, value := range change {
		if keepNull || !value.IsUnset() {
			attributes[key] = value
		} else {
			delete(attributes, key)
		}
	}
	if len(attributes) == 0 {
		return nil
	}
	return attributes
}

// InvertAttributes returns the map that restores base's values for every key
// that change touches.
func InvertAttributes(base, change AttributeMap) AttributeMap {
	var inverted = make(AttributeMap)
	for key, value := range change {
		baseValue, ok := base[key]
		if ok && baseValue.Equal(value) {
			continue
		}
		if ok {
			inverted[key] = baseValue
		} else {
			inverted[key] = Unset()
		}
	}
	if len(inverted) == 0 {
		return nil
	}
	return inverted
}
