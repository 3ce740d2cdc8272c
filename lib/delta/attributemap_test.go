package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeAttributes_Merge(t *testing.T) {
	var a = AttributeMap{"bold": Bool(true)}
	var b = AttributeMap{"color": String("red")}

	var got = ComposeAttributes(a, b, false)

	assert.True(t, got.Equal(AttributeMap{"bold": Bool(true), "color": String("red")}))
}

func TestComposeAttributes_NewValueWins(t *testing.T) {
	var got = ComposeAttributes(AttributeMap{"color": String("blue")}, AttributeMap{"color": String("red")}, false)

	assert.True(t, got.Equal(AttributeMap{"color": String("red")}))
}

func TestComposeAttributes_UnsetRemovesKey(t *testing.T) {
	var a = AttributeMap{"bold": Bool(true), "color": String("red")}

	var got = ComposeAttributes(a, AttributeMap{"bold": Unset()}, false)

	assert.True(t, got.Equal(AttributeMap{"color": String("red")}))
}

func TestComposeAttributes_KeepNull(t *testing.T) {
	var got = ComposeAttributes(AttributeMap{"bold": Bool(true)}, AttributeMap{"bold": Unset()}, true)

	v, ok := got.Get("bold")
	assert.True(t, ok)
	assert.True(t, v.IsUnset())
}

func TestComposeAttributes_EmptyIsNil(t *testing.T) {
	assert.Nil(t, ComposeAttributes(nil, nil, false))
	assert.Nil(t, ComposeAttributes(AttributeMap{}, AttributeMap{}, true))
	assert.Nil(t, ComposeAttributes(AttributeMap{"bold": Bool(true)}, AttributeMap{"bold": Unset()}, false))
}

func TestComposeAttributes_DoesNotMutateInputs(t *testing.T) {
	var a = AttributeMap{"bold": Bool(true)}
	var b = AttributeMap{"bold": Unset(), "italic": Bool(true)}

	ComposeAttributes(a, b, false)

	assert.Len(t, a, 1)
	assert.Len(t, b, 2)
	assert.True(t, a["bold"].Bool())
}

func TestInvertAttributes(t *testing.T) {
	var base = AttributeMap{"bold": Bool(true), "color": String("blue")}
	var change = AttributeMap{"bold": Unset(), "color": String("red"), "italic": Bool(true)}

	var got = InvertAttributes(base, change)

	assert.True(t, got.Equal(AttributeMap{
		"bold":   Bool(true),
		"color":  String("blue"),
		"italic": Unset(),
	}), got)
}

func TestInvertAttributes_SameValueIsNil(t *testing.T) {
	assert.Nil(t, InvertAttributes(AttributeMap{"bold": Bool(true)}, AttributeMap{"bold": Bool(true)}))
	assert.Nil(t, InvertAttributes(AttributeMap{"bold": Bool(true)}, nil))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Number(2).Equal(Number(2)))
	assert.False(t, Number(2).Equal(String("2")))
	assert.True(t, Unset().Equal(Value{}))
	assert.False(t, Bool(false).Equal(Unset()))
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(nil)
	assert.NoError(t, err)
	assert.True(t, v.IsUnset())

	v, err = ValueOf(3.5)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v.Num())

	_, err = ValueOf([]any{1})
	assert.Error(t, err)
}
