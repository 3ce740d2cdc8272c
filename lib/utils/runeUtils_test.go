package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneSlice(t *testing.T) {
	assert.Equal(t, "ell", RuneSlice("Hello", 1, 4))
	assert.Equal(t, "llo", RuneSlice("Hello", 2, 100))
	assert.Equal(t, "", RuneSlice("Hello", 5, 7))
	assert.Equal(t, "", RuneSlice("Hello", 3, 3))
	assert.Equal(t, "He", RuneSlice("Hello", -2, 2))
}

func TestRuneSliceMultiByte(t *testing.T) {
	var s = "héllo wörld 文档"
	assert.Equal(t, 14, RuneCount(s))
	assert.Equal(t, "éll", RuneSlice(s, 1, 4))
	assert.Equal(t, "文档", RuneSlice(s, 12, 14))
	assert.Equal(t, "档", RuneSlice(s, 13, 20))
}
