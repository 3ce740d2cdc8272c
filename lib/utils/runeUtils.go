package utils

import "unicode/utf8"

func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneSlice returns the runes of s in [start, end), clamped to s.
func RuneSlice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	var startByte, endByte = -1, len(s)
	var runeIndex = 0
	for byteIndex := range s {
		if runeIndex == start {
			startByte = byteIndex
		}
		if runeIndex == end {
			endByte = byteIndex
			break
		}
		runeIndex++
	}
	if startByte < 0 {
		return ""
	}
	return s[startByte:endByte]
}
