package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyTerminated(t *testing.T) {
	tests := []struct {
		description string
		dstLen      int
		src         string
		expectedN   int
		expectedStr string
	}{
		{description: "empty dst", dstLen: 0, src: "abc", expectedN: 0, expectedStr: ""},
		{description: "terminator only", dstLen: 1, src: "abc", expectedN: 0, expectedStr: ""},
		{description: "truncated", dstLen: 3, src: "abcdefghij", expectedN: 2, expectedStr: "ab"},
		{description: "exact fit", dstLen: 4, src: "abc", expectedN: 3, expectedStr: "abc"},
		{description: "larger dst", dstLen: 16, src: "abc", expectedN: 3, expectedStr: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			dst := make([]byte, tt.dstLen)
			for i := range dst {
				dst[i] = 0xff
			}

			n := CopyTerminated(dst, tt.src)
			assert.Equal(t, tt.expectedN, n)
			assert.Equal(t, tt.expectedStr, TerminatedString(dst))
			if tt.dstLen > 0 {
				assert.Equal(t, byte(0), dst[n])
			}
		})
	}
}

func TestTerminatedString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ab", TerminatedString([]byte{'a', 'b', 0, 'c'}))
	assert.Equal("abc", TerminatedString([]byte("abc")))
	assert.Equal("", TerminatedString(nil))
}
