package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare token", TokenMarker + ".payload.sig", TokenMarker + ".payload.sig"},
		{"leading whitespace", "  \n" + TokenMarker + ".abc", TokenMarker + ".abc"},
		{"pasted json", `{"accessToken":"` + TokenMarker + `.abc"}`, TokenMarker + `.abc"}`},
		{"only marker", TokenMarker, TokenMarker},
		{"first occurrence wins", "x" + TokenMarker + "a" + TokenMarker, TokenMarker + "a" + TokenMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractToken(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTokenWithoutMarker(t *testing.T) {
	for _, input := range []string{"", "Bearer abc.def.ghi", TokenMarker[:len(TokenMarker)-1]} {
		_, err := ExtractToken(input)
		assert.ErrorIs(t, err, ErrInvalidCredential, "input %q", input)
	}
}
