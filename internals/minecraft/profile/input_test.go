package profile

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t testing.TB, width int, height int) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, width, height)))
	require.NoError(t, err)
	return buf.Bytes()
}

func TestValidName(t *testing.T) {
	valid := []string{"abc", "Notch", "jeb_", "a_1_B_2", strings.Repeat("x", 16)}
	for _, name := range valid {
		assert.True(t, ValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "ab", strings.Repeat("x", 17), "with space", "dash-name", "ümlaut", "name!"}
	for _, name := range invalid {
		assert.False(t, ValidName(name), "expected %q to be invalid", name)
	}
}

func TestValidateSkin(t *testing.T) {
	assert.NoError(t, ValidateSkin(pngBytes(t, 64, 64)))

	err := ValidateSkin(pngBytes(t, 64, 32))
	assert.ErrorIs(t, err, ErrSkinSize)

	err = ValidateSkin([]byte("<html>not a png</html>"))
	assert.ErrorIs(t, err, ErrSkinNotPNG)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("SLIM")
	assert.NoError(t, err)
	assert.Equal(t, VariantSlim, v)
	assert.Equal(t, "SLIM", v.wire())

	v, err = ParseVariant("")
	assert.NoError(t, err)
	assert.Equal(t, VariantClassic, v)
	assert.Equal(t, "CLASSIC", v.wire())

	_, err = ParseVariant("wide")
	assert.Error(t, err)
}
