package profile

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"regexp"
)

// SkinSize is the width and height a skin texture must have
const SkinSize = 64

// NameRegex matches valid Minecraft player names
var NameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)

var (
	// ErrSkinNotPNG is returned for skin files that are not png images
	ErrSkinNotPNG = errors.New("please select a png file")
	// ErrSkinSize is returned for png files that are not 64x64
	ErrSkinSize = errors.New("please select a 64x64 png file")
)

// ValidName reports whether name is a valid Minecraft player name
func ValidName(name string) bool {
	return NameRegex.MatchString(name)
}

// ValidateSkin checks that data is a 64x64 png image
func ValidateSkin(data []byte) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSkinNotPNG, err)
	}
	if cfg.Width != SkinSize || cfg.Height != SkinSize {
		return fmt.Errorf("%w (got %dx%d)", ErrSkinSize, cfg.Width, cfg.Height)
	}
	return nil
}
