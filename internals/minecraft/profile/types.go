package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/stoewer/go-strcase"
)

// StateActive is the state of the skin or cape that is currently applied
const StateActive = "ACTIVE"

// NameChangeInterval is the time that has to pass between two name changes
const NameChangeInterval = 30 * 24 * time.Hour

// Profile is the full profile as returned by GET profile/
type Profile struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Skins []Skin `json:"skins" yaml:"skins"`
	Capes []Cape `json:"capes" yaml:"capes"`
}

// Skin is one skin of a profile
type Skin struct {
	ID         string `json:"id" yaml:"id"`
	State      string `json:"state" yaml:"state"`
	URL        string `json:"url" yaml:"url"`
	TextureKey string `json:"textureKey" yaml:"textureKey"`
	// Variant is "CLASSIC" or "SLIM"
	Variant string `json:"variant" yaml:"variant"`
}

// Cape is one cape a profile owns
type Cape struct {
	ID    string `json:"id" yaml:"id"`
	State string `json:"state" yaml:"state"`
	URL   string `json:"url" yaml:"url"`
	Alias string `json:"alias" yaml:"alias"`
}

// ActiveSkin returns the skin in the active state or nil
func (p *Profile) ActiveSkin() *Skin {
	for i := range p.Skins {
		if p.Skins[i].State == StateActive {
			return &p.Skins[i]
		}
	}
	return nil
}

// ActiveCape returns the cape in the active state or nil if no cape is worn
func (p *Profile) ActiveCape() *Cape {
	for i := range p.Capes {
		if p.Capes[i].State == StateActive {
			return &p.Capes[i]
		}
	}
	return nil
}

// FindCape returns the cape with the given id or alias (case insensitive)
func (p *Profile) FindCape(idOrAlias string) *Cape {
	for i := range p.Capes {
		c := &p.Capes[i]
		if c.ID == idOrAlias || strings.EqualFold(c.Alias, idOrAlias) {
			return c
		}
	}
	return nil
}

// NameChangeStatus is returned by GET profile/namechange/
type NameChangeStatus struct {
	CreatedAt         time.Time  `json:"createdAt" yaml:"createdAt"`
	ChangedAt         *time.Time `json:"changedAt,omitempty" yaml:"changedAt,omitempty"`
	NameChangeAllowed bool       `json:"nameChangeAllowed" yaml:"nameChangeAllowed"`
}

// Variant is the skin model
type Variant string

const (
	// VariantClassic has wide arms
	VariantClassic Variant = "Classic"
	// VariantSlim has narrow arms
	VariantSlim Variant = "Slim"
)

// ParseVariant parses "classic" or "slim" in any case
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return VariantClassic, nil
	case "slim":
		return VariantSlim, nil
	default:
		return "", fmt.Errorf("unknown skin variant %q (use classic or slim)", s)
	}
}

// wire returns the form value the API expects ("CLASSIC" or "SLIM")
func (v Variant) wire() string {
	return strcase.UpperSnakeCase(string(v))
}
