package profile

import (
	"fmt"

	"github.com/tidwall/gjson"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindArray
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "a string"
	case kindBool:
		return "a boolean"
	case kindArray:
		return "an array"
	}
	return "unknown"
}

// shape describes the fields of a json object
type shape struct {
	name     string
	required map[string]fieldKind
	optional map[string]fieldKind
	// items describes the objects inside array fields
	items map[string]*shape
}

var skinShape = &shape{
	name: "skin",
	required: map[string]fieldKind{
		"id":         kindString,
		"state":      kindString,
		"url":        kindString,
		"textureKey": kindString,
		"variant":    kindString,
	},
}

var capeShape = &shape{
	name: "cape",
	required: map[string]fieldKind{
		"id":    kindString,
		"state": kindString,
		"url":   kindString,
		"alias": kindString,
	},
}

var profileShape = &shape{
	name: "profile",
	required: map[string]fieldKind{
		"id":    kindString,
		"name":  kindString,
		"skins": kindArray,
		"capes": kindArray,
	},
	items: map[string]*shape{
		"skins": skinShape,
		"capes": capeShape,
	},
}

var nameChangeShape = &shape{
	name: "name change",
	required: map[string]fieldKind{
		"createdAt":         kindString,
		"nameChangeAllowed": kindBool,
	},
	optional: map[string]fieldKind{
		"changedAt": kindString,
	},
}

// validateProfile checks that body is a complete profile object
func validateProfile(body []byte) error {
	return validate(body, profileShape)
}

// validateNameChange checks that body is a complete name change object
func validateNameChange(body []byte) error {
	return validate(body, nameChangeShape)
}

func validate(body []byte, s *shape) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%s: response is not valid json", s.name)
	}
	root := gjson.ParseBytes(body)
	return s.check(root, "")
}

func (s *shape) check(obj gjson.Result, prefix string) error {
	if !obj.IsObject() {
		if prefix == "" {
			return fmt.Errorf("%s: expected an object", s.name)
		}
		return fmt.Errorf("%s: %q must be an object", s.name, prefix)
	}

	// iterate sorted so the first reported problem is stable
	for _, field := range sortedKeys(s.required) {
		value := obj.Get(field)
		path := join(prefix, field)
		if !value.Exists() {
			return fmt.Errorf("%s: field %q is required", s.name, path)
		}
		if err := s.checkValue(value, path, field, s.required[field]); err != nil {
			return err
		}
	}

	for _, field := range sortedKeys(s.optional) {
		value := obj.Get(field)
		if !value.Exists() {
			continue
		}
		if err := s.checkValue(value, join(prefix, field), field, s.optional[field]); err != nil {
			return err
		}
	}

	return nil
}

func (s *shape) checkValue(value gjson.Result, path string, field string, kind fieldKind) error {
	ok := false
	switch kind {
	case kindString:
		ok = value.Type == gjson.String
	case kindBool:
		ok = value.Type == gjson.True || value.Type == gjson.False
	case kindArray:
		ok = value.IsArray()
	}
	if !ok {
		return fmt.Errorf("%s: field %q must be %s", s.name, path, kind)
	}

	item, hasItems := s.items[field]
	if kind != kindArray || !hasItems {
		return nil
	}
	for i, entry := range value.Array() {
		if err := item.check(entry, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

func sortedKeys(m map[string]fieldKind) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
