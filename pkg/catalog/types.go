package catalog

import (
	"fmt"
	"strings"
)

// TypeTag is one of the 18 elemental types.
type TypeTag string

const (
	TypeNormal   TypeTag = "normal"
	TypeFire     TypeTag = "fire"
	TypeWater    TypeTag = "water"
	TypeElectric TypeTag = "electric"
	TypeGrass    TypeTag = "grass"
	TypeIce      TypeTag = "ice"
	TypeFighting TypeTag = "fighting"
	TypePoison   TypeTag = "poison"
	TypeGround   TypeTag = "ground"
	TypeFlying   TypeTag = "flying"
	TypePsychic  TypeTag = "psychic"
	TypeBug      TypeTag = "bug"
	TypeRock     TypeTag = "rock"
	TypeGhost    TypeTag = "ghost"
	TypeDragon   TypeTag = "dragon"
	TypeDark     TypeTag = "dark"
	TypeSteel    TypeTag = "steel"
	TypeFairy    TypeTag = "fairy"
)

// allTypes keeps the display order of the type picker.
var allTypes = []TypeTag{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

var typeColors = map[TypeTag]string{
	TypeNormal:   "#aaaa99",
	TypeFire:     "#ff4422",
	TypeWater:    "#3399ff",
	TypeElectric: "#ffcc33",
	TypeGrass:    "#9bcc50",
	TypeIce:      "#66ccff",
	TypeFighting: "#bb5544",
	TypePoison:   "#aa5599",
	TypeGround:   "#ddbb55",
	TypeFlying:   "#8899ff",
	TypePsychic:  "#ff5599",
	TypeBug:      "#aabb22",
	TypeRock:     "#bbaa66",
	TypeGhost:    "#6666bb",
	TypeDragon:   "#7766ee",
	TypeDark:     "#775544",
	TypeSteel:    "#aaaabb",
	TypeFairy:    "#ee99ee",
}

// AllTypes returns the 18 type tags in display order.
func AllTypes() []TypeTag {
	out := make([]TypeTag, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseTypeTag parses a type name case-insensitively.
func ParseTypeTag(s string) (TypeTag, error) {
	t := TypeTag(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := typeColors[t]; !ok {
		return "", fmt.Errorf("unknown type %q", s)
	}
	return t, nil
}

// Valid reports whether t is one of the 18 known types.
func (t TypeTag) Valid() bool {
	_, ok := typeColors[t]
	return ok
}

// Color returns the static display color (hex) of the type.
func (t TypeTag) Color() string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return typeColors[TypeNormal]
}

// Label returns the capitalized display label.
func (t TypeTag) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}
