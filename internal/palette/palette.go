// Package palette holds the fixed table of named reference colors, grouped
// by season and group, and the classifier that matches arbitrary colors
// against it by perceptual distance.
//
// The table is built once on first use and never mutated afterwards; it is
// safe for unlimited concurrent readers.
package palette

import (
	"fmt"
	"sync"

	"github.com/stylesense/colorseason/internal/colormath"
)

// Season is one of the four canonical personal-color categories.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Seasons lists all seasons in declaration order. The order is load-bearing:
// it is the documented tie-break for both palette classification and season
// scoring.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// Group is a usage grouping within a season's palette.
type Group string

const (
	GroupNeutrals Group = "neutrals"
	GroupAccents  Group = "accents"
	GroupBrights  Group = "brights"
	GroupSofts    Group = "softs"
)

// Groups lists all groups in declaration order.
func Groups() []Group {
	return []Group{GroupNeutrals, GroupAccents, GroupBrights, GroupSofts}
}

// Color is a named reference color with its precomputed Lab value.
type Color struct {
	Name   string        `json:"name"`
	Hex    string        `json:"hex"`
	Season Season        `json:"season"`
	Group  Group         `json:"group"`
	Lab    colormath.Lab `json:"-"`
}

type entry struct {
	name string
	hex  string
}

// referenceTable is the literal source of the palette: 4 seasons × 4 groups
// × 5 colors. Declaration order doubles as the tie-break order.
var referenceTable = []struct {
	season Season
	group  Group
	colors [5]entry
}{
	{SeasonSpring, GroupNeutrals, [5]entry{
		{"Ivory", "#FFFFF0"},
		{"Cream", "#FFFDD0"},
		{"Camel", "#C19A6B"},
		{"Golden Tan", "#D2B48C"},
		{"Warm Beige", "#E8C39E"},
	}},
	{SeasonSpring, GroupAccents, [5]entry{
		{"Coral", "#FF7F50"},
		{"Peach", "#FFDAB9"},
		{"Warm Yellow", "#FFD34E"},
		{"Salmon Pink", "#FF91A4"},
		{"Turquoise", "#40E0D0"},
	}},
	{SeasonSpring, GroupBrights, [5]entry{
		{"Bright Aqua", "#00C5CD"},
		{"Poppy Red", "#E35335"},
		{"Apple Green", "#8DB600"},
		{"Hot Pink", "#FF69B4"},
		{"Clear Blue", "#1E90FF"},
	}},
	{SeasonSpring, GroupSofts, [5]entry{
		{"Soft Apricot", "#F0B27A"},
		{"Light Aqua", "#A3E4D7"},
		{"Soft Coral", "#F1948A"},
		{"Buttercream", "#FBE7A1"},
		{"Melon", "#FEBAAD"},
	}},

	{SeasonSummer, GroupNeutrals, [5]entry{
		{"Soft White", "#F5F5F5"},
		{"Light Grey", "#D3D3D3"},
		{"Greige", "#BEB9B1"},
		{"Cool Taupe", "#8B8589"},
		{"Slate Grey", "#6D7B8D"},
	}},
	{SeasonSummer, GroupAccents, [5]entry{
		{"Powder Blue", "#B0E0E6"},
		{"Rose Pink", "#E8ADAA"},
		{"Lilac", "#C8A2C8"},
		{"Dusty Rose", "#C08081"},
		{"Soft Periwinkle", "#A2A2D0"},
	}},
	{SeasonSummer, GroupBrights, [5]entry{
		{"Raspberry", "#B3446C"},
		{"French Blue", "#0072BB"},
		{"Amethyst", "#9966CC"},
		{"Spearmint", "#45B08C"},
		{"Watermelon", "#FD5B78"},
	}},
	{SeasonSummer, GroupSofts, [5]entry{
		{"Blue Mist", "#A9C0CB"},
		{"Mauve", "#B784A7"},
		{"Sage", "#9CAF88"},
		{"Shell Pink", "#F8C8DC"},
		{"Heather", "#9E7BB5"},
	}},

	{SeasonAutumn, GroupNeutrals, [5]entry{
		{"Espresso", "#4E342E"},
		{"Khaki", "#C3B091"},
		{"Olive", "#708238"},
		{"Warm Stone", "#A68A64"},
		{"Deep Bronze", "#804A00"},
	}},
	{SeasonAutumn, GroupAccents, [5]entry{
		{"Rust", "#B7410E"},
		{"Burnt Orange", "#CC5500"},
		{"Mustard", "#E1AD01"},
		{"Terracotta", "#E2725B"},
		{"Moss Green", "#8A9A5B"},
	}},
	{SeasonAutumn, GroupBrights, [5]entry{
		{"Pumpkin", "#F5761A"},
		{"Brick Red", "#9C2706"},
		{"Forest Green", "#228B22"},
		{"Deep Teal", "#008080"},
		{"Golden Yellow", "#FFC30B"},
	}},
	{SeasonAutumn, GroupSofts, [5]entry{
		{"Caramel", "#AF6E3D"},
		{"Dusty Gold", "#C5A253"},
		{"Salmon Buff", "#D99A6C"},
		{"Fern", "#71915B"},
		{"Clay", "#B66A50"},
	}},

	{SeasonWinter, GroupNeutrals, [5]entry{
		{"Charcoal", "#36454F"},
		{"Pure White", "#FFFFFF"},
		{"Cool Navy", "#1F305E"},
		{"Steel", "#43464B"},
		{"Deep Plum", "#41295A"},
	}},
	{SeasonWinter, GroupAccents, [5]entry{
		{"True Red", "#BF0A30"},
		{"Royal Blue", "#4169E1"},
		{"Emerald", "#009B77"},
		{"Fuchsia", "#C9208A"},
		{"Violet", "#7F00FF"},
	}},
	{SeasonWinter, GroupBrights, [5]entry{
		{"Electric Blue", "#0892D0"},
		{"Crimson", "#DC143C"},
		{"Citrus Yellow", "#F7EA48"},
		{"Shocking Pink", "#FC0FC0"},
		{"Bright Green", "#00A550"},
	}},
	{SeasonWinter, GroupSofts, [5]entry{
		{"Ice Blue", "#D6ECEF"},
		{"Ice Pink", "#F3D6E4"},
		{"Ice Lavender", "#DCD0E8"},
		{"Ice Mint", "#D0F0E0"},
		{"Silver", "#C0C0C0"},
	}},
}

var (
	buildOnce sync.Once
	flat      []Color
)

// build computes each entry's Lab once. The table is literal and validated
// by tests, so a malformed hex here is a programming bug, not an input error.
func build() {
	flat = make([]Color, 0, len(referenceTable)*5)
	for _, block := range referenceTable {
		for _, e := range block.colors {
			rgb, err := colormath.ParseHex(e.hex)
			if err != nil {
				panic(fmt.Sprintf("palette: bad reference color %s %q: %v", e.name, e.hex, err))
			}
			flat = append(flat, Color{
				Name:   e.name,
				Hex:    e.hex,
				Season: block.season,
				Group:  block.group,
				Lab:    rgb.Lab(),
			})
		}
	}
}

// Colors returns the full palette in declaration order. The returned slice
// is shared and must be treated as read-only.
func Colors() []Color {
	buildOnce.Do(build)
	return flat
}

// List returns the palette entries matching the given season and group.
// An empty season or group matches everything.
func List(season Season, group Group) []Color {
	var out []Color
	for _, c := range Colors() {
		if season != "" && c.Season != season {
			continue
		}
		if group != "" && c.Group != group {
			continue
		}
		out = append(out, c)
	}
	return out
}
