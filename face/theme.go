package face

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeConfig holds the face colours as hex strings. Empty fields keep the
// default colour.
type ThemeConfig struct {
	Skin  string `yaml:"skin"`
	Eye   string `yaml:"eye"`
	Pupil string `yaml:"pupil"`
	Lid   string `yaml:"lid"`
	Mouth string `yaml:"mouth"`
}

// Theme is the parsed set of colours the face is drawn with.
type Theme struct {
	Skin  colorful.Color
	Eye   colorful.Color
	Pupil colorful.Color
	Lid   colorful.Color
	Mouth colorful.Color
}

var defaultTheme = ThemeConfig{
	Skin:  "#3a4a5c",
	Eye:   "#f4f6f8",
	Pupil: "#101820",
	Mouth: "#e8505b",
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() Theme {
	t, _ := ParseTheme(ThemeConfig{})
	return t
}

// ParseTheme parses c on top of the default colours. Without an explicit lid
// colour the lids are a darker shade of the skin.
func ParseTheme(c ThemeConfig) (Theme, error) {
	var t Theme
	fields := []struct {
		name  string
		value string
		def   string
		dst   *colorful.Color
	}{
		{"skin", c.Skin, defaultTheme.Skin, &t.Skin},
		{"eye", c.Eye, defaultTheme.Eye, &t.Eye},
		{"pupil", c.Pupil, defaultTheme.Pupil, &t.Pupil},
		{"mouth", c.Mouth, defaultTheme.Mouth, &t.Mouth},
	}
	for _, f := range fields {
		v := f.value
		if v == "" {
			v = f.def
		}
		col, err := colorful.Hex(v)
		if err != nil {
			return t, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = col
	}

	if c.Lid == "" {
		black, _ := colorful.Hex("#000000")
		t.Lid = t.Skin.BlendLab(black, 0.3).Clamped()
	} else {
		col, err := colorful.Hex(c.Lid)
		if err != nil {
			return t, fmt.Errorf("theme lid: %w", err)
		}
		t.Lid = col
	}
	return t, nil
}
