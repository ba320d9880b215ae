// seehuhn.de/go/stepline - step-line geometry for charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package chartfile reads chart descriptions in TOML format and lays
// out their values as device space points.
//
// A chart file looks like this:
//
//	width = 640
//	height = 480
//	mode = "3d"
//	depth = 12
//
//	[[series]]
//	name = "sales"
//	color = "#1f77b4"
//	width = 2
//	dash = "dash"
//	values = [3, 5, 2, 8]
//
// Only a trivial layout is done: values are spaced evenly along the x
// axis, and the y axis covers the range of all values.
package chartfile

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/stepline"
)

// ErrInvalid is returned for chart files with invalid settings.
var ErrInvalid = errors.New("chartfile: invalid chart")

// Chart is the contents of a chart file.
type Chart struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Margin float64 `toml:"margin"`

	// Mode is "2d" or "3d".
	Mode string `toml:"mode"`

	// Connector is "step" or "direct".  It is used in 2D mode only.
	Connector string `toml:"connector"`

	// Depth is the depth of one series in 3D mode, Angle the direction
	// of the depth axis in degrees.
	Depth float64 `toml:"depth"`
	Angle float64 `toml:"angle"`

	// Light is "none", "simplistic" or "realistic".
	Light string `toml:"light"`

	ShowPointLines bool `toml:"show_point_lines"`

	Series []Series `toml:"series"`
}

// Series is one data series of a chart.
type Series struct {
	Name         string    `toml:"name"`
	Color        string    `toml:"color"`
	BorderColor  string    `toml:"border_color"`
	Width        float64   `toml:"width"`
	Dash         string    `toml:"dash"`
	ShadowColor  string    `toml:"shadow_color"`
	ShadowOffset float64   `toml:"shadow_offset"`
	Values       []float64 `toml:"values"`

	// Empty lists the positions of missing values.
	Empty []int `toml:"empty"`
}

// Load reads a chart file.
func Load(fname string) (*Chart, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Decode reads a chart description from r, fills in default values and
// checks the result.  Unknown keys are an error.
func Decode(r io.Reader) (*Chart, error) {
	c := &Chart{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	c.setDefaults()
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chart) setDefaults() {
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.Margin == 0 {
		c.Margin = 20
	}
	if c.Mode == "" {
		c.Mode = "2d"
	}
	if c.Connector == "" {
		c.Connector = "step"
	}
	if c.Mode == "3d" && c.Depth == 0 {
		c.Depth = 10
	}
	if c.Angle == 0 {
		c.Angle = 30
	}
	if c.Light == "" {
		c.Light = "none"
	}
	for i := range c.Series {
		s := &c.Series[i]
		if s.Name == "" {
			s.Name = "series" + strconv.Itoa(i+1)
		}
		if s.Width == 0 {
			s.Width = 1
		}
	}
}

func (c *Chart) check() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	if c.Width < 0 || c.Height < 0 {
		return invalid("size %dx%d", c.Width, c.Height)
	}
	if 2*c.Margin >= float64(min(c.Width, c.Height)) {
		return invalid("margin %g too large", c.Margin)
	}
	if c.Mode != "2d" && c.Mode != "3d" {
		return invalid("unknown mode %q", c.Mode)
	}
	if c.Connector != "step" && c.Connector != "direct" {
		return invalid("unknown connector %q", c.Connector)
	}
	if c.Depth < 0 {
		return invalid("negative depth %g", c.Depth)
	}
	if _, ok := parseLight(c.Light); !ok {
		return invalid("unknown light style %q", c.Light)
	}
	if len(c.Series) == 0 {
		return invalid("no series")
	}
	for _, s := range c.Series {
		for _, col := range []string{s.Color, s.BorderColor, s.ShadowColor} {
			if _, err := ParseColor(col); err != nil {
				return invalid("series %q: %v", s.Name, err)
			}
		}
		if s.Dash != "" {
			if _, ok := stepline.ParseDashStyle(s.Dash); !ok {
				return invalid("series %q: unknown dash style %q", s.Name, s.Dash)
			}
		}
		if s.Width < 0 {
			return invalid("series %q: negative width %g", s.Name, s.Width)
		}
		for _, k := range s.Empty {
			if k < 0 || k >= len(s.Values) {
				return invalid("series %q: empty position %d out of range", s.Name, k)
			}
		}
	}
	return nil
}

// ParseColor parses a color in the form "#rgb", "#rrggbb" or "#rrggbbaa".
// The empty string gives a nil color.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("color %q: missing '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("color %q: wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseLight(s string) (stepline.LightStyle, bool) {
	switch s {
	case "none":
		return stepline.LightNone, true
	case "simplistic":
		return stepline.LightSimplistic, true
	case "realistic":
		return stepline.LightRealistic, true
	}
	return stepline.LightNone, false
}
