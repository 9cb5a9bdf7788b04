package surface

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is a 24-bit RGB value packed as 0x00RRGGBB. The top byte is unused.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Components unpacks the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts the color to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c Color) String() string {
	return "#" + strconv.FormatUint(uint64(c&0xFFFFFF)|1<<24, 16)[1:]
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or bare "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x"), "0X")
	if len(hex) != 6 {
		return 0, errors.Errorf("[ParseColor] %q is not a 6-digit hex color", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "[ParseColor] invalid color %q", s)
	}
	return Color(v), nil
}
