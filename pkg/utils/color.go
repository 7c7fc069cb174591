package utils

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Gray 返回不透明的灰度颜色
// v 取值 0 ~ 255，超出范围会被截断
func Gray(v float64) color.RGBA {
	g := uint8(Clamp(math.Round(v), 0, 255))
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// ParseColor 解析 "#RRGGBB" 格式的颜色
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseColor 与 ParseColor 相同，解析失败时 panic
// 仅用于编译期常量颜色
func MustParseColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
