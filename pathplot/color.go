package pathplot

import (
	"fmt"
	"image/color"
)

// ChannelOrder is the byte order a canvas keeps its 3 channels in
type ChannelOrder int

const (
	OrderRGB ChannelOrder = iota
	OrderBGR
)

func (order ChannelOrder) String() string {
	switch order {
	case OrderRGB:
		return "RGB"
	case OrderBGR:
		return "BGR"
	default:
		return fmt.Sprintf("ChannelOrder(%d)", int(order))
	}
}

// RGB is a user-facing color, always red-green-blue
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black  = RGB{0, 0, 0}
	Yellow = RGB{255, 255, 0}
)

// Color holds 3 channels in some canvas' native order. It has no meaning without that order.
type Color [3]uint8

// ToNative converts rgb into the given channel order
func ToNative(rgb RGB, order ChannelOrder) Color {
	switch order {
	case OrderBGR:
		return Color{rgb.B, rgb.G, rgb.R}
	default:
		return Color{rgb.R, rgb.G, rgb.B}
	}
}

// FromNative is the inverse of ToNative
func FromNative(c Color, order ChannelOrder) RGB {
	switch order {
	case OrderBGR:
		return RGB{R: c[2], G: c[1], B: c[0]}
	default:
		return RGB{R: c[0], G: c[1], B: c[2]}
	}
}

// NRGBA returns an opaque image/color value
func (rgb RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xFF}
}
