package main

// Colour names, a subset of X11 rgb.txt.
var rgb = map[string]rgba{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"gray":      {0xbe, 0xbe, 0xbe, 0xff},
	"grey":      {0xbe, 0xbe, 0xbe, 0xff},
	"darkgray":  {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":  {0xa9, 0xa9, 0xa9, 0xff},
	"lightgray": {0xd3, 0xd3, 0xd3, 0xff},
	"lightgrey": {0xd3, 0xd3, 0xd3, 0xff},
	"navy":      {0x00, 0x00, 0x80, 0xff},
	"navyblue":  {0x00, 0x00, 0x80, 0xff},
	"maroon":    {0xb0, 0x30, 0x60, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"purple":    {0xa0, 0x20, 0xf0, 0xff},
	"brown":     {0xa5, 0x2a, 0x2a, 0xff},
	"ivory":     {0xff, 0xff, 0xf0, 0xff},
	"beige":     {0xf5, 0xf5, 0xdc, 0xff},
	"darkgreen": {0x00, 0x64, 0x00, 0xff},
	"darkblue":  {0x00, 0x00, 0x8b, 0xff},
	"darkred":   {0x8b, 0x00, 0x00, 0xff},
	"none":      {0x00, 0x00, 0x00, 0x00},
}
