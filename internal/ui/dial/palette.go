package dial

import (
	"image/color"

	"timetimer/internal/core/model"
)

// TickStyle describes the minute and five-minute tick marks.
type TickStyle struct {
	MajorLength float32
	MinorLength float32
	MajorWidth  float32
	MinorWidth  float32
	MajorAlpha  uint8
	MinorAlpha  uint8
}

// Palette holds the colors and proportions of one dial style.
type Palette struct {
	Background  color.NRGBA
	Face        color.NRGBA
	Border      color.NRGBA
	BorderWidth float32
	Sector      color.NRGBA
	Number      color.NRGBA
	Hand        color.NRGBA
	Tick        color.NRGBA
	Readout     color.NRGBA
	Ticks       TickStyle
	NumberSize  float32
	LabelRadius float32
	HubRadius   float32
	Dark        bool
	Glow        bool
}

func rgb(hex uint32) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var defaultTicks = TickStyle{
	MajorLength: 15, MinorLength: 8,
	MajorWidth: 2, MinorWidth: 1,
	MajorAlpha: 0xff, MinorAlpha: 0xff,
}

var palettes = map[model.Style]Palette{
	model.StyleClassic: {
		Background: rgb(0xF3F4F6), Face: rgb(0xFFFFFF), Border: rgb(0x1F2937), BorderWidth: 8,
		Sector: rgb(0xFF4444), Number: rgb(0x333333), Hand: rgb(0x333333), Tick: rgb(0x333333),
		Readout: rgb(0xFFFFFF), Ticks: defaultTicks, NumberSize: 24, HubRadius: 6,
	},
	model.StyleMidCentury: {
		Background: rgb(0xFFF7ED), Face: rgb(0xFDE68A), Border: rgb(0xB45309), BorderWidth: 12,
		Sector: rgb(0xDC2626), Number: rgb(0x92400E), Hand: rgb(0x451A03), Tick: rgb(0x92400E),
		Readout: rgb(0xFFFFFF), NumberSize: 22, LabelRadius: 105, HubRadius: 8,
		Ticks: TickStyle{MajorLength: 20, MinorLength: 10, MajorWidth: 3, MinorWidth: 1, MajorAlpha: 0xff, MinorAlpha: 0xb3},
	},
	model.StyleAtomic: {
		Background: rgb(0xECFEFF), Face: rgb(0xB2EBF2), Border: rgb(0x0891B2), BorderWidth: 4,
		Sector: rgb(0x059669), Number: rgb(0x0E7490), Hand: rgb(0x164E63), Tick: rgb(0x0891B2),
		Readout: rgb(0xFFFFFF), NumberSize: 18, LabelRadius: 108, HubRadius: 6,
		Ticks: TickStyle{MajorLength: 18, MinorLength: 8, MajorWidth: 2, MinorWidth: 1, MajorAlpha: 0xff, MinorAlpha: 0xcc},
	},
	model.StyleModern: {
		Background: rgb(0x0F172A), Face: rgb(0x334155), Border: rgb(0x94A3B8), BorderWidth: 2,
		Sector: rgb(0x8B5CF6), Number: rgb(0xF1F5F9), Hand: rgb(0xF1F5F9), Tick: rgb(0x94A3B8),
		Readout: rgb(0xFFFFFF), Ticks: defaultTicks, NumberSize: 24, HubRadius: 6, Dark: true,
	},
	model.StyleMinimal: {
		Background: rgb(0xFAFAFA), Face: rgb(0xFAFAFA), Border: rgb(0xD4D4D4), BorderWidth: 1,
		Sector: rgb(0x525252), Number: rgb(0x404040), Hand: rgb(0x404040), Tick: rgb(0xA3A3A3),
		Readout: rgb(0xFFFFFF), NumberSize: 20, HubRadius: 4,
		Ticks: TickStyle{MajorLength: 12, MinorLength: 6, MajorWidth: 1, MinorWidth: 0.5, MajorAlpha: 0xcc, MinorAlpha: 0x66},
	},
	model.StyleNeon: {
		Background: rgb(0x000000), Face: rgb(0x16213E), Border: rgb(0xF472B6), BorderWidth: 3,
		Sector: rgb(0xEC4899), Number: rgb(0xF0ABFC), Hand: rgb(0xF0ABFC), Tick: rgb(0xC084FC),
		Readout: rgb(0xD8B4FE), Ticks: defaultTicks, NumberSize: 24, HubRadius: 6, Dark: true, Glow: true,
	},
}

// PaletteFor returns the palette of style, falling back to classic.
func PaletteFor(style model.Style) Palette {
	if palette, ok := palettes[style]; ok {
		return palette
	}
	return palettes[model.StyleClassic]
}
