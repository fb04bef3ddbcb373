package dial

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// referenceRadius is the face radius the palette proportions are drawn for.
const referenceRadius = 140

const (
	minDialSize = 240
	glowAlpha   = 0xe6
)

// Dial draws a 60-minute face with a shrinking remaining-time sector.
type Dial struct {
	palette  Palette
	fraction float64

	face   *canvas.Circle
	sector *canvas.Raster
	ticks  []*canvas.Line
	labels []*canvas.Text
	hub    *canvas.Circle
	root   *fyne.Container
}

// New creates a dial drawn with palette.
func New(palette Palette) *Dial {
	dial := &Dial{palette: palette}

	dial.face = canvas.NewCircle(palette.Face)
	dial.sector = canvas.NewRasterWithPixels(dial.pixel)
	dial.hub = canvas.NewCircle(palette.Hand)

	objects := []fyne.CanvasObject{dial.face, dial.sector}
	for minute := 0; minute < 60; minute++ {
		line := canvas.NewLine(palette.Tick)
		dial.ticks = append(dial.ticks, line)
		objects = append(objects, line)
	}
	for minute := 0; minute < 60; minute += 5 {
		label := canvas.NewText(strconv.Itoa(minute), palette.Number)
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		dial.labels = append(dial.labels, label)
		objects = append(objects, label)
	}
	objects = append(objects, dial.hub)

	dial.root = container.New(&dialLayout{dial: dial}, objects...)
	dial.applyPalette()
	return dial
}

// Object returns the canvas object to place in a window.
func (dial *Dial) Object() fyne.CanvasObject {
	return dial.root
}

// Fraction returns the currently drawn remaining-time fraction.
func (dial *Dial) Fraction() float64 {
	return dial.fraction
}

// SetFraction redraws the sector for a remaining-time fraction in [0, 1].
func (dial *Dial) SetFraction(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if fraction == dial.fraction {
		return
	}
	dial.fraction = fraction
	dial.sector.Refresh()
}

// SetPalette restyles the dial.
func (dial *Dial) SetPalette(palette Palette) {
	dial.palette = palette
	dial.applyPalette()
	dial.root.Refresh()
}

func (dial *Dial) applyPalette() {
	palette := dial.palette
	dial.face.FillColor = palette.Face
	dial.face.StrokeColor = palette.Border
	dial.face.StrokeWidth = palette.BorderWidth
	dial.hub.FillColor = palette.Hand

	for minute, line := range dial.ticks {
		tickColor := palette.Tick
		tickColor.A = palette.Ticks.MinorAlpha
		if IsMajorTick(minute) {
			tickColor.A = palette.Ticks.MajorAlpha
		}
		line.StrokeColor = tickColor
	}
	for _, label := range dial.labels {
		label.Color = palette.Number
		label.TextSize = palette.NumberSize
	}
}

func (dial *Dial) pixel(x, y, width, height int) color.Color {
	side := float64(width)
	if height < width {
		side = float64(height)
	}
	center := Point{X: float64(width) / 2, Y: float64(height) / 2}
	if InSector(center, side/2, SectorAngle(dial.fraction), float64(x)+0.5, float64(y)+0.5) {
		sector := dial.palette.Sector
		if dial.palette.Glow {
			sector.A = glowAlpha
		}
		return sector
	}
	return color.Transparent
}

type dialLayout struct {
	dial *Dial
}

func (layout *dialLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	dial := layout.dial
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	radius := side/2 - dial.palette.BorderWidth
	if radius < 0 {
		radius = 0
	}
	scale := float64(radius) / referenceRadius
	center := Point{X: float64(size.Width) / 2, Y: float64(size.Height) / 2}
	origin := fyne.NewPos(float32(center.X)-radius, float32(center.Y)-radius)

	dial.face.Move(origin)
	dial.face.Resize(fyne.NewSize(radius*2, radius*2))
	dial.sector.Move(origin)
	dial.sector.Resize(fyne.NewSize(radius*2, radius*2))

	ticks := dial.palette.Ticks
	for minute, line := range dial.ticks {
		length, width := ticks.MinorLength, ticks.MinorWidth
		if IsMajorTick(minute) {
			length, width = ticks.MajorLength, ticks.MajorWidth
		}
		segment := TickMark(center, float64(radius), minute, float64(length)*scale)
		line.Position1 = fyne.NewPos(float32(segment.From.X), float32(segment.From.Y))
		line.Position2 = fyne.NewPos(float32(segment.To.X), float32(segment.To.Y))
		line.StrokeWidth = width
	}

	labelRadius := dial.palette.LabelRadius
	if labelRadius <= 0 {
		labelRadius = 110
	}
	for index, label := range dial.labels {
		position := LabelPosition(center, float64(labelRadius)*scale, index*5)
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(float32(position.X)-labelSize.Width/2, float32(position.Y)-labelSize.Height/2))
		label.Resize(labelSize)
	}

	hubRadius := dial.palette.HubRadius * float32(scale)
	dial.hub.Move(fyne.NewPos(float32(center.X)-hubRadius, float32(center.Y)-hubRadius))
	dial.hub.Resize(fyne.NewSize(hubRadius*2, hubRadius*2))
}

func (layout *dialLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(minDialSize, minDialSize)
}
