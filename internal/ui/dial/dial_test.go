package dial

import (
	"image/color"
	"testing"

	"timetimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorAngle(t *testing.T) {
	assert.Equal(t, 0.0, SectorAngle(-1))
	assert.Equal(t, 90.0, SectorAngle(0.25))
	assert.Equal(t, 150.0, SectorAngle(1500.0/3600.0))
	assert.Equal(t, 360.0, SectorAngle(2))
}

func TestClockwiseAngle(t *testing.T) {
	center := Point{X: 100, Y: 100}
	assert.InDelta(t, 0, ClockwiseAngle(center, 100, 0), 1e-9)
	assert.InDelta(t, 90, ClockwiseAngle(center, 200, 100), 1e-9)
	assert.InDelta(t, 180, ClockwiseAngle(center, 100, 200), 1e-9)
	assert.InDelta(t, 270, ClockwiseAngle(center, 0, 100), 1e-9)
}

func TestInSector(t *testing.T) {
	center := Point{X: 100, Y: 100}

	assert.True(t, InSector(center, 100, 90, 150, 50))
	assert.False(t, InSector(center, 100, 90, 50, 50))
	assert.False(t, InSector(center, 100, 90, 150, 150))
	assert.False(t, InSector(center, 100, 90, 199, 1))
	assert.False(t, InSector(center, 100, 0, 150, 50))
	assert.True(t, InSector(center, 100, 360, 50, 150))
}

func TestTickMarks(t *testing.T) {
	center := Point{X: 0, Y: 0}
	top := TickMark(center, 140, 0, 15)
	assert.InDelta(t, 0, top.To.X, 1e-9)
	assert.InDelta(t, -140, top.To.Y, 1e-9)
	assert.InDelta(t, -125, top.From.Y, 1e-9)

	quarter := TickMark(center, 140, 15, 8)
	assert.InDelta(t, 140, quarter.To.X, 1e-9)
	assert.InDelta(t, 132, quarter.From.X, 1e-9)

	assert.True(t, IsMajorTick(0))
	assert.True(t, IsMajorTick(55))
	assert.False(t, IsMajorTick(7))
}

func TestLabelPosition(t *testing.T) {
	label := LabelPosition(Point{X: 160, Y: 160}, 110, 30)
	assert.InDelta(t, 160, label.X, 1e-9)
	assert.InDelta(t, 270, label.Y, 1e-9)
}

func TestPaletteFor(t *testing.T) {
	for _, style := range model.Styles() {
		palette := PaletteFor(style)
		assert.NotEqual(t, color.NRGBA{}, palette.Sector, style)
	}
	assert.Equal(t, PaletteFor(model.StyleClassic), PaletteFor(model.Style("unknown")))
	assert.True(t, PaletteFor(model.StyleNeon).Glow)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x44, B: 0x44, A: 0xFF}, PaletteFor(model.StyleClassic).Sector)
}

func TestDialPixels(t *testing.T) {
	test.NewTempApp(t)
	palette := PaletteFor(model.StyleClassic)
	dial := New(palette)

	dial.SetFraction(0.25)
	assert.Equal(t, 0.25, dial.Fraction())
	assert.Equal(t, palette.Sector, dial.pixel(75, 20, 100, 100))
	assert.Equal(t, color.Transparent, dial.pixel(20, 20, 100, 100))
	assert.Equal(t, color.Transparent, dial.pixel(75, 75, 100, 100))

	dial.SetFraction(0)
	assert.Equal(t, color.Transparent, dial.pixel(75, 20, 100, 100))
}

func TestDialLayoutAndPalette(t *testing.T) {
	test.NewTempApp(t)
	dial := New(PaletteFor(model.StyleClassic))
	object := dial.Object()
	object.Resize(fyne.NewSize(320, 320))

	require.Len(t, dial.ticks, 60)
	require.Len(t, dial.labels, 12)
	assert.Equal(t, "0", dial.labels[0].Text)
	assert.Equal(t, "55", dial.labels[11].Text)
	assert.Equal(t, float32(304), dial.face.Size().Width)

	dial.SetPalette(PaletteFor(model.StyleNeon))
	assert.Equal(t, PaletteFor(model.StyleNeon).Face, dial.face.FillColor)
	assert.Equal(t, PaletteFor(model.StyleNeon).Number, dial.labels[0].Color)
	assert.GreaterOrEqual(t, object.MinSize().Width, float32(minDialSize))
}
