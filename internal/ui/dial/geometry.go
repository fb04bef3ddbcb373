package dial

import "math"

// Point is a position in dial coordinates with y growing downwards.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// SectorAngle converts a remaining-time fraction into degrees of arc.
func SectorAngle(fraction float64) float64 {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction * 360
}

// ClockwiseAngle returns the angle of (x, y) around center, measured
// clockwise from 12 o'clock in [0, 360).
func ClockwiseAngle(center Point, x, y float64) float64 {
	angle := math.Atan2(x-center.X, center.Y-y) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// InSector reports whether (x, y) falls inside the remaining-time sector.
// The sector starts at 12 o'clock and sweeps clockwise by angle degrees.
func InSector(center Point, radius, angle, x, y float64) bool {
	if angle <= 0 {
		return false
	}
	dx := x - center.X
	dy := y - center.Y
	if dx*dx+dy*dy > radius*radius {
		return false
	}
	if angle >= 360 {
		return true
	}
	return ClockwiseAngle(center, x, y) <= angle
}

// PointAt returns the point at radius and clockwise angle from 12 o'clock.
func PointAt(center Point, radius, angle float64) Point {
	radians := angle * math.Pi / 180
	return Point{
		X: center.X + radius*math.Sin(radians),
		Y: center.Y - radius*math.Cos(radians),
	}
}

// TickMark returns the segment of minute tick i (0..59) for a tick of the
// given length drawn inwards from the rim.
func TickMark(center Point, radius float64, minute int, length float64) Segment {
	angle := float64(minute) * 6
	return Segment{
		From: PointAt(center, radius-length, angle),
		To:   PointAt(center, radius, angle),
	}
}

// LabelPosition returns where the label for minute is centered.
func LabelPosition(center Point, radius float64, minute int) Point {
	return PointAt(center, radius, float64(minute)*6)
}

// IsMajorTick reports whether minute carries a five-minute tick.
func IsMajorTick(minute int) bool {
	return minute%5 == 0
}
