package glyphsvg

import (
	"math"

	"github.com/tdewolff/canvas"
)

// Pather is an interface to receive a glyph's path, it is compatible with font.Pather and canvas.Path.
type Pather interface {
	MoveTo(float64, float64)
	LineTo(float64, float64)
	QuadTo(float64, float64, float64, float64)
	CubeTo(float64, float64, float64, float64, float64, float64)
	Close()
}

// SegmentOp is a path drawing command.
type SegmentOp int

// see SegmentOp
const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

func (op SegmentOp) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubeTo:
		return "CubeTo"
	case Close:
		return "Close"
	}
	return "Invalid"
}

// NumPoints returns the number of points the command takes.
func (op SegmentOp) NumPoints() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	}
	return 0
}

// Point is a coordinate in font design units.
type Point struct {
	X, Y float64
}

// Segment is a single drawing command. Only the first Op.NumPoints() arguments are used.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is a glyph's sequence of drawing commands in font design units, with the Y axis pointing up.
type Outline []Segment

func (o *Outline) MoveTo(x, y float64) {
	*o = append(*o, Segment{Op: MoveTo, Args: [3]Point{{x, y}}})
}

func (o *Outline) LineTo(x, y float64) {
	*o = append(*o, Segment{Op: LineTo, Args: [3]Point{{x, y}}})
}

func (o *Outline) QuadTo(cpx, cpy, x, y float64) {
	*o = append(*o, Segment{Op: QuadTo, Args: [3]Point{{cpx, cpy}, {x, y}}})
}

func (o *Outline) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	*o = append(*o, Segment{Op: CubeTo, Args: [3]Point{{cpx1, cpy1}, {cpx2, cpy2}, {x, y}}})
}

func (o *Outline) Close() {
	*o = append(*o, Segment{Op: Close})
}

// Empty returns true if the outline references no points.
func (o Outline) Empty() bool {
	for _, seg := range o {
		if 0 < seg.Op.NumPoints() {
			return false
		}
	}
	return true
}

// Replay draws the outline to p.
func (o Outline) Replay(p Pather) {
	for _, seg := range o {
		a := seg.Args
		switch seg.Op {
		case MoveTo:
			p.MoveTo(a[0].X, a[0].Y)
		case LineTo:
			p.LineTo(a[0].X, a[0].Y)
		case QuadTo:
			p.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case CubeTo:
			p.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		case Close:
			p.Close()
		}
	}
}

// Bounds returns the rectangle enclosing all points of the outline, control points included. It returns false when the outline has no points.
func (o Outline) Bounds() (Rect, bool) {
	p := newBoundsPather()
	o.Replay(p)
	if p.empty {
		return Rect{}, false
	}
	return p.Rect, true
}

// CurveBounds returns the exact bounding box of the outline's curves, which may be smaller than Bounds since control points are excluded. It returns false when the outline has no points.
func (o Outline) CurveBounds() (Rect, bool) {
	if o.Empty() {
		return Rect{}, false
	}
	p := &canvas.Path{}
	o.Replay(p)
	r := p.Bounds()
	return Rect{r.X0, r.Y0, r.X1, r.Y1}, true
}

// Rect is a bounding box in font design units.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// W returns the width.
func (r Rect) W() float64 {
	return r.XMax - r.XMin
}

// H returns the height.
func (r Rect) H() float64 {
	return r.YMax - r.YMin
}

// Contains returns true if the point lies inside or on the border of the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return r.XMin <= x && x <= r.XMax && r.YMin <= y && y <= r.YMax
}

type boundsPather struct {
	Rect
	empty bool
}

func newBoundsPather() *boundsPather {
	return &boundsPather{
		Rect:  Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)},
		empty: true,
	}
}

func (p *boundsPather) add(x, y float64) {
	p.XMin = math.Min(p.XMin, x)
	p.XMax = math.Max(p.XMax, x)
	p.YMin = math.Min(p.YMin, y)
	p.YMax = math.Max(p.YMax, y)
	p.empty = false
}

func (p *boundsPather) MoveTo(x float64, y float64) {
	p.add(x, y)
}

func (p *boundsPather) LineTo(x float64, y float64) {
	p.add(x, y)
}

func (p *boundsPather) QuadTo(cpx float64, cpy float64, x float64, y float64) {
	p.add(cpx, cpy)
	p.add(x, y)
}

func (p *boundsPather) CubeTo(cpx1 float64, cpy1 float64, cpx2 float64, cpy2 float64, x float64, y float64) {
	p.add(cpx1, cpy1)
	p.add(cpx2, cpy2)
	p.add(x, y)
}

func (p *boundsPather) Close() {
}
