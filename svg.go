package glyphsvg

import (
	"bytes"
)

// SVGMimetype is the media type of the output documents.
const SVGMimetype = "image/svg+xml"

// svgPather writes SVG path data. Coordinates are flipped vertically around y0 and shifted by x0, so that font space (Y up) maps onto the SVG canvas (Y down).
type svgPather struct {
	b      []byte
	x0, y0 float64
	prec   int
}

func (p *svgPather) cmd(c byte, coords ...float64) {
	p.b = append(p.b, c)
	for i := 0; i < len(coords); i += 2 {
		if i != 0 {
			p.b = append(p.b, ' ')
		}
		p.b = appendNum(p.b, coords[i]-p.x0, p.prec)
		p.b = append(p.b, ' ')
		p.b = appendNum(p.b, p.y0-coords[i+1], p.prec)
	}
}

func (p *svgPather) MoveTo(x, y float64) {
	p.cmd('M', x, y)
}

func (p *svgPather) LineTo(x, y float64) {
	p.cmd('L', x, y)
}

func (p *svgPather) QuadTo(cpx, cpy, x, y float64) {
	p.cmd('Q', cpx, cpy, x, y)
}

func (p *svgPather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.cmd('C', cpx1, cpy1, cpx2, cpy2, x, y)
}

func (p *svgPather) Close() {
	p.cmd('Z')
}

// PathData returns the outline as SVG path data, translated so that the bounds' top-left corner lies at (margin,margin) with the Y axis pointing down.
func PathData(outline Outline, bounds Rect, margin float64, prec int) string {
	p := &svgPather{
		x0:   bounds.XMin - margin,
		y0:   bounds.YMax + margin,
		prec: prec,
	}
	outline.Replay(p)
	return string(p.b)
}

// EncodeSVG returns an SVG document with a canvas sized to the outline's bounds plus margin on each side and a single path element. Outlines without points get a canvas of twice the margin and empty path data. Coordinates are rounded to prec decimals.
func EncodeSVG(outline Outline, margin float64, prec int) []byte {
	bounds, ok := outline.Bounds()
	if !ok {
		bounds = Rect{}
	}
	w := bounds.W() + 2.0*margin
	h := bounds.H() + 2.0*margin

	b := &bytes.Buffer{}
	num := make([]byte, 0, 16)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)
	b.Write(appendNum(num[:0], w, prec))
	b.WriteByte(' ')
	b.Write(appendNum(num[:0], h, prec))
	b.WriteString(`" width="`)
	b.Write(appendNum(num[:0], w, prec))
	b.WriteString(`" height="`)
	b.Write(appendNum(num[:0], h, prec))
	b.WriteString("\">\n<path d=\"")
	b.WriteString(PathData(outline, bounds, margin, prec))
	b.WriteString("\"/>\n</svg>\n")
	return b.Bytes()
}
