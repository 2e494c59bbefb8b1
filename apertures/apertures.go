// Aperture templates and aperture definitions (AD command).
package apertures

import (
	"io"
	"strconv"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
	"github.com/MakerPnP/gerber-types/macros"
)

// Aperture is one of the standard aperture templates or a macro
// invocation. Apertures render as the template part of an AD command,
// without the D-code.
type Aperture interface {
	gerberbasetypes.PartialGerberCoder
	aperture()
}

/*
############################ standard templates ##############################
*/

// Circle is the `C` template. A zero diameter is allowed and flashes a
// point.
type Circle struct {
	Diameter     float64
	HoleDiameter *float64
}

func NewCircle(diameter float64) Circle {
	return Circle{Diameter: diameter}
}

func (c Circle) WithHole(diameter float64) Circle {
	c.HoleDiameter = &diameter
	return c
}

func (c Circle) aperture() {}

func (c Circle) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "C,"+gerberbasetypes.FormatDecimal(c.Diameter)); err != nil {
		return err
	}
	return writeHole(w, c.HoleDiameter)
}

// Rectangular holds the common shape of the `R` and `O` templates: the X
// and Y sizes and an optional round hole.
type Rectangular struct {
	X            float64
	Y            float64
	HoleDiameter *float64
}

func NewRectangular(x, y float64) Rectangular {
	return Rectangular{X: x, Y: y}
}

func (r Rectangular) WithHole(diameter float64) Rectangular {
	r.HoleDiameter = &diameter
	return r
}

func (r Rectangular) serializeAs(w io.Writer, template string) error {
	_, err := io.WriteString(w, template+","+
		gerberbasetypes.FormatDecimal(r.X)+"X"+
		gerberbasetypes.FormatDecimal(r.Y))
	if err != nil {
		return err
	}
	return writeHole(w, r.HoleDiameter)
}

// Rectangle is the `R` template.
type Rectangle struct {
	Rectangular
}

func NewRectangle(x, y float64) Rectangle {
	return Rectangle{NewRectangular(x, y)}
}

func (r Rectangle) WithHole(diameter float64) Rectangle {
	return Rectangle{r.Rectangular.WithHole(diameter)}
}

func (r Rectangle) aperture() {}

func (r Rectangle) SerializePartial(w io.Writer) error {
	return r.serializeAs(w, "R")
}

// Obround is the `O` template, a rectangle with fully rounded short
// sides.
type Obround struct {
	Rectangular
}

func NewObround(x, y float64) Obround {
	return Obround{NewRectangular(x, y)}
}

func (o Obround) WithHole(diameter float64) Obround {
	return Obround{o.Rectangular.WithHole(diameter)}
}

func (o Obround) aperture() {}

func (o Obround) SerializePartial(w io.Writer) error {
	return o.serializeAs(w, "O")
}

// Polygon is the `P` template, a regular polygon given by its outer
// diameter and vertex count. The rotation is in degrees counterclockwise.
// A hole requires the rotation field to be present on the wire, so setting
// a hole on a polygon without a rotation forces rotation 0.
type Polygon struct {
	Diameter     float64
	Vertices     uint8
	Rotation     *float64
	HoleDiameter *float64
}

func NewPolygon(diameter float64, vertices uint8) Polygon {
	return Polygon{Diameter: diameter, Vertices: vertices}
}

func (p Polygon) WithRotation(degrees float64) Polygon {
	p.Rotation = &degrees
	return p
}

func (p Polygon) WithHole(diameter float64) Polygon {
	p.HoleDiameter = &diameter
	return p
}

func (p Polygon) aperture() {}

func (p Polygon) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "P,"+
		gerberbasetypes.FormatDecimal(p.Diameter)+"X"+
		strconv.FormatUint(uint64(p.Vertices), 10))
	if err != nil {
		return err
	}
	rotation := p.Rotation
	if rotation == nil && p.HoleDiameter != nil {
		zero := 0.0
		rotation = &zero
	}
	if rotation != nil {
		if _, err := io.WriteString(w, "X"+gerberbasetypes.FormatDecimal(*rotation)); err != nil {
			return err
		}
	}
	return writeHole(w, p.HoleDiameter)
}

func writeHole(w io.Writer, hole *float64) error {
	if hole == nil {
		return nil
	}
	_, err := io.WriteString(w, "X"+gerberbasetypes.FormatDecimal(*hole))
	return err
}

/*
############################ macro invocations ###############################
*/

// Macro invokes an aperture macro by name, with optional arguments. The
// arguments follow the name after a comma and are separated by `X`.
type Macro struct {
	Name     string
	Decimals []macros.MacroDecimal
}

func NewMacro(name string, decimals ...macros.MacroDecimal) Macro {
	return Macro{Name: name, Decimals: decimals}
}

func (m Macro) aperture() {}

func (m Macro) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, m.Name); err != nil {
		return err
	}
	for i, decimal := range m.Decimals {
		separator := "X"
		if i == 0 {
			separator = ","
		}
		if _, err := io.WriteString(w, separator); err != nil {
			return err
		}
		if err := decimal.SerializePartial(w); err != nil {
			return err
		}
	}
	return nil
}

/*
############################ aperture definition #############################
*/

// Definition is an AD command binding a D-code to an aperture. Codes below
// 10 are reserved and must not be used.
type Definition struct {
	Code     uint32
	Aperture Aperture
}

func NewDefinition(code uint32, aperture Aperture) Definition {
	return Definition{Code: code, Aperture: aperture}
}

// SerializePartial writes the D-code and the template, without the `%ADD`
// wrapper.
func (d Definition) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, strconv.FormatUint(uint64(d.Code), 10)); err != nil {
		return err
	}
	return d.Aperture.SerializePartial(w)
}

func (d Definition) Serialize(w io.Writer) error {
	if _, err := io.WriteString(w, "%ADD"); err != nil {
		return err
	}
	if err := d.SerializePartial(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "*%\n")
	return err
}
