// Function codes: operations (D01/D02/D03), aperture selection, the G
// codes and the end of file marker.

package gerber

import (
	"io"
	"strconv"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
	"github.com/MakerPnP/gerber-types/xy"
)

/*
################################ operations ##################################
*/

// Interpolate is a D01 command: draw a line or arc from the current point
// to the given coordinates. The offset gives the arc center relative to
// the start point and is only meaningful in circular interpolation mode.
// Nil parts are omitted, leaving the corresponding values modal.
type Interpolate struct {
	Coordinates *xy.Coordinates
	Offset      *xy.CoordinateOffset
}

func NewInterpolate(coordinates xy.Coordinates, offset *xy.CoordinateOffset) Interpolate {
	return Interpolate{Coordinates: &coordinates, Offset: offset}
}

func (op Interpolate) Serialize(w io.Writer) error {
	if op.Coordinates != nil {
		if err := op.Coordinates.SerializePartial(w); err != nil {
			return err
		}
	}
	if op.Offset != nil {
		if err := op.Offset.SerializePartial(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "D01*\n")
	return err
}

// Move is a D02 command: move the current point without creating an
// object.
type Move struct {
	Coordinates *xy.Coordinates
}

func NewMove(coordinates xy.Coordinates) Move {
	return Move{Coordinates: &coordinates}
}

func (op Move) Serialize(w io.Writer) error {
	if op.Coordinates != nil {
		if err := op.Coordinates.SerializePartial(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "D02*\n")
	return err
}

// Flash is a D03 command: flash the current aperture at the given
// coordinates.
type Flash struct {
	Coordinates *xy.Coordinates
}

func NewFlash(coordinates xy.Coordinates) Flash {
	return Flash{Coordinates: &coordinates}
}

func (op Flash) Serialize(w io.Writer) error {
	if op.Coordinates != nil {
		if err := op.Coordinates.SerializePartial(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "D03*\n")
	return err
}

// SelectAperture is a Dnn command selecting the current aperture. Codes
// below 10 are reserved.
type SelectAperture int32

func (c SelectAperture) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "D"+strconv.FormatInt(int64(c), 10)+"*\n")
	return err
}

/*
################################# G codes ####################################
*/

// InterpolationMode selects how subsequent D01 operations are
// interpreted.
type InterpolationMode int

const (
	Linear InterpolationMode = iota + 1
	ClockwiseCircular
	CounterclockwiseCircular
)

func (m InterpolationMode) Serialize(w io.Writer) error {
	code := "G01*\n"
	switch m {
	case ClockwiseCircular:
		code = "G02*\n"
	case CounterclockwiseCircular:
		code = "G03*\n"
	}
	_, err := io.WriteString(w, code)
	return err
}

// RegionMode opens (G36) or closes (G37) a region statement.
type RegionMode bool

func (m RegionMode) Serialize(w io.Writer) error {
	code := "G37*\n"
	if m {
		code = "G36*\n"
	}
	_, err := io.WriteString(w, code)
	return err
}

// QuadrantMode selects the arc quadrant mode.
type QuadrantMode int

const (
	SingleQuadrant QuadrantMode = iota + 1
	MultiQuadrant
)

func (m QuadrantMode) Serialize(w io.Writer) error {
	code := "G74*\n"
	if m == MultiQuadrant {
		code = "G75*\n"
	}
	_, err := io.WriteString(w, code)
	return err
}

// Comment is a G04 command. Comments have no effect on the image.
type Comment struct {
	Content CommentContent
}

func NewComment(text string) Comment {
	return Comment{Content: PlainComment(text)}
}

func (c Comment) Serialize(w io.Writer) error {
	if _, err := io.WriteString(w, "G04 "); err != nil {
		return err
	}
	if err := c.Content.SerializePartial(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "*\n")
	return err
}

// CommentContent is the body of a G04 comment, either free text or a
// standard comment carrying an attribute.
type CommentContent interface {
	gerberbasetypes.PartialGerberCoder
	commentContent()
}

// PlainComment is free comment text, emitted verbatim.
type PlainComment string

func (c PlainComment) commentContent() {}

func (c PlainComment) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

// StandardComment carries an attribute inside a comment. The content is
// prefixed with "#@!" so readers can recover the meta-information without
// it affecting image generation.
type StandardComment struct {
	Attribute AttributeFragment
}

func (c StandardComment) commentContent() {}

func (c StandardComment) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "#@! "); err != nil {
		return err
	}
	return c.Attribute.SerializePartial(w)
}

// LegacyUnit is a G70/G71 unit command. Deprecated since December 2012,
// but still in use.
type LegacyUnit Unit

func (u LegacyUnit) Serialize(w io.Writer) error {
	code := "G71*\n"
	if Unit(u) == Inches {
		code = "G70*\n"
	}
	_, err := io.WriteString(w, code)
	return err
}

// CoordinateMode is a G90/G91 command. Deprecated since December 2012;
// only absolute coordinates are valid in current files.
type CoordinateMode int

const (
	Absolute CoordinateMode = iota + 1
	Incremental
)

func (m CoordinateMode) Serialize(w io.Writer) error {
	code := "G90*\n"
	if m == Incremental {
		code = "G91*\n"
	}
	_, err := io.WriteString(w, code)
	return err
}

// LegacySelectAperture is a G54 command preparing an aperture selection.
// Deprecated since December 2012, but still in use.
type LegacySelectAperture struct{}

func (LegacySelectAperture) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "G54*\n")
	return err
}

/*
################################# M codes ####################################
*/

// EndOfFile is the M02 command. It must be the last command of a file.
type EndOfFile struct{}

func (EndOfFile) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "M02*\n")
	return err
}
