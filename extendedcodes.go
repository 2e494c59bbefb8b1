// Extended codes: the % delimited commands.

package gerber

import (
	"io"
	"strconv"

	"github.com/MakerPnP/gerber-types/attributes"
	"github.com/MakerPnP/gerber-types/gerberbasetypes"
	"github.com/MakerPnP/gerber-types/xy"
)

/*
############################ format and unit #################################
*/

// FormatSpecification is the FS command declaring the coordinate format.
// Leading zero omission and absolute coordinates are the only valid
// choices in current files, so the LA part is fixed.
type FormatSpecification xy.CoordinateFormat

func (f FormatSpecification) Serialize(w io.Writer) error {
	digits := strconv.Itoa(int(f.Integer)) + strconv.Itoa(int(f.Decimal))
	_, err := io.WriteString(w, "%FSLAX"+digits+"Y"+digits+"*%\n")
	return err
}

// Unit is the MO command setting the file unit.
type Unit int

const (
	Inches Unit = iota + 1
	Millimeters
)

func (u Unit) String() string {
	if u == Inches {
		return "IN"
	}
	return "MM"
}

func (u Unit) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%MO"+u.String()+"*%\n")
	return err
}

/*
######################### aperture transformations ###########################
*/

// Polarity is the LP command setting the object polarity.
type Polarity int

const (
	Clear Polarity = iota + 1
	Dark
)

func (p Polarity) Serialize(w io.Writer) error {
	value := "D"
	if p == Clear {
		value = "C"
	}
	_, err := io.WriteString(w, "%LP"+value+"*%\n")
	return err
}

// Mirroring is the LM command setting the object mirroring.
type Mirroring int

const (
	MirrorNone Mirroring = iota + 1
	MirrorX
	MirrorY
	MirrorXY
)

func (m Mirroring) String() string {
	switch m {
	case MirrorX:
		return "X"
	case MirrorY:
		return "Y"
	case MirrorXY:
		return "XY"
	default:
		return "N"
	}
}

func (m Mirroring) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%LM"+m.String()+"*%\n")
	return err
}

// Rotation is the LR command setting the object rotation in degrees
// counterclockwise.
type Rotation float64

func (r Rotation) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%LR"+gerberbasetypes.FormatDecimal(float64(r))+"*%\n")
	return err
}

// Scaling is the LS command setting the object scale factor.
type Scaling float64

func (s Scaling) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%LS"+gerberbasetypes.FormatDecimal(float64(s))+"*%\n")
	return err
}

/*
############################# block commands #################################
*/

// StepAndRepeat is an SR command opening a step and repeat block. The
// distances are in the unit of the file.
type StepAndRepeat struct {
	RepeatX   uint32
	RepeatY   uint32
	DistanceX float64
	DistanceY float64
}

func (s StepAndRepeat) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%SR"+
		"X"+strconv.FormatUint(uint64(s.RepeatX), 10)+
		"Y"+strconv.FormatUint(uint64(s.RepeatY), 10)+
		"I"+gerberbasetypes.FormatDecimal(s.DistanceX)+
		"J"+gerberbasetypes.FormatDecimal(s.DistanceY)+
		"*%\n")
	return err
}

// StepAndRepeatClose closes the current step and repeat block.
type StepAndRepeatClose struct{}

func (StepAndRepeatClose) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%SR*%\n")
	return err
}

// ApertureBlock is an AB command opening a block aperture bound to the
// given D-code.
type ApertureBlock int32

func (b ApertureBlock) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%AB"+strconv.FormatInt(int64(b), 10)+"*%\n")
	return err
}

// ApertureBlockClose closes the current block aperture.
type ApertureBlockClose struct{}

func (ApertureBlockClose) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%AB*%\n")
	return err
}

/*
############################ attribute commands ##############################
*/

// AttributeFragment renders an attribute command without the % wrapper,
// for embedding in standard comments.
type AttributeFragment interface {
	gerberbasetypes.PartialGerberCoder
	attributeFragment()
}

// FileAttribute is a TF command.
type FileAttribute struct {
	Attribute attributes.FileAttribute
}

func (a FileAttribute) attributeFragment() {}

func (a FileAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "TF"); err != nil {
		return err
	}
	return a.Attribute.SerializePartial(w)
}

func (a FileAttribute) Serialize(w io.Writer) error {
	return serializeWrapped(w, a)
}

// ApertureAttribute is a TA command. The attribute applies to apertures
// defined while it is in the attribute dictionary.
type ApertureAttribute struct {
	Attribute attributes.ApertureAttribute
}

func (a ApertureAttribute) attributeFragment() {}

func (a ApertureAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "TA"); err != nil {
		return err
	}
	return a.Attribute.SerializePartial(w)
}

func (a ApertureAttribute) Serialize(w io.Writer) error {
	return serializeWrapped(w, a)
}

// ObjectAttribute is a TO command. The attribute attaches to the objects
// created while it is in the attribute dictionary.
type ObjectAttribute struct {
	Attribute attributes.ObjectAttribute
}

func (a ObjectAttribute) attributeFragment() {}

func (a ObjectAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "TO"); err != nil {
		return err
	}
	return a.Attribute.SerializePartial(w)
}

func (a ObjectAttribute) Serialize(w io.Writer) error {
	return serializeWrapped(w, a)
}

// DeleteAttribute is a TD command removing an attribute from the
// dictionary. The name is emitted verbatim; an empty name deletes all
// attributes.
type DeleteAttribute string

func (d DeleteAttribute) attributeFragment() {}

func (d DeleteAttribute) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "TD"+string(d))
	return err
}

func (d DeleteAttribute) Serialize(w io.Writer) error {
	return serializeWrapped(w, d)
}

func serializeWrapped(w io.Writer, fragment AttributeFragment) error {
	if _, err := io.WriteString(w, "%"); err != nil {
		return err
	}
	if err := fragment.SerializePartial(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "*%\n")
	return err
}

/*
###################### deprecated image commands #############################
*/

// ImageMirroring is the deprecated MI command.
type ImageMirroring int

const (
	ImageMirrorNone ImageMirroring = iota + 1
	ImageMirrorA
	ImageMirrorB
	ImageMirrorAB
)

func (m ImageMirroring) String() string {
	switch m {
	case ImageMirrorA:
		return "A1"
	case ImageMirrorB:
		return "B1"
	case ImageMirrorAB:
		return "A1B1"
	default:
		return ""
	}
}

func (m ImageMirroring) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%MI"+m.String()+"*%\n")
	return err
}

// ImageOffset is the deprecated OF command. By default A=X and B=Y, per
// the axis select command. Zero offsets are omitted.
type ImageOffset struct {
	A float64
	B float64
}

func (o ImageOffset) Serialize(w io.Writer) error {
	return serializeAB(w, "%OF", o.A, o.B)
}

// ImageScaling is the deprecated SF command. Zero factors are omitted.
type ImageScaling struct {
	A float64
	B float64
}

func (s ImageScaling) Serialize(w io.Writer) error {
	return serializeAB(w, "%SF", s.A, s.B)
}

func serializeAB(w io.Writer, prefix string, a, b float64) error {
	value := prefix
	if a != 0 {
		value += "A" + gerberbasetypes.FormatDecimal(a)
	}
	if b != 0 {
		value += "B" + gerberbasetypes.FormatDecimal(b)
	}
	_, err := io.WriteString(w, value+"*%\n")
	return err
}

// ImageRotation is the deprecated IR command.
type ImageRotation int

const (
	ImageRotationNone ImageRotation = iota + 1
	ImageRotation90
	ImageRotation180
	ImageRotation270
)

func (r ImageRotation) String() string {
	switch r {
	case ImageRotation90:
		return "90"
	case ImageRotation180:
		return "180"
	case ImageRotation270:
		return "270"
	default:
		return "0"
	}
}

func (r ImageRotation) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%IR"+r.String()+"*%\n")
	return err
}

// ImagePolarity is the deprecated IP command.
type ImagePolarity int

const (
	ImagePolarityPositive ImagePolarity = iota + 1
	ImagePolarityNegative
)

func (p ImagePolarity) Serialize(w io.Writer) error {
	value := "POS"
	if p == ImagePolarityNegative {
		value = "NEG"
	}
	_, err := io.WriteString(w, "%IP"+value+"*%\n")
	return err
}

// AxisSelect is the deprecated AS command mapping the A and B axes to X
// and Y.
type AxisSelect int

const (
	AXBY AxisSelect = iota + 1
	AYBX
)

func (a AxisSelect) Serialize(w io.Writer) error {
	value := "AXBY"
	if a == AYBX {
		value = "AYBX"
	}
	_, err := io.WriteString(w, "%AS"+value+"*%\n")
	return err
}

// ImageName is the deprecated IN command.
type ImageName string

func (n ImageName) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, "%IN"+string(n)+"*%\n")
	return err
}
