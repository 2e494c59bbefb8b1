// Coordinate types for Gerber code generation: the coordinate format, the
// fixed-point coordinate number and the X/Y and I/J pairs built from it.
package xy

import (
	"io"
	"math"
	"strconv"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
)

// Internal resolution of a coordinate number: 6 decimal places, i.e. one
// unit is 10^-6 of the declared coordinate unit.
const DecimalPlacesChars = 6
const DecimalPlacesFactor int64 = 1_000_000

/*
############################ format specification ############################
*/

// CoordinateFormat specifies the number of integer and decimal places in a
// coordinate number. For example the `24` format specifies 2 integer and 4
// decimal places. The number of decimal places must be 4, 5 or 6 and the
// number of integer places not more than 6, so the longest representable
// coordinate number is `nnnnnn.nnnnnn`.
//
// Construction performs no validation. Out-of-range digit counts are only
// rejected when the format is used to render or validate a number.
type CoordinateFormat struct {
	Integer uint8
	Decimal uint8
}

func NewCoordinateFormat(integer, decimal uint8) CoordinateFormat {
	return CoordinateFormat{Integer: integer, Decimal: decimal}
}

/*
############################ coordinate number ###############################
*/

// CoordinateNumber is a coordinate value stored as a 64 bit integer with 6
// decimal places. Coordinate numbers render as plain integers conforming
// to the rules set by the FS command; explicit decimal points are not
// allowed. Values are immutable once constructed.
type CoordinateNumber struct {
	nano int64
}

// FromNano wraps a raw value in nano units (10^-6 of the coordinate unit).
func FromNano(nano int64) CoordinateNumber {
	return CoordinateNumber{nano: nano}
}

// SmallInt covers the integer widths that can be multiplied by
// DecimalPlacesFactor without any risk of an int64 overflow. Wider widths
// are deliberately not supported.
type SmallInt interface {
	~int8 | ~int16 | ~uint8 | ~uint16
}

// FromInt converts a small integer exactly. It cannot fail.
func FromInt[T SmallInt](val T) CoordinateNumber {
	return CoordinateNumber{nano: int64(val) * DecimalPlacesFactor}
}

// FromFloat converts a floating point value to a coordinate number. NaN
// and infinite inputs fail with a ConversionError, zero and subnormal
// inputs collapse to exactly 0. The scaled product is truncated toward
// zero; rounding happens only when rendering.
func FromFloat(val float64) (CoordinateNumber, error) {
	switch {
	case math.IsNaN(val):
		return CoordinateNumber{}, &gerberbasetypes.ConversionError{Reason: "value is NaN"}
	case math.IsInf(val, 0):
		return CoordinateNumber{}, &gerberbasetypes.ConversionError{Reason: "value is infinite"}
	case isZeroOrSubnormal(val):
		return CoordinateNumber{}, nil
	}
	multiplied := val * float64(DecimalPlacesFactor)
	if multiplied > float64(math.MaxInt64) || multiplied < float64(math.MinInt64) {
		return CoordinateNumber{}, &gerberbasetypes.ConversionError{Reason: "value is out of bounds"}
	}
	return CoordinateNumber{nano: int64(multiplied)}, nil
}

// zero exponent bits means the value is zero or subnormal
func isZeroOrSubnormal(f float64) bool {
	return math.Float64bits(f)&0x7ff0000000000000 == 0
}

// Nano returns the raw value in nano units.
func (c CoordinateNumber) Nano() int64 {
	return c.nano
}

// Float converts back to a floating point value, lossy only to the extent
// IEEE-754 doubles are.
func (c CoordinateNumber) Float() float64 {
	return float64(c.nano) / float64(DecimalPlacesFactor)
}

// Validate checks that the number fits the given format: the requested
// precision must not exceed the internal resolution and the magnitude must
// stay below 10^(integer+6) nano units.
func (c CoordinateNumber) Validate(format CoordinateFormat) error {
	if format.Decimal > DecimalPlacesChars {
		return &gerberbasetypes.CoordinateFormatError{Reason: "invalid precision: too high"}
	}
	if format.Integer > 6 {
		return &gerberbasetypes.CoordinateFormatError{Reason: "invalid format: too many integer digits"}
	}
	if absInt64(c.nano) >= pow10(int(format.Integer)+DecimalPlacesChars) {
		return &gerberbasetypes.CoordinateFormatError{Reason: "number is too large for the chosen format"}
	}
	return nil
}

// Gerber renders the number under the given format. The stored nano value
// is divided by 10^(6-decimal) and the quotient rounded half away from
// zero, then emitted as a plain decimal integer string. Negative values
// carry a leading '-'; there is never an explicit '+'.
func (c CoordinateNumber) Gerber(format CoordinateFormat) (string, error) {
	if err := c.Validate(format); err != nil {
		return "", err
	}
	divisor := pow10(DecimalPlacesChars - int(format.Decimal))
	quotient := c.nano / divisor
	remainder := absInt64(c.nano % divisor)
	if remainder*2 >= divisor {
		if c.nano < 0 {
			quotient--
		} else {
			quotient++
		}
	}
	return strconv.FormatInt(quotient, 10), nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

/*
############################### coordinates ##################################
*/

// Coordinates are part of an operation.
//
// Coordinates are modal: if an axis is omitted the corresponding value of
// the current point is used. This layer does not track the current point,
// it only renders what is present. It is not valid for both X and Y to be
// omitted; Validate enforces that, rendering does not.
type Coordinates struct {
	X      *CoordinateNumber
	Y      *CoordinateNumber
	Format CoordinateFormat
}

func New(x, y CoordinateNumber, format CoordinateFormat) Coordinates {
	return Coordinates{X: &x, Y: &y, Format: format}
}

func NewInt[T SmallInt](x, y T, format CoordinateFormat) Coordinates {
	return New(FromInt(x), FromInt(y), format)
}

// AtX constructs coordinates with only the X axis present.
func AtX(x CoordinateNumber, format CoordinateFormat) Coordinates {
	return Coordinates{X: &x, Format: format}
}

func AtXInt[T SmallInt](x T, format CoordinateFormat) Coordinates {
	return AtX(FromInt(x), format)
}

// AtY constructs coordinates with only the Y axis present.
func AtY(y CoordinateNumber, format CoordinateFormat) Coordinates {
	return Coordinates{Y: &y, Format: format}
}

func AtYInt[T SmallInt](y T, format CoordinateFormat) Coordinates {
	return AtY(FromInt(y), format)
}

// Validate fails with ErrEmptyCoordinates when both axes are absent,
// otherwise every present axis must pass the per-axis format check.
func (c Coordinates) Validate() error {
	return validateAxes(c.X, c.Y, c.Format)
}

// SerializePartial renders the X value then the Y value, each with its
// letter prefix, omitting absent axes entirely. Rendering is total with
// respect to absence: an empty pair renders as nothing.
func (c Coordinates) SerializePartial(w io.Writer) error {
	return serializeAxes(w, 'X', 'Y', c.X, c.Y, c.Format)
}

/*
############################ coordinate offsets ##############################
*/

// CoordinateOffset is an I/J offset pair used by interpolate operations in
// circular interpolation mode. It is not valid for both axes to be
// omitted; Validate enforces that, rendering does not.
type CoordinateOffset struct {
	X      *CoordinateNumber
	Y      *CoordinateNumber
	Format CoordinateFormat
}

func NewOffset(x, y CoordinateNumber, format CoordinateFormat) CoordinateOffset {
	return CoordinateOffset{X: &x, Y: &y, Format: format}
}

func NewOffsetInt[T SmallInt](x, y T, format CoordinateFormat) CoordinateOffset {
	return NewOffset(FromInt(x), FromInt(y), format)
}

// OffsetAtX constructs an offset with only the I axis present.
func OffsetAtX(x CoordinateNumber, format CoordinateFormat) CoordinateOffset {
	return CoordinateOffset{X: &x, Format: format}
}

func OffsetAtXInt[T SmallInt](x T, format CoordinateFormat) CoordinateOffset {
	return OffsetAtX(FromInt(x), format)
}

// OffsetAtY constructs an offset with only the J axis present.
func OffsetAtY(y CoordinateNumber, format CoordinateFormat) CoordinateOffset {
	return CoordinateOffset{Y: &y, Format: format}
}

func OffsetAtYInt[T SmallInt](y T, format CoordinateFormat) CoordinateOffset {
	return OffsetAtY(FromInt(y), format)
}

func (c CoordinateOffset) Validate() error {
	return validateAxes(c.X, c.Y, c.Format)
}

// SerializePartial renders the I value then the J value, omitting absent
// axes entirely.
func (c CoordinateOffset) SerializePartial(w io.Writer) error {
	return serializeAxes(w, 'I', 'J', c.X, c.Y, c.Format)
}

/*
############################### shared helpers ###############################
*/

func validateAxes(x, y *CoordinateNumber, format CoordinateFormat) error {
	if x == nil && y == nil {
		return gerberbasetypes.ErrEmptyCoordinates
	}
	if x != nil {
		if err := x.Validate(format); err != nil {
			return err
		}
	}
	if y != nil {
		if err := y.Validate(format); err != nil {
			return err
		}
	}
	return nil
}

func serializeAxes(w io.Writer, xLetter, yLetter byte, x, y *CoordinateNumber, format CoordinateFormat) error {
	if x != nil {
		if err := serializeAxis(w, xLetter, *x, format); err != nil {
			return err
		}
	}
	if y != nil {
		if err := serializeAxis(w, yLetter, *y, format); err != nil {
			return err
		}
	}
	return nil
}

func serializeAxis(w io.Writer, letter byte, value CoordinateNumber, format CoordinateFormat) error {
	number, err := value.Gerber(format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(letter)+number)
	return err
}
