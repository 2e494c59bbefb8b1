// Base types for Gerber code generation
package gerberbasetypes

import (
	"errors"
	"io"
	"strconv"
)

/*
######################### serialization contracts ############################
*/

// GerberCoder is implemented by every top-level command. Serialize writes
// one or more complete lines of Gerber code, each terminated with '\n'.
// The implementation owns the terminator.
type GerberCoder interface {
	Serialize(w io.Writer) error
}

// PartialGerberCoder is implemented by values that render as a fragment of
// a line: no terminator. Full-line coders compose fragments between fixed
// literal delimiters. A PartialGerberCoder must never be used where a
// GerberCoder is required, the two are kept as separate interfaces so that
// the compiler enforces it.
type PartialGerberCoder interface {
	SerializePartial(w io.Writer) error
}

/*
############################### errors #######################################
*/

// ErrEmptyCoordinates reports a coordinate pair or offset pair with
// neither axis populated at validation time.
var ErrEmptyCoordinates = errors.New("coordinates: neither axis is set")

// ConversionError reports a floating point value that cannot be
// represented as a coordinate number.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return "conversion error: " + e.Reason
}

// CoordinateFormatError reports a coordinate number or precision that is
// incompatible with a coordinate format.
type CoordinateFormatError struct {
	Reason string
}

func (e *CoordinateFormatError) Error() string {
	return "coordinate format error: " + e.Reason
}

/*
############################ decimal rendering ###############################
*/

// FormatDecimal renders a decimal parameter as the Gerber spec wants them:
// shortest plain decimal notation, no exponent, no trailing zeros.
// 4.0 renders as "4", 0.01 renders as "0.01".
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteDecimal writes FormatDecimal(f) to w.
func WriteDecimal(w io.Writer, f float64) error {
	_, err := io.WriteString(w, FormatDecimal(f))
	return err
}
