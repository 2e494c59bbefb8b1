// Aperture macro (AM) support: macro definitions and the decimal values,
// variable references and arithmetic expressions used as macro arguments.
package macros

import (
	"io"
	"strconv"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
)

/*
############################## macro decimals ################################
*/

// MacroDecimal is a single argument of a macro invocation or primitive: a
// literal decimal, a `$n` variable reference or a raw arithmetic
// expression.
type MacroDecimal interface {
	gerberbasetypes.PartialGerberCoder
	macroDecimal()
}

// Value is a literal decimal argument.
type Value float64

func (v Value) macroDecimal() {}

func (v Value) SerializePartial(w io.Writer) error {
	return gerberbasetypes.WriteDecimal(w, float64(v))
}

// Variable is a `$n` macro variable reference.
type Variable uint32

func (v Variable) macroDecimal() {}

func (v Variable) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "$"+strconv.FormatUint(uint64(v), 10))
	return err
}

// Expression is an arithmetic expression over variables and literals,
// emitted verbatim. The content is not parsed or checked.
type Expression string

func (e Expression) macroDecimal() {}

func (e Expression) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(e))
	return err
}

/*
############################## aperture macro ################################
*/

// ApertureMacro is an AM command. Content holds the primitive and variable
// definition statements verbatim, one statement per entry, without the
// trailing `*` delimiters.
type ApertureMacro struct {
	Name    string
	Content []string
}

func NewApertureMacro(name string, content ...string) ApertureMacro {
	return ApertureMacro{Name: name, Content: content}
}

// SerializePartial writes the body of the command without the enclosing
// `%` delimiters.
func (m ApertureMacro) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, "AM"+m.Name+"*"); err != nil {
		return err
	}
	for _, statement := range m.Content {
		if _, err := io.WriteString(w, "\n"+statement+"*"); err != nil {
			return err
		}
	}
	return nil
}

func (m ApertureMacro) Serialize(w io.Writer) error {
	if _, err := io.WriteString(w, "%"); err != nil {
		return err
	}
	if err := m.SerializePartial(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "%\n")
	return err
}
