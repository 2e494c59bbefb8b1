// Package gerber implements the low level building blocks of Gerber
// (RS-274X, aka Extended Gerber version 2) code generation. It focuses on
// the low level types and does not do any semantic checking.
//
// For example, you can use an aperture without defining it. This will
// generate syntactically valid but semantically invalid Gerber code, but
// this package won't complain.
//
// Every command implements the gerberbasetypes.GerberCoder interface,
// producing a full line of code terminated with a newline. Values that
// only render a fragment of a line implement
// gerberbasetypes.PartialGerberCoder instead.
package gerber

import (
	"io"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
)

// Command is a single full-line Gerber command.
type Command = gerberbasetypes.GerberCoder

// Commands is a sequence of commands serialized in order.
type Commands []Command

func (cs Commands) Serialize(w io.Writer) error {
	for _, c := range cs {
		if err := c.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}
