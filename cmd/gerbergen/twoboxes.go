package main

import (
	"github.com/spf13/cobra"

	gerber "github.com/MakerPnP/gerber-types"
	"github.com/MakerPnP/gerber-types/apertures"
	"github.com/MakerPnP/gerber-types/attributes"
	"github.com/MakerPnP/gerber-types/xy"
)

var twoBoxesCmd = &cobra.Command{
	Use:   "two-boxes",
	Short: "Ucamco specification example 2.11.1, two square boxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, twoBoxesCommands())
	},
}

func twoBoxesCommands() gerber.Commands {
	cf := xy.NewCoordinateFormat(2, 6)
	vendor, application, version := generationSoftware()
	return gerber.Commands{
		gerber.NewComment("Ucamco ex. 1: Two square boxes"),
		gerber.Millimeters,
		gerber.FormatSpecification(cf),
		gerber.FileAttribute{Attribute: attributes.NewGenerationSoftware(vendor, application, version)},
		gerber.FileAttribute{Attribute: attributes.PartAttribute{Part: attributes.OtherPart("example")}},
		gerber.Dark,
		apertures.NewDefinition(10, apertures.NewCircle(0.01)),
		gerber.SelectAperture(10),
		gerber.NewMove(xy.NewInt[int8](0, 0, cf)),
		gerber.Linear,
		gerber.NewInterpolate(xy.NewInt[int8](5, 0, cf), nil),
		gerber.NewInterpolate(xy.AtYInt[int8](5, cf), nil),
		gerber.NewInterpolate(xy.AtXInt[int8](0, cf), nil),
		gerber.NewInterpolate(xy.AtYInt[int8](0, cf), nil),
		gerber.NewMove(xy.AtXInt[int8](6, cf)),
		gerber.NewInterpolate(xy.AtXInt[int8](11, cf), nil),
		gerber.NewInterpolate(xy.AtYInt[int8](5, cf), nil),
		gerber.NewInterpolate(xy.AtXInt[int8](6, cf), nil),
		gerber.NewInterpolate(xy.AtYInt[int8](0, cf), nil),
		gerber.EndOfFile{},
	}
}
