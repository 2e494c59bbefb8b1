package main

import (
	"github.com/spf13/cobra"

	gerber "github.com/MakerPnP/gerber-types"
	"github.com/MakerPnP/gerber-types/apertures"
	"github.com/MakerPnP/gerber-types/attributes"
	"github.com/MakerPnP/gerber-types/macros"
	"github.com/MakerPnP/gerber-types/xy"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Ucamco specification example 2.12.2, polarities and apertures",
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, shapesCommands())
	},
}

// coord converts a literal to a coordinate number. The literals below are
// fixed, so a conversion failure is a programming error.
func coord(v float64) xy.CoordinateNumber {
	c, err := xy.FromFloat(v)
	if err != nil {
		panic(err)
	}
	return c
}

func shapesCommands() gerber.Commands {
	cf := xy.NewCoordinateFormat(2, 6)
	vendor, application, version := generationSoftware()
	return gerber.Commands{
		gerber.NewComment("Ucamco ex. 2: Shapes"),
		gerber.FormatSpecification(cf),
		gerber.Inches,
		gerber.FileAttribute{Attribute: attributes.NewGenerationSoftware(vendor, application, version)},
		gerber.FileAttribute{Attribute: attributes.PartAttribute{Part: attributes.OtherPart("Only an example")}},
		gerber.Dark,
		gerber.NewComment("Define Apertures"),
		macros.NewApertureMacro("TARGET125", "6,0,0,0.125,0.01,0.01,3,0.003,0.15,0"),
		macros.NewApertureMacro("THERMAL80", "7,0,0,0.08,0.055,0.0125,45"),
		apertures.NewDefinition(10, apertures.NewCircle(0.01)),
		apertures.NewDefinition(11, apertures.NewCircle(0.06)),
		apertures.NewDefinition(12, apertures.NewRectangle(0.06, 0.06)),
		apertures.NewDefinition(13, apertures.NewRectangle(0.04, 0.1)),
		apertures.NewDefinition(14, apertures.NewRectangle(0.1, 0.04)),
		apertures.NewDefinition(15, apertures.NewObround(0.04, 0.1)),
		apertures.NewDefinition(16, apertures.NewPolygon(0.1, 3)),
		apertures.NewDefinition(18, apertures.NewMacro("TARGET125")),
		apertures.NewDefinition(19, apertures.NewMacro("THERMAL80")),
		gerber.NewComment("Start image generation"),
		gerber.SelectAperture(10),
		gerber.NewMove(xy.New(coord(0), coord(0.25), cf)),
		gerber.Linear,
		gerber.NewInterpolate(xy.NewInt[int8](0, 0, cf), nil),
		gerber.NewInterpolate(xy.New(coord(0.25), coord(0), cf), nil),
		gerber.NewMove(xy.NewInt[int8](1, 1, cf)),
		gerber.NewInterpolate(xy.AtX(coord(1.5), cf), nil),
		gerber.NewInterpolate(xy.New(coord(2), coord(1.5), cf), nil),
		gerber.NewMove(xy.AtX(coord(2.5), cf)),
		gerber.NewInterpolate(xy.AtYInt[int8](1, cf), nil),
		gerber.SelectAperture(11),
		gerber.NewFlash(xy.NewInt[int8](1, 1, cf)),
		gerber.NewFlash(xy.NewInt[int8](2, 1, cf)),
		gerber.NewFlash(xy.New(coord(2.5), coord(1), cf)),
		gerber.NewFlash(xy.New(coord(2.5), coord(1.5), cf)),
		gerber.NewFlash(xy.New(coord(2), coord(1.5), cf)),
		gerber.SelectAperture(12),
		gerber.NewFlash(xy.New(coord(1), coord(1.5), cf)),
		gerber.SelectAperture(13),
		gerber.NewFlash(xy.New(coord(3), coord(1.5), cf)),
		gerber.SelectAperture(14),
		gerber.NewFlash(xy.New(coord(3), coord(1.25), cf)),
		gerber.SelectAperture(15),
		gerber.NewFlash(xy.NewInt[int8](3, 1, cf)),
		gerber.SelectAperture(10),
		gerber.NewMove(xy.New(coord(3.75), coord(1), cf)),
		gerber.MultiQuadrant,
		gerber.CounterclockwiseCircular,
		interpolateOffset(xy.New(coord(3.75), coord(1), cf), xy.NewOffset(coord(0.25), coord(0), cf)),
		gerber.SelectAperture(16),
		gerber.NewFlash(xy.New(coord(3.4), coord(1), cf)),
		gerber.NewFlash(xy.New(coord(3.5), coord(0.9), cf)),
		gerber.SelectAperture(10),
		gerber.RegionMode(true),
		gerber.NewMove(xy.New(coord(0.5), coord(2), cf)),
		gerber.Linear,
		gerber.NewInterpolate(xy.AtY(coord(3.75), cf), nil),
		gerber.NewInterpolate(xy.AtX(coord(3.75), cf), nil),
		gerber.NewInterpolate(xy.AtYInt[int8](2, cf), nil),
		gerber.NewInterpolate(xy.AtX(coord(0.5), cf), nil),
		gerber.RegionMode(false),
		gerber.SelectAperture(18),
		gerber.NewFlash(xy.New(coord(0), coord(3.875), cf)),
		gerber.NewFlash(xy.New(coord(3.875), coord(3.875), cf)),
		gerber.Clear,
		gerber.RegionMode(true),
		gerber.NewMove(xy.New(coord(1), coord(2.5), cf)),
		gerber.NewInterpolate(xy.AtYInt[int8](3, cf), nil),
		gerber.SingleQuadrant,
		gerber.ClockwiseCircular,
		interpolateOffset(xy.New(coord(1.25), coord(3.25), cf), xy.NewOffset(coord(0.25), coord(0), cf)),
		gerber.Linear,
		gerber.NewInterpolate(xy.AtXInt[int8](3, cf), nil),
		gerber.MultiQuadrant,
		gerber.ClockwiseCircular,
		interpolateOffset(xy.New(coord(3), coord(2.5), cf), xy.NewOffset(coord(0), coord(0.375), cf)),
		gerber.Linear,
		gerber.NewInterpolate(xy.AtXInt[int8](1, cf), nil),
		gerber.RegionMode(false),
		gerber.Dark,
		gerber.SelectAperture(10),
		gerber.NewMove(xy.New(coord(1.5), coord(2.875), cf)),
		gerber.NewInterpolate(xy.AtXInt[int8](2, cf), nil),
		gerber.SelectAperture(11),
		gerber.NewFlash(xy.New(coord(1.5), coord(2.875), cf)),
		gerber.NewFlash(xy.AtXInt[int8](2, cf)),
		gerber.SelectAperture(19),
		gerber.NewFlash(xy.New(coord(2.875), coord(2.875), cf)),
		gerber.FileAttribute{Attribute: attributes.MD5("6ab9e892830469cdff7e3e346331d404")},
		gerber.EndOfFile{},
	}
}

func interpolateOffset(c xy.Coordinates, o xy.CoordinateOffset) gerber.Interpolate {
	return gerber.NewInterpolate(c, &o)
}
