package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	gerber "github.com/MakerPnP/gerber-types"
	"github.com/MakerPnP/gerber-types/apertures"
	"github.com/MakerPnP/gerber-types/attributes"
	"github.com/MakerPnP/gerber-types/xy"
)

// Job describes one Gerber file to generate.
type Job struct {
	Name   string `yaml:"name"`
	Unit   string `yaml:"unit"`
	Format struct {
		Integer uint8 `yaml:"integer"`
		Decimal uint8 `yaml:"decimal"`
	} `yaml:"format"`
	Part       string          `yaml:"part"`
	Project    *ProjectSpec    `yaml:"project"`
	Apertures  []ApertureSpec  `yaml:"apertures"`
	Operations []OperationSpec `yaml:"operations"`
}

type ProjectSpec struct {
	ID       string `yaml:"id"`
	UUID     string `yaml:"uuid"`
	Revision string `yaml:"revision"`
}

// ApertureSpec defines one AD command. Exactly one template must be set.
type ApertureSpec struct {
	Code      uint32         `yaml:"code"`
	Circle    *CircleSpec    `yaml:"circle"`
	Rectangle *RectangleSpec `yaml:"rectangle"`
	Obround   *RectangleSpec `yaml:"obround"`
	Polygon   *PolygonSpec   `yaml:"polygon"`
	Macro     string         `yaml:"macro"`
}

type CircleSpec struct {
	Diameter float64  `yaml:"diameter"`
	Hole     *float64 `yaml:"hole"`
}

type RectangleSpec struct {
	X    float64  `yaml:"x"`
	Y    float64  `yaml:"y"`
	Hole *float64 `yaml:"hole"`
}

type PolygonSpec struct {
	Diameter float64  `yaml:"diameter"`
	Vertices uint8    `yaml:"vertices"`
	Rotation *float64 `yaml:"rotation"`
	Hole     *float64 `yaml:"hole"`
}

// OperationSpec is one step of the image stream. Exactly one field must be
// set per list entry.
type OperationSpec struct {
	Comment  string     `yaml:"comment"`
	Select   *int32     `yaml:"select"`
	Move     *PointSpec `yaml:"move"`
	Draw     *PointSpec `yaml:"draw"`
	Flash    *PointSpec `yaml:"flash"`
	Mode     string     `yaml:"mode"`
	Polarity string     `yaml:"polarity"`
	Region   string     `yaml:"region"`
}

// PointSpec carries optional X/Y target axes and optional I/J arc offsets.
type PointSpec struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
	I *float64 `yaml:"i"`
	J *float64 `yaml:"j"`
}

func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}
	return &job, nil
}

// Commands converts the job into the ordered Gerber command stream.
func (j *Job) Commands() (gerber.Commands, error) {
	cf := xy.NewCoordinateFormat(j.Format.Integer, j.Format.Decimal)

	var commands gerber.Commands
	if j.Name != "" {
		commands = append(commands, gerber.NewComment(j.Name))
	}

	unit, err := parseUnit(j.Unit)
	if err != nil {
		return nil, err
	}
	commands = append(commands, unit, gerber.FormatSpecification(cf))

	vendor, application, version := generationSoftware()
	commands = append(commands,
		gerber.FileAttribute{Attribute: attributes.NewGenerationSoftware(vendor, application, version)})

	if j.Part != "" {
		part, err := parsePart(j.Part)
		if err != nil {
			return nil, err
		}
		commands = append(commands, gerber.FileAttribute{Attribute: attributes.PartAttribute{Part: part}})
	}

	if j.Project != nil {
		id := uuid.New()
		if j.Project.UUID != "" {
			id, err = uuid.Parse(j.Project.UUID)
			if err != nil {
				return nil, fmt.Errorf("project uuid: %w", err)
			}
		}
		commands = append(commands, gerber.FileAttribute{Attribute: attributes.ProjectID{
			ID:       j.Project.ID,
			UUID:     id,
			Revision: j.Project.Revision,
		}})
	}

	for _, spec := range j.Apertures {
		aperture, err := spec.aperture()
		if err != nil {
			return nil, err
		}
		commands = append(commands, apertures.NewDefinition(spec.Code, aperture))
	}

	for i, op := range j.Operations {
		command, err := op.command(cf)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		commands = append(commands, command)
	}

	commands = append(commands, gerber.EndOfFile{})
	return commands, nil
}

func (s ApertureSpec) aperture() (apertures.Aperture, error) {
	switch {
	case s.Circle != nil:
		c := apertures.NewCircle(s.Circle.Diameter)
		c.HoleDiameter = s.Circle.Hole
		return c, nil
	case s.Rectangle != nil:
		r := apertures.NewRectangle(s.Rectangle.X, s.Rectangle.Y)
		r.HoleDiameter = s.Rectangle.Hole
		return r, nil
	case s.Obround != nil:
		o := apertures.NewObround(s.Obround.X, s.Obround.Y)
		o.HoleDiameter = s.Obround.Hole
		return o, nil
	case s.Polygon != nil:
		p := apertures.NewPolygon(s.Polygon.Diameter, s.Polygon.Vertices)
		p.Rotation = s.Polygon.Rotation
		p.HoleDiameter = s.Polygon.Hole
		return p, nil
	case s.Macro != "":
		return apertures.NewMacro(s.Macro), nil
	}
	return nil, fmt.Errorf("aperture D%d: no template given", s.Code)
}

func (op OperationSpec) command(cf xy.CoordinateFormat) (gerber.Command, error) {
	switch {
	case op.Comment != "":
		return gerber.NewComment(op.Comment), nil
	case op.Select != nil:
		return gerber.SelectAperture(*op.Select), nil
	case op.Move != nil:
		coordinates, err := op.Move.coordinates(cf)
		if err != nil {
			return nil, err
		}
		return gerber.NewMove(coordinates), nil
	case op.Draw != nil:
		coordinates, err := op.Draw.coordinates(cf)
		if err != nil {
			return nil, err
		}
		offset, err := op.Draw.offset(cf)
		if err != nil {
			return nil, err
		}
		return gerber.NewInterpolate(coordinates, offset), nil
	case op.Flash != nil:
		coordinates, err := op.Flash.coordinates(cf)
		if err != nil {
			return nil, err
		}
		return gerber.NewFlash(coordinates), nil
	case op.Mode != "":
		return parseMode(op.Mode)
	case op.Polarity != "":
		return parsePolarity(op.Polarity)
	case op.Region != "":
		return parseRegion(op.Region)
	}
	return nil, fmt.Errorf("empty operation")
}

func (p PointSpec) coordinates(cf xy.CoordinateFormat) (xy.Coordinates, error) {
	x, err := axis(p.X)
	if err != nil {
		return xy.Coordinates{}, err
	}
	y, err := axis(p.Y)
	if err != nil {
		return xy.Coordinates{}, err
	}
	return xy.Coordinates{X: x, Y: y, Format: cf}, nil
}

func (p PointSpec) offset(cf xy.CoordinateFormat) (*xy.CoordinateOffset, error) {
	if p.I == nil && p.J == nil {
		return nil, nil
	}
	x, err := axis(p.I)
	if err != nil {
		return nil, err
	}
	y, err := axis(p.J)
	if err != nil {
		return nil, err
	}
	return &xy.CoordinateOffset{X: x, Y: y, Format: cf}, nil
}

func axis(v *float64) (*xy.CoordinateNumber, error) {
	if v == nil {
		return nil, nil
	}
	c, err := xy.FromFloat(*v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func parseUnit(s string) (gerber.Unit, error) {
	switch s {
	case "mm", "":
		return gerber.Millimeters, nil
	case "in":
		return gerber.Inches, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

func parsePart(s string) (attributes.Part, error) {
	switch s {
	case "single":
		return attributes.PartSingle, nil
	case "array":
		return attributes.PartArray, nil
	case "fabrication-panel":
		return attributes.PartFabricationPanel, nil
	case "coupon":
		return attributes.PartCoupon, nil
	}
	return nil, fmt.Errorf("unknown part %q", s)
}

func parseMode(s string) (gerber.InterpolationMode, error) {
	switch s {
	case "linear":
		return gerber.Linear, nil
	case "cw":
		return gerber.ClockwiseCircular, nil
	case "ccw":
		return gerber.CounterclockwiseCircular, nil
	}
	return 0, fmt.Errorf("unknown interpolation mode %q", s)
}

func parsePolarity(s string) (gerber.Polarity, error) {
	switch s {
	case "dark":
		return gerber.Dark, nil
	case "clear":
		return gerber.Clear, nil
	}
	return 0, fmt.Errorf("unknown polarity %q", s)
}

func parseRegion(s string) (gerber.RegionMode, error) {
	switch s {
	case "begin":
		return gerber.RegionMode(true), nil
	case "end":
		return gerber.RegionMode(false), nil
	}
	return false, fmt.Errorf("unknown region mode %q", s)
}
