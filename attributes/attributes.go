// File (TF), aperture (TA) and object (TO) attributes.
//
// Attribute values render as the body of the command, after the TF/TA/TO
// prefix. Standard attribute names carry a leading dot, user defined
// attribute names are emitted exactly as given.
package attributes

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
)

// FileAttribute is an attribute attached to the file as a whole (TF).
type FileAttribute interface {
	gerberbasetypes.PartialGerberCoder
	fileAttribute()
}

// ApertureAttribute is an attribute attached to an aperture definition
// (TA).
type ApertureAttribute interface {
	gerberbasetypes.PartialGerberCoder
	apertureAttribute()
}

// ObjectAttribute is an attribute attached to graphical objects (TO).
type ObjectAttribute interface {
	gerberbasetypes.PartialGerberCoder
	objectAttribute()
}

/*
################################# idents #####################################
*/

// Ident identifies a file or group of files, either by GUID or by name.
type Ident interface {
	gerberbasetypes.PartialGerberCoder
	ident()
}

type UUIDIdent uuid.UUID

func (u UUIDIdent) ident() {}

func (u UUIDIdent) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, uuid.UUID(u).String())
	return err
}

type NameIdent string

func (n NameIdent) ident() {}

func (n NameIdent) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(n))
	return err
}

/*
############################## file attributes ###############################
*/

// Part is the value of the .Part attribute, telling what the file
// represents.
type Part interface {
	gerberbasetypes.PartialGerberCoder
	part()
}

// PlainPart covers the .Part values without a payload.
type PlainPart string

const (
	PartSingle           PlainPart = "Single"
	PartArray            PlainPart = "Array"
	PartFabricationPanel PlainPart = "FabricationPanel"
	PartCoupon           PlainPart = "Coupon"
)

func (p PlainPart) part() {}

func (p PlainPart) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(p))
	return err
}

// OtherPart is a .Part value outside the standard set. The description is
// mandatory.
type OtherPart string

func (p OtherPart) part() {}

func (p OtherPart) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Other,"+string(p))
	return err
}

// PartAttribute is the .Part file attribute.
type PartAttribute struct {
	Part Part
}

func (a PartAttribute) fileAttribute() {}

func (a PartAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, ".Part,"); err != nil {
		return err
	}
	return a.Part.SerializePartial(w)
}

// FileFunctionAttribute is the .FileFunction file attribute.
type FileFunctionAttribute struct {
	Function FileFunction
}

func (a FileFunctionAttribute) fileAttribute() {}

func (a FileFunctionAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, ".FileFunction,"); err != nil {
		return err
	}
	return a.Function.SerializePartial(w)
}

// FilePolarity is the .FilePolarity file attribute.
type FilePolarity int

const (
	PolarityPositive FilePolarity = iota + 1
	PolarityNegative
)

func (p FilePolarity) fileAttribute() {}

func (p FilePolarity) SerializePartial(w io.Writer) error {
	value := "Positive"
	if p == PolarityNegative {
		value = "Negative"
	}
	_, err := io.WriteString(w, ".FilePolarity,"+value)
	return err
}

// SameCoordinates is the .SameCoordinates file attribute. A nil ident
// renders the attribute without a value.
type SameCoordinates struct {
	Ident Ident
}

func (s SameCoordinates) fileAttribute() {}

func (s SameCoordinates) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, ".SameCoordinates"); err != nil {
		return err
	}
	if s.Ident == nil {
		return nil
	}
	if _, err := io.WriteString(w, ","); err != nil {
		return err
	}
	return s.Ident.SerializePartial(w)
}

// CreationDate is the .CreationDate file attribute, rendered as RFC 3339
// with the time zone offset.
type CreationDate time.Time

func (d CreationDate) fileAttribute() {}

func (d CreationDate) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CreationDate,"+time.Time(d).Format(time.RFC3339))
	return err
}

// GenerationSoftware is the .GenerationSoftware file attribute. An empty
// version is omitted.
type GenerationSoftware struct {
	Vendor      string
	Application string
	Version     string
}

func NewGenerationSoftware(vendor, application, version string) GenerationSoftware {
	return GenerationSoftware{Vendor: vendor, Application: application, Version: version}
}

func (g GenerationSoftware) fileAttribute() {}

func (g GenerationSoftware) SerializePartial(w io.Writer) error {
	value := ".GenerationSoftware," + g.Vendor + "," + g.Application
	if g.Version != "" {
		value += "," + g.Version
	}
	_, err := io.WriteString(w, value)
	return err
}

// ProjectID is the .ProjectId file attribute.
type ProjectID struct {
	ID       string
	UUID     uuid.UUID
	Revision string
}

func (p ProjectID) fileAttribute() {}

func (p ProjectID) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".ProjectId,"+p.ID+","+p.UUID.String()+","+p.Revision)
	return err
}

// MD5 is the .MD5 file attribute holding the hex digest of the file
// content.
type MD5 string

func (m MD5) fileAttribute() {}

func (m MD5) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".MD5,"+string(m))
	return err
}

// UserDefined is a user defined attribute, usable in TF, TA and TO
// commands. The name is written exactly as given, so standard-style names
// need their own leading dot and values are not trimmed.
type UserDefined struct {
	Name   string
	Values []string
}

func (u UserDefined) fileAttribute()     {}
func (u UserDefined) apertureAttribute() {}
func (u UserDefined) objectAttribute()   {}

func (u UserDefined) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, u.Name); err != nil {
		return err
	}
	for _, value := range u.Values {
		if _, err := io.WriteString(w, ","+value); err != nil {
			return err
		}
	}
	return nil
}

/*
############################## file functions ################################
*/

// FileFunction is the value of the .FileFunction attribute. The casing of
// the rendered names follows the published vocabulary, which is not
// consistent ("Soldermask" but "AssemblyDrawing").
type FileFunction interface {
	gerberbasetypes.PartialGerberCoder
	fileFunction()
}

// Position is a board side.
type Position int

const (
	PositionTop Position = iota + 1
	PositionBottom
)

func (p Position) String() string {
	if p == PositionBottom {
		return "Bot"
	}
	return "Top"
}

// ExtendedPosition is a board side or an inner layer.
type ExtendedPosition int

const (
	ExtendedPositionTop ExtendedPosition = iota + 1
	ExtendedPositionInner
	ExtendedPositionBottom
)

func (p ExtendedPosition) String() string {
	switch p {
	case ExtendedPositionInner:
		return "Inr"
	case ExtendedPositionBottom:
		return "Bot"
	default:
		return "Top"
	}
}

// CopperType tells how a copper layer is used.
type CopperType int

const (
	CopperPlane CopperType = iota + 1
	CopperSignal
	CopperMixed
	CopperHatched
)

func (t CopperType) String() string {
	switch t {
	case CopperPlane:
		return "Plane"
	case CopperSignal:
		return "Signal"
	case CopperMixed:
		return "Mixed"
	default:
		return "Hatched"
	}
}

// PlatedDrill is the span type of a plated drill file.
type PlatedDrill int

const (
	PlatedThroughHole PlatedDrill = iota + 1
	PlatedBlind
	PlatedBuried
)

func (d PlatedDrill) String() string {
	switch d {
	case PlatedBlind:
		return "Blind"
	case PlatedBuried:
		return "Buried"
	default:
		return "PTH"
	}
}

// NonPlatedDrill is the span type of a non-plated drill file.
type NonPlatedDrill int

const (
	NonPlatedThroughHole NonPlatedDrill = iota + 1
	NonPlatedBlind
	NonPlatedBuried
)

func (d NonPlatedDrill) String() string {
	switch d {
	case NonPlatedBlind:
		return "Blind"
	case NonPlatedBuried:
		return "Buried"
	default:
		return "NPTH"
	}
}

// DrillRouteType labels the kind of holes a drill file contains.
type DrillRouteType int

const (
	RouteTypeDrill DrillRouteType = iota + 1
	RouteTypeRoute
	RouteTypeMixed
)

func (t DrillRouteType) String() string {
	switch t {
	case RouteTypeRoute:
		return "Rout"
	case RouteTypeMixed:
		return "Mixed"
	default:
		return "Drill"
	}
}

// Plating tells whether the board edge is plated. The zero value means
// unspecified and is omitted from the output.
type Plating int

const (
	PlatingPlated Plating = iota + 1
	PlatingNonPlated
)

func (p Plating) String() string {
	if p == PlatingNonPlated {
		return "NP"
	}
	return "P"
}

// Copper is a copper layer. Layer numbers count from the top of the
// board, starting at 1. The copper type is optional.
type Copper struct {
	Layer    int32
	Position ExtendedPosition
	Type     CopperType
}

func (f Copper) fileFunction() {}

func (f Copper) SerializePartial(w io.Writer) error {
	value := "Copper,L" + strconv.FormatInt(int64(f.Layer), 10) + "," + f.Position.String()
	if f.Type != 0 {
		value += "," + f.Type.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// Plated is a plated drill or rout file spanning the given copper layers.
type Plated struct {
	FromLayer int32
	ToLayer   int32
	Drill     PlatedDrill
	Label     DrillRouteType
}

func (f Plated) fileFunction() {}

func (f Plated) SerializePartial(w io.Writer) error {
	value := "Plated," + strconv.FormatInt(int64(f.FromLayer), 10) + "," +
		strconv.FormatInt(int64(f.ToLayer), 10) + "," + f.Drill.String()
	if f.Label != 0 {
		value += "," + f.Label.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// NonPlated is a non-plated drill or rout file spanning the given copper
// layers.
type NonPlated struct {
	FromLayer int32
	ToLayer   int32
	Drill     NonPlatedDrill
	Label     DrillRouteType
}

func (f NonPlated) fileFunction() {}

func (f NonPlated) SerializePartial(w io.Writer) error {
	value := "NonPlated," + strconv.FormatInt(int64(f.FromLayer), 10) + "," +
		strconv.FormatInt(int64(f.ToLayer), 10) + "," + f.Drill.String()
	if f.Label != 0 {
		value += "," + f.Label.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// Profile is the board outline file. The plating indication is optional.
type Profile struct {
	Plating Plating
}

func (f Profile) fileFunction() {}

func (f Profile) SerializePartial(w io.Writer) error {
	value := "Profile"
	if f.Plating != 0 {
		value += "," + f.Plating.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// KeepOut marks a keep-out layer.
type KeepOut struct {
	Position Position
}

func (f KeepOut) fileFunction() {}

func (f KeepOut) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Keepout,"+f.Position.String())
	return err
}

// PositionIndex is the common shape of the mask file functions: a board
// side and an optional index counting outward from the board.
type PositionIndex struct {
	Position Position
	Index    *int32
}

func (p PositionIndex) serializeAs(w io.Writer, name string) error {
	value := name + "," + p.Position.String()
	if p.Index != nil {
		value += "," + strconv.FormatInt(int64(*p.Index), 10)
	}
	_, err := io.WriteString(w, value)
	return err
}

type SolderMask struct{ PositionIndex }

func (f SolderMask) fileFunction() {}

func (f SolderMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Soldermask")
}

type Legend struct{ PositionIndex }

func (f Legend) fileFunction() {}

func (f Legend) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Legend")
}

type CarbonMask struct{ PositionIndex }

func (f CarbonMask) fileFunction() {}

func (f CarbonMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Carbonmask")
}

type GoldMask struct{ PositionIndex }

func (f GoldMask) fileFunction() {}

func (f GoldMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Goldmask")
}

type HeatsinkMask struct{ PositionIndex }

func (f HeatsinkMask) fileFunction() {}

func (f HeatsinkMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Heatsinkmask")
}

type PeelableMask struct{ PositionIndex }

func (f PeelableMask) fileFunction() {}

func (f PeelableMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Peelablemask")
}

type SilverMask struct{ PositionIndex }

func (f SilverMask) fileFunction() {}

func (f SilverMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Silvermask")
}

type TinMask struct{ PositionIndex }

func (f TinMask) fileFunction() {}

func (f TinMask) SerializePartial(w io.Writer) error {
	return f.serializeAs(w, "Tinmask")
}

// ComponentLayer is a component placement file for the given copper
// layer.
type ComponentLayer struct {
	Layer    int32
	Position Position
}

func (f ComponentLayer) fileFunction() {}

func (f ComponentLayer) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Component,L"+
		strconv.FormatInt(int64(f.Layer), 10)+","+f.Position.String())
	return err
}

type Paste struct{ Position Position }

func (f Paste) fileFunction() {}

func (f Paste) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Paste,"+f.Position.String())
	return err
}

type Glue struct{ Position Position }

func (f Glue) fileFunction() {}

func (f Glue) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Glue,"+f.Position.String())
	return err
}

type DepthRoute struct{ Position Position }

func (f DepthRoute) fileFunction() {}

func (f DepthRoute) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Depthrout,"+f.Position.String())
	return err
}

type Pads struct{ Position Position }

func (f Pads) fileFunction() {}

func (f Pads) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Pads,"+f.Position.String())
	return err
}

type AssemblyDrawing struct{ Position Position }

func (f AssemblyDrawing) fileFunction() {}

func (f AssemblyDrawing) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "AssemblyDrawing,"+f.Position.String())
	return err
}

// VCut marks a v-cut layer. The zero position covers both sides and is
// omitted from the output.
type VCut struct {
	Position Position
}

func (f VCut) fileFunction() {}

func (f VCut) SerializePartial(w io.Writer) error {
	value := "Vcut"
	if f.Position != 0 {
		value += "," + f.Position.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// PlainFileFunction covers the file functions without a payload.
type PlainFileFunction string

const (
	FileFunctionViaFill            PlainFileFunction = "Viafill"
	FileFunctionDrillMap           PlainFileFunction = "Drillmap"
	FileFunctionFabricationDrawing PlainFileFunction = "FabricationDrawing"
	FileFunctionVCutMap            PlainFileFunction = "Vcutmap"
	FileFunctionArrayDrawing       PlainFileFunction = "ArrayDrawing"
)

func (f PlainFileFunction) fileFunction() {}

func (f PlainFileFunction) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(f))
	return err
}

// OtherFileFunction is a data layer outside the standard vocabulary.
type OtherFileFunction string

func (f OtherFileFunction) fileFunction() {}

func (f OtherFileFunction) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Other,"+string(f))
	return err
}

// OtherDrawing is a drawing layer outside the standard vocabulary.
type OtherDrawing string

func (f OtherDrawing) fileFunction() {}

func (f OtherDrawing) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "OtherDrawing,"+string(f))
	return err
}

/*
############################ aperture attributes #############################
*/

// FunctionAttribute is the .AperFunction aperture attribute.
type FunctionAttribute struct {
	Function ApertureFunction
}

func (a FunctionAttribute) apertureAttribute() {}

func (a FunctionAttribute) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, ".AperFunction,"); err != nil {
		return err
	}
	return a.Function.SerializePartial(w)
}

// DrillTolerance is the .DrillTolerance aperture attribute. Both values
// are positive sizes in the unit of the file.
type DrillTolerance struct {
	Plus  float64
	Minus float64
}

func (a DrillTolerance) apertureAttribute() {}

func (a DrillTolerance) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".DrillTolerance,"+
		gerberbasetypes.FormatDecimal(a.Plus)+","+
		gerberbasetypes.FormatDecimal(a.Minus))
	return err
}

// TextMode tells how flashed text is rendered.
type TextMode int

const (
	TextModeBarCode TextMode = iota + 1
	TextModeCharacters
)

func (m TextMode) String() string {
	if m == TextModeCharacters {
		return "C"
	}
	return "B"
}

// TextMirroring tells whether flashed text reads normally or mirrored.
type TextMirroring int

const (
	TextReadable TextMirroring = iota + 1
	TextMirrored
)

func (m TextMirroring) String() string {
	if m == TextMirrored {
		return "M"
	}
	return "R"
}

// FlashText is the .FlashText aperture attribute, describing the text an
// aperture flashes. Fields left at their zero value render as empty,
// meaning the corresponding meta-data is not specified.
type FlashText struct {
	Text      string
	Mode      TextMode
	Mirroring TextMirroring
	Font      string
	Size      *int32
	Comment   string
}

func (a FlashText) apertureAttribute() {}

func (a FlashText) SerializePartial(w io.Writer) error {
	value := ".FlashText," + a.Text + "," + a.Mode.String() + ","
	if a.Mirroring != 0 {
		value += a.Mirroring.String()
	}
	value += "," + a.Font + ","
	if a.Size != nil {
		value += strconv.FormatInt(int64(*a.Size), 10)
	}
	value += "," + a.Comment
	_, err := io.WriteString(w, value)
	return err
}

/*
############################ aperture functions ##############################
*/

// ApertureFunction is the value of the .AperFunction attribute, telling
// what the objects created with an aperture are used for.
type ApertureFunction interface {
	gerberbasetypes.PartialGerberCoder
	apertureFunction()
}

// IPC4761ViaProtection is a via protection level per IPC-4761. The zero
// value means unspecified and is omitted from the output; ProtectionNone
// explicitly states the via is unprotected.
type IPC4761ViaProtection int

const (
	ProtectionIa IPC4761ViaProtection = iota + 1
	ProtectionIb
	ProtectionIIa
	ProtectionIIb
	ProtectionIIIa
	ProtectionIIIb
	ProtectionIVa
	ProtectionIVb
	ProtectionV
	ProtectionVI
	ProtectionVII
	ProtectionNone
)

func (p IPC4761ViaProtection) String() string {
	switch p {
	case ProtectionIa:
		return "Ia"
	case ProtectionIb:
		return "Ib"
	case ProtectionIIa:
		return "IIa"
	case ProtectionIIb:
		return "IIb"
	case ProtectionIIIa:
		return "IIIa"
	case ProtectionIIIb:
		return "IIIb"
	case ProtectionIVa:
		return "IVa"
	case ProtectionIVb:
		return "IVb"
	case ProtectionV:
		return "V"
	case ProtectionVI:
		return "VI"
	case ProtectionVII:
		return "VII"
	default:
		return "None"
	}
}

// ViaDrill marks via holes.
type ViaDrill struct {
	Protection IPC4761ViaProtection
}

func (f ViaDrill) apertureFunction() {}

func (f ViaDrill) SerializePartial(w io.Writer) error {
	value := "ViaDrill"
	if f.Protection != 0 {
		value += "," + f.Protection.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// ComponentDrillFunction refines a component drill.
type ComponentDrillFunction int

const ComponentDrillPressFit ComponentDrillFunction = iota + 1

// ComponentDrill marks holes for component leads. The zero function is
// omitted from the output.
type ComponentDrill struct {
	Function ComponentDrillFunction
}

func (f ComponentDrill) apertureFunction() {}

func (f ComponentDrill) SerializePartial(w io.Writer) error {
	value := "ComponentDrill"
	if f.Function == ComponentDrillPressFit {
		value += ",PressFit"
	}
	_, err := io.WriteString(w, value)
	return err
}

// DrillFunction refines a mechanical drill.
type DrillFunction int

const (
	DrillBreakout DrillFunction = iota + 1
	DrillTooling
	DrillOther
)

func (f DrillFunction) String() string {
	switch f {
	case DrillTooling:
		return "Tooling"
	case DrillOther:
		return "Other"
	default:
		return "Breakout"
	}
}

// MechanicalDrill marks mechanical drill holes. The zero function is
// omitted from the output.
type MechanicalDrill struct {
	Function DrillFunction
}

func (f MechanicalDrill) apertureFunction() {}

func (f MechanicalDrill) SerializePartial(w io.Writer) error {
	value := "MechanicalDrill"
	if f.Function != 0 {
		value += "," + f.Function.String()
	}
	_, err := io.WriteString(w, value)
	return err
}

// SmdPadType tells whether a pad size is defined by the copper or by the
// solder mask.
type SmdPadType int

const (
	CopperDefined SmdPadType = iota + 1
	SoldermaskDefined
)

func (t SmdPadType) String() string {
	if t == SoldermaskDefined {
		return "SMDef"
	}
	return "CuDef"
}

// SMDPad marks SMD pads.
type SMDPad struct {
	Type SmdPadType
}

func (f SMDPad) apertureFunction() {}

func (f SMDPad) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "SMDPad,"+f.Type.String())
	return err
}

// BGAPad marks BGA pads.
type BGAPad struct {
	Type SmdPadType
}

func (f BGAPad) apertureFunction() {}

func (f BGAPad) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "BGAPad,"+f.Type.String())
	return err
}

// FiducialScope is the scope of a fiducial marker.
type FiducialScope int

const (
	FiducialLocal FiducialScope = iota + 1
	FiducialGlobal
	FiducialPanel
)

func (s FiducialScope) String() string {
	switch s {
	case FiducialGlobal:
		return "Global"
	case FiducialPanel:
		return "Panel"
	default:
		return "Local"
	}
}

// FiducialPad marks fiducial pads.
type FiducialPad struct {
	Scope FiducialScope
}

func (f FiducialPad) apertureFunction() {}

func (f FiducialPad) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "FiducialPad,"+f.Scope.String())
	return err
}

// OutlineType selects which outline of a component is drawn.
type OutlineType int

const (
	OutlineBody OutlineType = iota + 1
	OutlineLead2Lead
	OutlineFootprint
	OutlineCourtyard
)

func (t OutlineType) String() string {
	switch t {
	case OutlineLead2Lead:
		return "Lead2Lead"
	case OutlineFootprint:
		return "Footprint"
	case OutlineCourtyard:
		return "Courtyard"
	default:
		return "Body"
	}
}

// ComponentOutline marks component outline objects.
type ComponentOutline struct {
	Outline OutlineType
}

func (f ComponentOutline) apertureFunction() {}

func (f ComponentOutline) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "ComponentOutline,"+f.Outline.String())
	return err
}

// PlainFunction covers the aperture functions without a payload,
// including the values deprecated by the 2024.05 revision.
type PlainFunction string

const (
	FunctionBackDrill        PlainFunction = "BackDrill"
	FunctionCastellatedDrill PlainFunction = "CastellatedDrill"
	FunctionComponentPad     PlainFunction = "ComponentPad"
	FunctionConnectorPad     PlainFunction = "ConnectorPad"
	FunctionHeatsinkPad      PlainFunction = "HeatsinkPad"
	FunctionViaPad           PlainFunction = "ViaPad"
	FunctionTestPad          PlainFunction = "TestPad"
	FunctionCastellatedPad   PlainFunction = "CastellatedPad"
	FunctionThermalReliefPad PlainFunction = "ThermalReliefPad"
	FunctionWasherPad        PlainFunction = "WasherPad"
	FunctionAntiPad          PlainFunction = "AntiPad"
	FunctionConductor        PlainFunction = "Conductor"
	FunctionEtchedComponent  PlainFunction = "EtchedComponent"
	FunctionNonConductor     PlainFunction = "NonConductor"
	FunctionCopperBalancing  PlainFunction = "CopperBalancing"
	FunctionBorder           PlainFunction = "Border"
	FunctionProfile          PlainFunction = "Profile"
	FunctionMaterial         PlainFunction = "Material"
	FunctionNonMaterial      PlainFunction = "NonMaterial"
	FunctionComponentMain    PlainFunction = "ComponentMain"
	FunctionComponentPin     PlainFunction = "ComponentPin"

	// deprecated since 2024.05
	FunctionSlot    PlainFunction = "Slot"
	FunctionCutOut  PlainFunction = "CutOut"
	FunctionCavity  PlainFunction = "Cavity"
	FunctionDrawing PlainFunction = "Drawing"
)

func (f PlainFunction) apertureFunction() {}

func (f PlainFunction) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, string(f))
	return err
}

// OtherDrill is a drill function outside the standard vocabulary.
type OtherDrill string

func (f OtherDrill) apertureFunction() {}

func (f OtherDrill) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "OtherDrill,"+string(f))
	return err
}

// OtherPad is a pad function outside the standard vocabulary.
type OtherPad string

func (f OtherPad) apertureFunction() {}

func (f OtherPad) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "OtherPad,"+string(f))
	return err
}

// OtherCopper is a copper function outside the standard vocabulary.
type OtherCopper string

func (f OtherCopper) apertureFunction() {}

func (f OtherCopper) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "OtherCopper,"+string(f))
	return err
}

// OtherFunction is an aperture function outside the standard vocabulary.
type OtherFunction string

func (f OtherFunction) apertureFunction() {}

func (f OtherFunction) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, "Other,"+string(f))
	return err
}

/*
############################# object attributes ##############################
*/

// Net is the .N object attribute, listing the nets an object connects. An
// empty list marks an object that is not part of a net. NotConnected
// marks a single pad that belongs to no net.
type Net []string

var NotConnected = Net{"N/C"}

func (n Net) objectAttribute() {}

func (n Net) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".N,"+strings.Join(n, ","))
	return err
}

// Pin is the .P object attribute, identifying a component pin. The
// function is optional.
type Pin struct {
	RefDes   string
	Name     string
	Function string
}

func (p Pin) objectAttribute() {}

func (p Pin) SerializePartial(w io.Writer) error {
	value := ".P," + p.RefDes + "," + p.Name
	if p.Function != "" {
		value += "," + p.Function
	}
	_, err := io.WriteString(w, value)
	return err
}

// Component is the .C object attribute, the reference descriptor of a
// component.
type Component string

func (c Component) objectAttribute() {}

func (c Component) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".C,"+string(c))
	return err
}

/*
gerber component characteristics, the .Cxxx object attribute family
*/

// Rotation is the .CRot characteristic, degrees counterclockwise.
type Rotation float64

func (r Rotation) objectAttribute() {}

func (r Rotation) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CRot,"+gerberbasetypes.FormatDecimal(float64(r)))
	return err
}

// Manufacturer is the .CMfr characteristic.
type Manufacturer string

func (m Manufacturer) objectAttribute() {}

func (m Manufacturer) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CMfr,"+string(m))
	return err
}

// MPN is the .CMPN characteristic, the manufacturer part number.
type MPN string

func (m MPN) objectAttribute() {}

func (m MPN) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CMPN,"+string(m))
	return err
}

// Value is the .CVal characteristic, e.g. "220nF".
type Value string

func (v Value) objectAttribute() {}

func (v Value) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CVal,"+string(v))
	return err
}

// ComponentMounting is the mounting technology of a component.
type ComponentMounting int

const (
	MountThroughHole ComponentMounting = iota + 1
	MountSMD
	MountPressFit
	MountOther
)

func (m ComponentMounting) String() string {
	switch m {
	case MountSMD:
		return "SMD"
	case MountPressFit:
		return "Pressfit"
	case MountOther:
		return "Other"
	default:
		return "TH"
	}
}

// Mount is the .CMnt characteristic.
type Mount ComponentMounting

func (m Mount) objectAttribute() {}

func (m Mount) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CMnt,"+ComponentMounting(m).String())
	return err
}

// Footprint is the .CFtp characteristic.
type Footprint string

func (f Footprint) objectAttribute() {}

func (f Footprint) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CFtp,"+string(f))
	return err
}

// PackageName is the .CPgN characteristic.
type PackageName string

func (p PackageName) objectAttribute() {}

func (p PackageName) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CPgN,"+string(p))
	return err
}

// PackageDescription is the .CPgD characteristic.
type PackageDescription string

func (p PackageDescription) objectAttribute() {}

func (p PackageDescription) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CPgD,"+string(p))
	return err
}

// Height is the .CHgt characteristic, the component height in the unit
// of the file.
type Height float64

func (h Height) objectAttribute() {}

func (h Height) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CHgt,"+gerberbasetypes.FormatDecimal(float64(h)))
	return err
}

// LibraryName is the .CLbN characteristic.
type LibraryName string

func (l LibraryName) objectAttribute() {}

func (l LibraryName) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CLbN,"+string(l))
	return err
}

// LibraryDescription is the .CLbD characteristic.
type LibraryDescription string

func (l LibraryDescription) objectAttribute() {}

func (l LibraryDescription) SerializePartial(w io.Writer) error {
	_, err := io.WriteString(w, ".CLbD,"+string(l))
	return err
}

// SupplierPart names a part at one supplier. The reference is what the
// supplier uses to look the part up.
type SupplierPart struct {
	Name      string
	Reference string
}

// Supplier is the .CSup characteristic. At least one supplier part is
// required; do not emit the attribute for an empty list.
type Supplier []SupplierPart

func (s Supplier) objectAttribute() {}

func (s Supplier) SerializePartial(w io.Writer) error {
	if _, err := io.WriteString(w, ".CSup"); err != nil {
		return err
	}
	for _, part := range s {
		if _, err := io.WriteString(w, ","+part.Name+","+part.Reference); err != nil {
			return err
		}
	}
	return nil
}
