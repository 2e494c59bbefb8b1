package attributes

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MakerPnP/gerber-types/gerberbasetypes"
)

func render(t *testing.T, coder gerberbasetypes.PartialGerberCoder) string {
	t.Helper()
	var b strings.Builder
	if err := coder.SerializePartial(&b); err != nil {
		t.Fatalf("SerializePartial: %v", err)
	}
	return b.String()
}

func index(n int32) *int32 {
	return &n
}

func TestFileAttributes(t *testing.T) {
	date, err := time.Parse(time.RFC3339, "2025-06-10T16:25:00+02:00")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		attribute FileAttribute
		out       string
	}{
		{PartAttribute{PartSingle}, ".Part,Single"},
		{PartAttribute{PartFabricationPanel}, ".Part,FabricationPanel"},
		{PartAttribute{OtherPart("Part 1")}, ".Part,Other,Part 1"},
		{PolarityPositive, ".FilePolarity,Positive"},
		{PolarityNegative, ".FilePolarity,Negative"},
		{SameCoordinates{}, ".SameCoordinates"},
		{SameCoordinates{NameIdent("Name 1")}, ".SameCoordinates,Name 1"},
		{SameCoordinates{UUIDIdent(uuid.Max)}, ".SameCoordinates,ffffffff-ffff-ffff-ffff-ffffffffffff"},
		{CreationDate(date), ".CreationDate,2025-06-10T16:25:00+02:00"},
		{NewGenerationSoftware("Vendor 1", "App 1", ""), ".GenerationSoftware,Vendor 1,App 1"},
		{NewGenerationSoftware("Vendor 1", "App 1", "1.2.3"), ".GenerationSoftware,Vendor 1,App 1,1.2.3"},
		{ProjectID{"Project", uuid.Max, "rev1"}, ".ProjectId,Project,ffffffff-ffff-ffff-ffff-ffffffffffff,rev1"},
		{MD5("abcd1234"), ".MD5,abcd1234"},
		// user defined names are written verbatim, no dot is injected and
		// values are not trimmed
		{UserDefined{"NonStandardAttribute", []string{"Value 1 ", " Value 2"}},
			"NonStandardAttribute,Value 1 , Value 2"},
		{UserDefined{".UnsupportedStandardAttribute", []string{"v1"}},
			".UnsupportedStandardAttribute,v1"},
	}
	for _, test := range tests {
		if got := render(t, test.attribute); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestFileFunctions(t *testing.T) {
	tests := []struct {
		function FileFunction
		out      string
	}{
		{Copper{Layer: 1, Position: ExtendedPositionTop}, "Copper,L1,Top"},
		{Copper{Layer: 2, Position: ExtendedPositionBottom, Type: CopperHatched}, "Copper,L2,Bot,Hatched"},
		{Copper{Layer: 3, Position: ExtendedPositionInner, Type: CopperSignal}, "Copper,L3,Inr,Signal"},
		{Plated{1, 2, PlatedBlind, 0}, "Plated,1,2,Blind"},
		{Plated{1, 4, PlatedThroughHole, 0}, "Plated,1,4,PTH"},
		{Plated{2, 3, PlatedBuried, 0}, "Plated,2,3,Buried"},
		{Plated{1, 2, PlatedThroughHole, RouteTypeRoute}, "Plated,1,2,PTH,Rout"},
		{NonPlated{1, 4, NonPlatedThroughHole, 0}, "NonPlated,1,4,NPTH"},
		{NonPlated{1, 2, NonPlatedThroughHole, RouteTypeDrill}, "NonPlated,1,2,NPTH,Drill"},
		{Profile{}, "Profile"},
		{Profile{PlatingPlated}, "Profile,P"},
		{Profile{PlatingNonPlated}, "Profile,NP"},
		{KeepOut{PositionTop}, "Keepout,Top"},
		{KeepOut{PositionBottom}, "Keepout,Bot"},
		{SolderMask{PositionIndex{PositionTop, nil}}, "Soldermask,Top"},
		{SolderMask{PositionIndex{PositionTop, index(1)}}, "Soldermask,Top,1"},
		{Legend{PositionIndex{PositionBottom, nil}}, "Legend,Bot"},
		{CarbonMask{PositionIndex{PositionTop, index(2)}}, "Carbonmask,Top,2"},
		{GoldMask{PositionIndex{PositionTop, nil}}, "Goldmask,Top"},
		{HeatsinkMask{PositionIndex{PositionTop, nil}}, "Heatsinkmask,Top"},
		{PeelableMask{PositionIndex{PositionBottom, nil}}, "Peelablemask,Bot"},
		{SilverMask{PositionIndex{PositionTop, nil}}, "Silvermask,Top"},
		{TinMask{PositionIndex{PositionTop, nil}}, "Tinmask,Top"},
		{ComponentLayer{1, PositionTop}, "Component,L1,Top"},
		{Paste{PositionTop}, "Paste,Top"},
		{Glue{PositionBottom}, "Glue,Bot"},
		{DepthRoute{PositionTop}, "Depthrout,Top"},
		{VCut{}, "Vcut"},
		{VCut{PositionTop}, "Vcut,Top"},
		{Pads{PositionBottom}, "Pads,Bot"},
		{AssemblyDrawing{PositionTop}, "AssemblyDrawing,Top"},
		{FileFunctionViaFill, "Viafill"},
		{FileFunctionDrillMap, "Drillmap"},
		{FileFunctionFabricationDrawing, "FabricationDrawing"},
		{FileFunctionVCutMap, "Vcutmap"},
		{FileFunctionArrayDrawing, "ArrayDrawing"},
		{OtherFileFunction("A String"), "Other,A String"},
		{OtherDrawing("A String"), "OtherDrawing,A String"},
	}
	for _, test := range tests {
		if got := render(t, test.function); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestApertureFunctions(t *testing.T) {
	tests := []struct {
		function ApertureFunction
		out      string
	}{
		{ViaDrill{}, "ViaDrill"},
		{ViaDrill{ProtectionIa}, "ViaDrill,Ia"},
		{ViaDrill{ProtectionIIIb}, "ViaDrill,IIIb"},
		{ViaDrill{ProtectionVII}, "ViaDrill,VII"},
		{ViaDrill{ProtectionNone}, "ViaDrill,None"},
		{ComponentDrill{}, "ComponentDrill"},
		{ComponentDrill{ComponentDrillPressFit}, "ComponentDrill,PressFit"},
		{MechanicalDrill{}, "MechanicalDrill"},
		{MechanicalDrill{DrillBreakout}, "MechanicalDrill,Breakout"},
		{MechanicalDrill{DrillTooling}, "MechanicalDrill,Tooling"},
		{MechanicalDrill{DrillOther}, "MechanicalDrill,Other"},
		{SMDPad{CopperDefined}, "SMDPad,CuDef"},
		{SMDPad{SoldermaskDefined}, "SMDPad,SMDef"},
		{BGAPad{CopperDefined}, "BGAPad,CuDef"},
		{FiducialPad{FiducialGlobal}, "FiducialPad,Global"},
		{FiducialPad{FiducialLocal}, "FiducialPad,Local"},
		{FiducialPad{FiducialPanel}, "FiducialPad,Panel"},
		{ComponentOutline{OutlineBody}, "ComponentOutline,Body"},
		{ComponentOutline{OutlineLead2Lead}, "ComponentOutline,Lead2Lead"},
		{ComponentOutline{OutlineFootprint}, "ComponentOutline,Footprint"},
		{ComponentOutline{OutlineCourtyard}, "ComponentOutline,Courtyard"},
		{FunctionBackDrill, "BackDrill"},
		{FunctionCastellatedDrill, "CastellatedDrill"},
		{FunctionComponentPad, "ComponentPad"},
		{FunctionThermalReliefPad, "ThermalReliefPad"},
		{FunctionConductor, "Conductor"},
		{FunctionProfile, "Profile"},
		{FunctionComponentMain, "ComponentMain"},
		{FunctionSlot, "Slot"},
		{FunctionDrawing, "Drawing"},
		{OtherDrill("CustomDrill"), "OtherDrill,CustomDrill"},
		{OtherPad("CustomPad"), "OtherPad,CustomPad"},
		{OtherCopper("CustomCopper"), "OtherCopper,CustomCopper"},
		{OtherFunction("CustomFunction"), "Other,CustomFunction"},
	}
	for _, test := range tests {
		if got := render(t, test.function); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestApertureAttributes(t *testing.T) {
	size := int32(10)
	tests := []struct {
		attribute ApertureAttribute
		out       string
	}{
		{FunctionAttribute{SMDPad{CopperDefined}}, ".AperFunction,SMDPad,CuDef"},
		{DrillTolerance{1.0, 2.0}, ".DrillTolerance,1,2"},
		{DrillTolerance{0.05, 0.04}, ".DrillTolerance,0.05,0.04"},
		{FlashText{
			Text:      "Test",
			Mode:      TextModeCharacters,
			Mirroring: TextReadable,
			Font:      "Font Name",
			Size:      &size,
			Comment:   "A Comment",
		}, ".FlashText,Test,C,R,Font Name,10,A Comment"},
		// empty fields mean the meta-data is not specified
		{FlashText{
			Text:      "Test",
			Mode:      TextModeBarCode,
			Mirroring: TextMirrored,
		}, ".FlashText,Test,B,M,,,"},
		{UserDefined{"Example", []string{"value1", "value2"}}, "Example,value1,value2"},
	}
	for _, test := range tests {
		if got := render(t, test.attribute); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestObjectAttributes(t *testing.T) {
	tests := []struct {
		attribute ObjectAttribute
		out       string
	}{
		{Net{}, ".N,"},
		{NotConnected, ".N,N/C"},
		{Net{"Net1", "Net2", "Net3"}, ".N,Net1,Net2,Net3"},
		{Pin{RefDes: "U1", Name: "1"}, ".P,U1,1"},
		{Pin{RefDes: "Q1", Name: "EP", Function: "Thermal pad"}, ".P,Q1,EP,Thermal pad"},
		{Component("R1"), ".C,R1"},
		{Rotation(100), ".CRot,100"},
		{Manufacturer("A String"), ".CMfr,A String"},
		{MPN("A String"), ".CMPN,A String"},
		{Value("220nF"), ".CVal,220nF"},
		{Mount(MountThroughHole), ".CMnt,TH"},
		{Mount(MountSMD), ".CMnt,SMD"},
		{Mount(MountPressFit), ".CMnt,Pressfit"},
		{Mount(MountOther), ".CMnt,Other"},
		{Footprint("A String"), ".CFtp,A String"},
		{PackageName("A String"), ".CPgN,A String"},
		{PackageDescription("A String"), ".CPgD,A String"},
		{Height(100), ".CHgt,100"},
		{LibraryName("A String"), ".CLbN,A String"},
		{LibraryDescription("A String"), ".CLbD,A String"},
		{Supplier{
			{"Supplier Name 1", "Reference 1"},
			{" Supplier Name 2 ", "Reference 2"},
		}, ".CSup,Supplier Name 1,Reference 1, Supplier Name 2 ,Reference 2"},
		{UserDefined{"NonStandardAttribute", []string{"Value 1 ", " Value 2"}},
			"NonStandardAttribute,Value 1 , Value 2"},
	}
	for _, test := range tests {
		if got := render(t, test.attribute); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}
