package gerber

import (
	"strings"
	"testing"

	"github.com/MakerPnP/gerber-types/apertures"
	"github.com/MakerPnP/gerber-types/attributes"
	"github.com/MakerPnP/gerber-types/xy"
)

func serialize(t *testing.T, c Command) string {
	t.Helper()
	var b strings.Builder
	if err := c.Serialize(&b); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return b.String()
}

func TestComment(t *testing.T) {
	if got := serialize(t, NewComment("testcomment")); got != "G04 testcomment*\n" {
		t.Errorf("got %q", got)
	}
}

func TestStandardComments(t *testing.T) {
	tests := []struct {
		comment Comment
		out     string
	}{
		{Comment{StandardComment{ApertureAttribute{
			attributes.FunctionAttribute{Function: attributes.SMDPad{Type: attributes.CopperDefined}},
		}}}, "G04 #@! TA.AperFunction,SMDPad,CuDef*\n"},
		{Comment{StandardComment{FileAttribute{
			attributes.FileFunctionAttribute{Function: attributes.Profile{Plating: attributes.PlatingNonPlated}},
		}}}, "G04 #@! TF.FileFunction,Profile,NP*\n"},
		{Comment{StandardComment{ObjectAttribute{attributes.Component("R1")}}},
			"G04 #@! TO.C,R1*\n"},
		{Comment{StandardComment{DeleteAttribute("foo")}},
			"G04 #@! TDfoo*\n"},
		// user defined attribute names are not prefixed with a '.'
		{Comment{StandardComment{ApertureAttribute{
			attributes.UserDefined{Name: "Example", Values: []string{"value1", "value2"}},
		}}}, "G04 #@! TAExample,value1,value2*\n"},
	}
	for _, test := range tests {
		if got := serialize(t, test.comment); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestCommands(t *testing.T) {
	commands := Commands{
		NewComment("comment 1"),
		NewComment("another one"),
	}
	if got := serialize(t, commands); got != "G04 comment 1*\nG04 another one*\n" {
		t.Errorf("got %q", got)
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		command Command
		out     string
	}{
		{Linear, "G01*\n"},
		{ClockwiseCircular, "G02*\n"},
		{CounterclockwiseCircular, "G03*\n"},
		{RegionMode(true), "G36*\n"},
		{RegionMode(false), "G37*\n"},
		{SingleQuadrant, "G74*\n"},
		{MultiQuadrant, "G75*\n"},
		{LegacyUnit(Inches), "G70*\n"},
		{LegacyUnit(Millimeters), "G71*\n"},
		{Absolute, "G90*\n"},
		{Incremental, "G91*\n"},
		{LegacySelectAperture{}, "G54*\n"},
		{EndOfFile{}, "M02*\n"},
	}
	for _, test := range tests {
		if got := serialize(t, test.command); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestOperations(t *testing.T) {
	cf := xy.NewCoordinateFormat(2, 5)
	offset := xy.NewOffsetInt[int8](5, 10, cf)
	c1 := NewInterpolate(xy.NewInt[int8](1, 2, cf), &offset)
	if got := serialize(t, c1); got != "X100000Y200000I500000J1000000D01*\n" {
		t.Errorf("got %q", got)
	}

	cf = xy.NewCoordinateFormat(4, 4)
	c2 := NewInterpolate(xy.AtYInt[int8](-2, cf), nil)
	if got := serialize(t, c2); got != "Y-20000D01*\n" {
		t.Errorf("got %q", got)
	}

	yOffset := xy.OffsetAtYInt[int8](2, cf)
	c3 := NewInterpolate(xy.AtXInt[int8](1, cf), &yOffset)
	if got := serialize(t, c3); got != "X10000J20000D01*\n" {
		t.Errorf("got %q", got)
	}

	move := NewMove(xy.NewInt[int8](23, 42, xy.NewCoordinateFormat(6, 4)))
	if got := serialize(t, move); got != "X230000Y420000D02*\n" {
		t.Errorf("got %q", got)
	}

	flash := NewFlash(xy.NewInt[int8](23, 42, xy.NewCoordinateFormat(4, 4)))
	if got := serialize(t, flash); got != "X230000Y420000D03*\n" {
		t.Errorf("got %q", got)
	}

	// fully modal operations render only the function code
	if got := serialize(t, Interpolate{}); got != "D01*\n" {
		t.Errorf("got %q", got)
	}
}

func TestSelectAperture(t *testing.T) {
	if got := serialize(t, SelectAperture(10)); got != "D10*\n" {
		t.Errorf("got %q", got)
	}
	if got := serialize(t, SelectAperture(2147483647)); got != "D2147483647*\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSpecification(t *testing.T) {
	fs := FormatSpecification(xy.NewCoordinateFormat(2, 5))
	if got := serialize(t, fs); got != "%FSLAX25Y25*%\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnit(t *testing.T) {
	if got := serialize(t, Millimeters); got != "%MOMM*%\n" {
		t.Errorf("got %q", got)
	}
	if got := serialize(t, Inches); got != "%MOIN*%\n" {
		t.Errorf("got %q", got)
	}
}

func TestApertureTransformations(t *testing.T) {
	tests := []struct {
		command Command
		out     string
	}{
		{Dark, "%LPD*%\n"},
		{Clear, "%LPC*%\n"},
		{MirrorNone, "%LMN*%\n"},
		{MirrorX, "%LMX*%\n"},
		{MirrorXY, "%LMXY*%\n"},
		{Rotation(45.5), "%LR45.5*%\n"},
		{Rotation(-90), "%LR-90*%\n"},
		{Scaling(0.8), "%LS0.8*%\n"},
	}
	for _, test := range tests {
		if got := serialize(t, test.command); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestBlockCommands(t *testing.T) {
	sr := StepAndRepeat{RepeatX: 2, RepeatY: 3, DistanceX: 2.0, DistanceY: 3.0}
	if got := serialize(t, sr); got != "%SRX2Y3I2J3*%\n" {
		t.Errorf("got %q", got)
	}
	if got := serialize(t, StepAndRepeatClose{}); got != "%SR*%\n" {
		t.Errorf("got %q", got)
	}
	if got := serialize(t, ApertureBlock(102)); got != "%AB102*%\n" {
		t.Errorf("got %q", got)
	}
	if got := serialize(t, ApertureBlockClose{}); got != "%AB*%\n" {
		t.Errorf("got %q", got)
	}
}

func TestAttributeCommands(t *testing.T) {
	tests := []struct {
		command Command
		out     string
	}{
		{FileAttribute{attributes.PartAttribute{Part: attributes.PartSingle}},
			"%TF.Part,Single*%\n"},
		{FileAttribute{attributes.FileFunctionAttribute{
			Function: attributes.Copper{Layer: 1, Position: attributes.ExtendedPositionTop},
		}}, "%TF.FileFunction,Copper,L1,Top*%\n"},
		{ApertureAttribute{attributes.FunctionAttribute{
			Function: attributes.ViaDrill{Protection: attributes.ProtectionIa},
		}}, "%TA.AperFunction,ViaDrill,Ia*%\n"},
		{ApertureAttribute{attributes.DrillTolerance{Plus: 1, Minus: 2}},
			"%TA.DrillTolerance,1,2*%\n"},
		{ObjectAttribute{attributes.Net{"Net1", "Net2"}}, "%TO.N,Net1,Net2*%\n"},
		{ObjectAttribute{attributes.Pin{RefDes: "U1", Name: "1"}}, "%TO.P,U1,1*%\n"},
		{DeleteAttribute("foo"), "%TDfoo*%\n"},
		{DeleteAttribute(""), "%TD*%\n"},
	}
	for _, test := range tests {
		if got := serialize(t, test.command); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestImageCommands(t *testing.T) {
	tests := []struct {
		command Command
		out     string
	}{
		{ImageMirrorNone, "%MI*%\n"},
		{ImageMirrorA, "%MIA1*%\n"},
		{ImageMirrorB, "%MIB1*%\n"},
		{ImageMirrorAB, "%MIA1B1*%\n"},
		{ImageOffset{}, "%OF*%\n"},
		{ImageOffset{A: 99999.99999}, "%OFA99999.99999*%\n"},
		{ImageOffset{B: 99999.99999}, "%OFB99999.99999*%\n"},
		{ImageOffset{A: -99999.99999, B: -99999.99999}, "%OFA-99999.99999B-99999.99999*%\n"},
		{ImageScaling{}, "%SF*%\n"},
		{ImageScaling{A: 999.99999, B: 999.99999}, "%SFA999.99999B999.99999*%\n"},
		{ImageRotationNone, "%IR0*%\n"},
		{ImageRotation90, "%IR90*%\n"},
		{ImageRotation270, "%IR270*%\n"},
		{ImagePolarityPositive, "%IPPOS*%\n"},
		{ImagePolarityNegative, "%IPNEG*%\n"},
		{AXBY, "%ASAXBY*%\n"},
		{AYBX, "%ASAYBX*%\n"},
		{ImageName("PANEL_1"), "%INPANEL_1*%\n"},
	}
	for _, test := range tests {
		if got := serialize(t, test.command); got != test.out {
			t.Errorf("got %q, want %q", got, test.out)
		}
	}
}

func TestFullFile(t *testing.T) {
	cf := xy.NewCoordinateFormat(2, 6)
	commands := Commands{
		FormatSpecification(cf),
		Millimeters,
		apertures.NewDefinition(10, apertures.NewCircle(0.01)),
		SelectAperture(10),
		NewMove(xy.NewInt[int8](0, 0, cf)),
		Linear,
		NewInterpolate(xy.NewInt[int8](5, 0, cf), nil),
		EndOfFile{},
	}
	want := "%FSLAX26Y26*%\n" +
		"%MOMM*%\n" +
		"%ADD10C,0.01*%\n" +
		"D10*\n" +
		"X0Y0D02*\n" +
		"G01*\n" +
		"X5000000Y0D01*\n" +
		"M02*\n"
	if got := serialize(t, commands); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
