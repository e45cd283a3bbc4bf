package cube

import (
	"strings"
	"testing"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
)

var allRegular = stickering.MustBuild(nil, stickering.WithDefault(stickering.Solved))

func colors(n *Net, face Face) string {
	var b strings.Builder
	for _, s := range n.Stickers[face] {
		b.WriteString(s.Color.String())
	}
	return b.String()
}

func mustSetup(t *testing.T, mask stickering.Mask, alg string) *Net {
	t.Helper()
	n, err := FromSetup(mask, alg)
	if err != nil {
		t.Fatalf("FromSetup(%q): %v", alg, err)
	}
	return n
}

func TestNewNetIsSolved(t *testing.T) {
	n := New()
	if !n.IsSolved() {
		t.Error("New net should be solved")
	}
}

func TestEmptySetupMatchesNew(t *testing.T) {
	n := mustSetup(t, allRegular, "")
	if *n != *New() {
		t.Error("empty setup should paint the solved net")
		t.Log(n.String())
	}
}

func TestSingleMoveColors(t *testing.T) {
	tests := []struct {
		alg  string
		face Face
		want string
	}{
		{"R", U, "WWGWWGWWG"},
		{"R", B, "WBBWBBWBB"},
		{"R", D, "YYBYYBYYB"},
		{"F", U, "WWWWWWOOO"},
		{"F", R, "WRRWRRWRR"},
		{"M", U, "WBWWBWWBW"},
		{"M", F, "GWGGWGGWG"},
		{"x", U, "GGGGGGGGG"},
		{"x", B, "WWWWWWWWW"},
	}

	for _, tt := range tests {
		n := mustSetup(t, allRegular, tt.alg)
		if got := colors(n, tt.face); got != tt.want {
			t.Errorf("%s: face %v = %s, want %s", tt.alg, tt.face, got, tt.want)
			t.Log(n.String())
		}
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		alg := strings.Repeat(face.String()+" ", 4)
		n := mustSetup(t, allRegular, alg)
		if !n.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(n.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	n := mustSetup(t, allRegular, "(R U R' U')6")
	if !n.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(n.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble := "R U R' U' F D L2"
	n := mustSetup(t, allRegular, scramble)
	if n.IsSolved() {
		t.Error("Net should be scrambled after moves")
	}

	undo := notation.Format(notation.Invert(notation.MustParse(scramble)))
	n = mustSetup(t, allRegular, scramble+" "+undo)
	if !n.IsSolved() {
		t.Error("Scramble followed by its inverse should be solved")
		t.Log(n.String())
	}
}

func TestMaskFollowsPiece(t *testing.T) {
	mask := stickering.MustBuild(stickering.Custom{}.Set(stickering.Solved, "UF"))

	n := mustSetup(t, mask, "")
	if got := n.Stickers[U][7]; got.Mask != stickering.FaceletRegular || got.Color != White {
		t.Errorf("UF top sticker = %+v", got)
	}
	if got := n.Stickers[U][4].Mask; got != stickering.FaceletIgnored {
		t.Errorf("U center mask = %s, want ignored", got)
	}

	n = mustSetup(t, mask, "U")
	if got := n.Stickers[U][3]; got.Mask != stickering.FaceletRegular || got.Color != White {
		t.Errorf("after U, UL top sticker = %+v", got)
	}
	if got := n.Stickers[L][1]; got.Mask != stickering.FaceletRegular || got.Color != Green {
		t.Errorf("after U, UL side sticker = %+v", got)
	}
	if got := n.Stickers[U][7].Mask; got != stickering.FaceletIgnored {
		t.Errorf("after U, UF slot mask = %s, want ignored", got)
	}
}

func TestCornerTwistMovesMask(t *testing.T) {
	mask := stickering.MustBuild(stickering.Custom{}.Set(stickering.Permuted, "UFR"))

	// R takes the white sticker of UFR onto the B face
	n := mustSetup(t, mask, "R")
	got := n.Stickers[B][0]
	if got.Mask != stickering.FaceletRegular || got.Color != White {
		t.Errorf("B[0] = %+v, want regular white", got)
	}
	if n.Stickers[U][2].Mask != stickering.FaceletIgnored {
		t.Errorf("U[2] mask = %s, want ignored", n.Stickers[U][2].Mask)
	}
}

func TestString(t *testing.T) {
	s := New().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0] != "      W W W " {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[3] != "O O O G G G R R R B B B " {
		t.Errorf("middle line = %q", lines[3])
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		s    Sticker
		want string
	}{
		{Sticker{Green, stickering.FaceletRegular}, "G"},
		{Sticker{Green, stickering.FaceletDim}, "g"},
		{Sticker{Green, stickering.FaceletOriented}, "*"},
		{Sticker{Green, stickering.FaceletIgnored}, "."},
		{Sticker{Green, stickering.FaceletInvisible}, " "},
	}
	for _, tt := range tests {
		if got := tt.s.Symbol(); got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestPaintRejectsBadInput(t *testing.T) {
	bad := stickering.Identity()
	bad["EDGES"].Permutation[0] = 1
	if _, err := Paint(allRegular.Orbits(), bad); err == nil {
		t.Error("expected error for non-bijective permutation")
	}

	if _, err := FromSetup(allRegular, "R Q"); err == nil {
		t.Error("expected error for bad setup")
	}
}

func TestStepper(t *testing.T) {
	mask := stickering.MustBuild(stickering.Custom{}.Set(stickering.Solved, "UF"))
	s, err := NewStepper(mask, "", notation.MustParse("U U"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	if s.Net(1).Stickers[U][3].Mask != stickering.FaceletRegular {
		t.Error("after one U the highlighted edge should sit at UL")
	}
	if s.Net(2).Stickers[U][1].Mask != stickering.FaceletRegular {
		t.Error("after two U the highlighted edge should sit at UB")
	}
	if s.Net(2).Stickers[B][1].Color != Green {
		t.Error("the UB slot should show the green sticker after U2")
	}

	whole, err := FromSetup(mask, "U2")
	if err != nil {
		t.Fatal(err)
	}
	if *whole != *s.Net(2) {
		t.Error("last step should match applying the whole alg")
	}
}
