package widget

import (
	"testing"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

func TestLimitsResolve(t *testing.T) {
	limits := NewLimits(geometry.Size{Width: 10, Height: 10}, geometry.Size{Width: 100, Height: 50})

	tests := []struct {
		name      string
		w, h      Length
		intrinsic geometry.Size
		want      geometry.Size
	}{
		{"fill takes max", Fill(), Fill(), geometry.Size{}, geometry.Size{Width: 100, Height: 50}},
		{"fixed clamps to max", Fixed(500), Fixed(5), geometry.Size{}, geometry.Size{Width: 100, Height: 10}},
		{"shrink takes intrinsic", Shrink(), Shrink(), geometry.Size{Width: 30, Height: 20}, geometry.Size{Width: 30, Height: 20}},
		{"shrink clamps to min", Shrink(), Shrink(), geometry.Size{Width: 1, Height: 1}, geometry.Size{Width: 10, Height: 10}},
	}
	for _, tc := range tests {
		if got := limits.Resolve(tc.w, tc.h, tc.intrinsic); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestLimitsLooseAndCaps(t *testing.T) {
	limits := NewLimits(geometry.Size{Width: 10, Height: 10}, geometry.Size{Width: 100, Height: 100}).
		Loose().MaxWidth(40).MaxHeight(200)
	if limits.Min != (geometry.Size{}) {
		t.Fatalf("loose min = %+v, want zero", limits.Min)
	}
	if limits.Max.Width != 40 {
		t.Fatalf("max width = %v, want 40", limits.Max.Width)
	}
	// MaxHeight never raises an existing cap.
	if limits.Max.Height != 100 {
		t.Fatalf("max height = %v, want 100", limits.Max.Height)
	}
}

func TestLayoutNodeTranslate(t *testing.T) {
	child := NewLayoutNode(geometry.Size{Width: 5, Height: 5}).Move(geometry.Pt(1, 1))
	root := LayoutNodeWithChildren(geometry.Size{Width: 20, Height: 20}, []*LayoutNode{child})

	root.Translate(geometry.Vec(10, 10))

	if got := root.Bounds(); got != geometry.Rect(10, 10, 20, 20) {
		t.Fatalf("root bounds = %+v", got)
	}
	if got := root.Children()[0].Bounds(); got != geometry.Rect(11, 11, 5, 5) {
		t.Fatalf("child bounds = %+v", got)
	}
}

func TestTreeDiffChildren(t *testing.T) {
	a := NewLabel("a")
	tree := &Tree{}
	tree.DiffChildren([]Widget{a, NewLabel("b")})
	if len(tree.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(tree.Children))
	}

	// Shrinking the child list truncates state slots.
	tree.DiffChildren([]Widget{a})
	if len(tree.Children) != 1 {
		t.Fatalf("children after shrink = %d, want 1", len(tree.Children))
	}

	// A tag mismatch resets the slot.
	tree.Children[0].Tag = "other"
	tree.Children[0].State = "stale"
	tree.DiffChildren([]Widget{a})
	if tree.Children[0].Tag != a.Tag() || tree.Children[0].State != nil {
		t.Fatalf("slot not reset: %+v", tree.Children[0])
	}
}

func TestShellDropsNil(t *testing.T) {
	var shell Shell
	shell.Publish(nil)
	shell.Publish("msg")
	if got := shell.Messages(); len(got) != 1 || got[0] != "msg" {
		t.Fatalf("messages = %v", got)
	}
}

func TestStatusAndInteractionMerge(t *testing.T) {
	if Ignored.Merge(Captured) != Captured || Captured.Merge(Ignored) != Captured {
		t.Fatal("captured must win merge")
	}
	if Ignored.Merge(Ignored) != Ignored {
		t.Fatal("ignored+ignored must stay ignored")
	}
	if InteractionPointer.Merge(InteractionGrabbing) != InteractionGrabbing {
		t.Fatal("interaction merge must keep the stronger hint")
	}
}

func TestLabelLayout(t *testing.T) {
	l := NewLabel("hello").CharSize(2, 3)
	limits := NewLimits(geometry.Size{}, geometry.Size{Width: 100, Height: 100})
	node := l.Layout(nil, limits)
	if got := node.Bounds().Size(); got != (geometry.Size{Width: 10, Height: 3}) {
		t.Fatalf("label size = %+v", got)
	}
}
