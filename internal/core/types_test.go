package core

import (
	"strings"
	"testing"
)

func TestSizeFor(t *testing.T) {
	tests := []struct {
		text string
		want Size
	}{
		{"", Size{120, 40}},
		{"0123456789", Size{120, 40}},
		{"01234567890", Size{120, 40}},
		{"012345678901", Size{128, 40}},
		{strings.Repeat("x", 30), Size{272, 40}},
		{"héllo wörld ünïcode", Size{184, 40}},
	}

	for _, tt := range tests {
		got := SizeFor(tt.text)
		if got != tt.want {
			t.Errorf("SizeFor(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSizeForMonotonic(t *testing.T) {
	prev := SizeFor("")
	for n := 1; n < 64; n++ {
		cur := SizeFor(strings.Repeat("a", n))
		if cur.Width < prev.Width {
			t.Fatalf("width shrank at %d runes: %v < %v", n, cur.Width, prev.Width)
		}
		prev = cur
	}
}

func TestSortPhrasesStable(t *testing.T) {
	ps := []Phrase{
		{ID: "c", OriginalIndex: 2},
		{ID: "a", OriginalIndex: 0},
		{ID: "b1", OriginalIndex: 1},
		{ID: "b2", OriginalIndex: 1},
	}
	SortPhrases(ps)

	want := []string{"a", "b1", "b2", "c"}
	for i, id := range want {
		if ps[i].ID != id {
			t.Errorf("ps[%d].ID = %s, want %s", i, ps[i].ID, id)
		}
	}
}

func TestBalloonGeometry(t *testing.T) {
	b := Balloon{X: 10, Y: 20, Width: 120, Height: 40}

	if c := b.Center(); c != Pt(70, 40) {
		t.Errorf("Center() = %v, want (70,40)", c)
	}
	if !b.Contains(Pt(10, 20)) {
		t.Error("top-left corner should be inside")
	}
	if b.Contains(Pt(130, 20)) {
		t.Error("right edge should be outside")
	}
	if b.Contains(Pt(50, 61)) {
		t.Error("point below should be outside")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(4, 6)
	if got := p.Add(Pt(1, 1)).Sub(Pt(2, 3)); got != Pt(3, 4) {
		t.Errorf("Add/Sub = %v", got)
	}
	if got := p.Mul(2).Div(4); got != Pt(2, 3) {
		t.Errorf("Mul/Div = %v", got)
	}
}
