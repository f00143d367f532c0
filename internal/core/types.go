// Package core defines domain models for phrase-canvas.
package core

import (
	"sort"
	"time"
	"unicode/utf8"
)

// Point is a 2-D coordinate pair. Whether it lives in screen or content
// space is up to the caller.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both components by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div divides both components by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Size is a width/height pair in content units.
type Size struct {
	Width, Height float64
}

// Balloon sizing. Text is never measured; width grows with the rune count.
const (
	MinBalloonWidth = 120
	BalloonHeight   = 40
	charWidth       = 8
	balloonPadding  = 32
)

// SizeFor returns the balloon size for a phrase text.
func SizeFor(text string) Size {
	w := float64(utf8.RuneCountInString(text)*charWidth + balloonPadding)
	if w < MinBalloonWidth {
		w = MinBalloonWidth
	}
	return Size{Width: w, Height: BalloonHeight}
}

// Phrase is a piece of draggable text from the canonical catalog.
type Phrase struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	OriginalIndex int    `json:"originalIndex"`
}

// SortPhrases stable-sorts phrases by their catalog position.
func SortPhrases(ps []Phrase) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].OriginalIndex < ps[j].OriginalIndex
	})
}

// Balloon is a phrase placed on the canvas. Position and size are in
// content space; X, Y is the top-left corner.
type Balloon struct {
	ID     string  `json:"id"`
	Phrase Phrase  `json:"phrase"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TopLeft returns the balloon's anchor corner.
func (b Balloon) TopLeft() Point {
	return Point{X: b.X, Y: b.Y}
}

// Center returns the balloon's visual centre.
func (b Balloon) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether content point p lies inside the balloon.
func (b Balloon) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}

// User is the signed-in owner of a canvas.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	LastLogin time.Time `json:"lastLogin"`
}
