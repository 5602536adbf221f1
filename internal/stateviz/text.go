package stateviz

import "strings"

// Text is the reference StateViz adapter for any line-oriented string
// rendering: lines are rows (y increasing downward from 0), runes within a
// line are columns (x increasing rightward from 0).
//
// This corrects an off-by-one present in the Rust reference
// (original_source/src/visualize.rs increments its x/y counters before
// indexing, so its first differing column/row is reported as 1, not 0).
// Here the first row and first column of a delta are always y=0 and x=0.
type Text struct {
	s     string
	lines []string
}

// NewText builds a Text state from any value with a string representation,
// mirroring the Rust reference's blanket "any ToString" adapter.
func NewText(s string) Text {
	return Text{s: s, lines: strings.Split(s, "\n")}
}

// String returns the underlying text.
func (t Text) String() string { return t.s }

// DefaultValue returns the fallback cell value, a space.
func (t Text) DefaultValue() Value { return ' ' }

// Get returns the rune at (x, y), or false for negative coordinates, a y
// beyond the line count, or an x beyond that line's rune count.
func (t Text) Get(c Coord) (Value, bool) {
	if c.X < 0 || c.Y < 0 {
		return 0, false
	}
	if c.Y >= len(t.lines) {
		return 0, false
	}
	runes := []rune(t.lines[c.Y])
	if c.X >= len(runes) {
		return 0, false
	}
	return runes[c.X], true
}

// Delta returns the coordinates whose rune differs between t and previous.
// Lines are paired up to the longer side's line count (missing lines on
// either side are treated as empty); within each paired line, runes are
// compared up to the longer side's rune count.
//
// previous must itself be a Text; any other StateViz implementation makes
// Delta return every coordinate of t (a conservative "everything changed"
// fallback, since there is no generic way to zip two different state
// representations).
func (t Text) Delta(previous StateViz) []Coord {
	prevText, ok := previous.(Text)
	if !ok {
		return t.allCoords()
	}

	var out []Coord
	rowCount := len(t.lines)
	if len(prevText.lines) > rowCount {
		rowCount = len(prevText.lines)
	}

	for y := 0; y < rowCount; y++ {
		var curLine, prevLine []rune
		if y < len(t.lines) {
			curLine = []rune(t.lines[y])
		}
		if y < len(prevText.lines) {
			prevLine = []rune(prevText.lines[y])
		}

		colCount := len(curLine)
		if len(prevLine) > colCount {
			colCount = len(prevLine)
		}
		for x := 0; x < colCount; x++ {
			var curR, prevR rune
			var curOK, prevOK bool
			if x < len(curLine) {
				curR, curOK = curLine[x], true
			}
			if x < len(prevLine) {
				prevR, prevOK = prevLine[x], true
			}
			if curOK != prevOK || curR != prevR {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// allCoords enumerates every coordinate defined by t, used as Delta's
// fallback when previous is not a Text.
func (t Text) allCoords() []Coord {
	var out []Coord
	for y, line := range t.lines {
		for x := range []rune(line) {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}
