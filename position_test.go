package sheetcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFromString(t *testing.T) {
	tests := map[string]Position{
		"A1":       {Row: 0, Col: 0},
		"B2":       {Row: 1, Col: 1},
		"Z25":      {Row: 24, Col: 25},
		"AA1":      {Row: 0, Col: 26},
		"AB32":     {Row: 31, Col: 27},
		"AZ1":      {Row: 0, Col: 51},
		"BA1":      {Row: 0, Col: 52},
		"ZZ1":      {Row: 0, Col: 701},
		"AAA1":     {Row: 0, Col: 702},
		"XFD16384": {Row: 16383, Col: 16383},
	}
	for in, want := range tests {
		assert.Equal(t, want, PositionFromString(in), "parsing %q", in)
	}
}

func TestPositionFromStringRejects(t *testing.T) {
	inputs := []string{
		"",
		"A",
		"1",
		"12",
		"a1",
		"Aa1",
		"A1A",
		"A-1",
		"A 1",
		" A1",
		"A1 ",
		"A0",
		"Z0",
		"A1B2",
		"AAAA1",     // four letters can never be in range
		"A16385",    // row out of range
		"XFE1",      // column out of range
		"R1C1",      // digits interrupted by a letter
		"ABC!",
		"A1234567890123456789", // longer than any valid address
	}
	for _, in := range inputs {
		assert.Equal(t, None, PositionFromString(in), "parsing %q", in)
	}
}

func TestPositionString(t *testing.T) {
	tests := map[Position]string{
		{Row: 0, Col: 0}:         "A1",
		{Row: 24, Col: 25}:       "Z25",
		{Row: 0, Col: 26}:        "AA1",
		{Row: 0, Col: 701}:       "ZZ1",
		{Row: 0, Col: 702}:       "AAA1",
		{Row: 16383, Col: 16383}: "XFD16384",
	}
	for pos, want := range tests {
		assert.Equal(t, want, pos.String())
	}

	// invalid positions render empty
	assert.Equal(t, "", None.String())
	assert.Equal(t, "", Position{Row: -5, Col: 2}.String())
	assert.Equal(t, "", Position{Row: 0, Col: MaxCols}.String())
	assert.Equal(t, "", Position{Row: MaxRows, Col: 0}.String())
}

func TestPositionRoundTrip(t *testing.T) {
	rows := []int{0, 1, 25, 26, 700, 16383}
	cols := []int{0, 1, 25, 26, 51, 52, 701, 702, 16383}

	for _, row := range rows {
		for _, col := range cols {
			pos := Position{Row: row, Col: col}
			assert.Equal(t, pos, PositionFromString(pos.String()), "round-trip %v", pos)
		}
	}
}

func TestPositionOrder(t *testing.T) {
	a1 := Position{Row: 0, Col: 0}
	b1 := Position{Row: 0, Col: 1}
	a2 := Position{Row: 1, Col: 0}

	assert.True(t, a1.Less(b1))
	assert.True(t, b1.Less(a2)) // row dominates the order
	assert.True(t, a1.Less(a2))
	assert.False(t, a1.Less(a1))

	assert.Negative(t, a1.Compare(b1))
	assert.Positive(t, a2.Compare(b1))
	assert.Zero(t, b1.Compare(b1))
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	assert.False(t, None.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: -1}.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}
