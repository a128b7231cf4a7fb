package sheetcore

// Primitive represents basic cell value types.
// types:
//   - float64: numeric values (formula results)
//   - string: text values
//   - *FormulaError: error values (#REF!, #VALUE!, #DIV/0!)
type Primitive any

// FormulaErrorCode represents standard spreadsheet error codes following
// Excel conventions
type FormulaErrorCode uint8

const (
	ErrorCodeRef   FormulaErrorCode = 1 // #REF! - reference outside the sheet bounds
	ErrorCodeValue FormulaErrorCode = 2 // #VALUE! - operand is not convertible to a number
	ErrorCodeDiv0  FormulaErrorCode = 3 // #DIV/0! - division by zero
)

// ErrorMapper maps error code numbers to their string representations
var ErrorMapper = map[FormulaErrorCode]string{
	ErrorCodeRef:   "#REF!",
	ErrorCodeValue: "#VALUE!",
	ErrorCodeDiv0:  "#DIV/0!",
}

// FormulaError is an evaluation failure stored and propagated as a
// first-class cell value, not as a Go error return. It still implements
// error so callers can treat it uniformly.
type FormulaError struct {
	Code FormulaErrorCode
}

func (e *FormulaError) Error() string {
	return ErrorMapper[e.Code]
}

func NewFormulaError(code FormulaErrorCode) *FormulaError {
	return &FormulaError{Code: code}
}

// CellKind tags the content variant held by a cell.
type CellKind uint8

const (
	CellKindEmpty   CellKind = 0
	CellKindText    CellKind = 1
	CellKindFormula CellKind = 2
)

// Cell holds one cell's content: empty, literal text, or a parsed formula.
// Formula cells carry a single-slot memo of the last computed value; the
// sheet clears it whenever anything in the cell's transitive inputs
// changes. Dependency edges do not live here, they live in the sheet's
// dependents index.
type Cell struct {
	sheet   *Sheet
	kind    CellKind
	text    string   // raw text, text cells only
	formula *Formula // parsed formula, formula cells only

	cache    Primitive // memoized GetValue result, formula cells only
	hasCache bool
}

func newEmptyCell(sheet *Sheet) *Cell {
	return &Cell{sheet: sheet, kind: CellKindEmpty}
}

func newTextCell(sheet *Sheet, text string) *Cell {
	return &Cell{sheet: sheet, kind: CellKindText, text: text}
}

func newFormulaCell(sheet *Sheet, formula *Formula) *Cell {
	return &Cell{sheet: sheet, kind: CellKindFormula, formula: formula}
}

// Kind returns the content variant tag.
func (c *Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell holds no content. Empty cells exist in
// the sheet only as anchors for dangling references.
func (c *Cell) IsEmpty() bool {
	return c.kind == CellKindEmpty
}

// GetValue returns the observable value of the cell.
//
// Empty cells yield the empty string. Text cells yield their text, minus a
// leading escape apostrophe if present. Formula cells yield the memoized
// evaluation result, computing and caching it on first access; evaluation
// errors are cached exactly like numbers.
func (c *Cell) GetValue() Primitive {
	switch c.kind {
	case CellKindText:
		if c.text[0] == EscapeSign {
			return c.text[1:]
		}
		return c.text
	case CellKindFormula:
		if !c.hasCache {
			c.cache = c.formula.Evaluate(c.sheet)
			c.hasCache = true
		}
		return c.cache
	default:
		return ""
	}
}

// GetText returns the source form of the cell: the raw text for text
// cells, "=" plus the canonical expression for formula cells, and the
// empty string for empty cells.
func (c *Cell) GetText() string {
	switch c.kind {
	case CellKindText:
		return c.text
	case CellKindFormula:
		return string(FormulaSign) + c.formula.Expression()
	default:
		return ""
	}
}

// ReferencedCells returns the positions the cell's formula reads,
// ascending and deduplicated. Non-formula cells reference nothing.
func (c *Cell) ReferencedCells() []Position {
	if c.kind != CellKindFormula {
		return nil
	}
	return c.formula.ReferencedCells()
}

// invalidate drops the memoized formula value. No-op for empty and text
// cells, and idempotent for formula cells.
func (c *Cell) invalidate() {
	c.cache = nil
	c.hasCache = false
}

// setEmpty downgrades the cell to the empty variant in place. Used when a
// cleared cell must survive as a dependency anchor.
func (c *Cell) setEmpty() {
	c.kind = CellKindEmpty
	c.text = ""
	c.formula = nil
	c.invalidate()
}
