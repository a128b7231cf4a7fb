package sheetcore

import (
	"fmt"
	"io"
	"strings"
)

// RunnableSheet provides a chainable interface for sheet operations.
// wraps the standard Sheet and tracks errors internally; once an
// operation fails the rest of the chain is skipped until Reset or
// OnError clears the state.
type RunnableSheet struct {
	sheet   *Sheet
	err     error
	printLn func(string)
}

// NewRunnableSheet creates a new RunnableSheet. printLn is required and
// will be used for all logging operations (Log, CheckError, PrintValues,
// PrintTexts).
func NewRunnableSheet(printLn func(string)) *RunnableSheet {
	return &RunnableSheet{
		sheet:   NewSheet(),
		printLn: printLn,
	}
}

// Set writes cell text at an A1 address (chainable)
func (r *RunnableSheet) Set(address, text string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}
	pos := PositionFromString(address)
	r.err = r.sheet.SetCell(pos, text)
	return r
}

// Clear clears the cell at an A1 address (chainable)
func (r *RunnableSheet) Clear(address string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}
	r.err = r.sheet.ClearCell(PositionFromString(address))
	return r
}

// SetBatch sets multiple cells at once (chainable)
func (r *RunnableSheet) SetBatch(cells map[string]string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}
	for address, text := range cells {
		if err := r.sheet.SetCell(PositionFromString(address), text); err != nil {
			r.err = err
			return r
		}
	}
	return r
}

// Value is a helper to get a single cell value from the chain.
// example: val := NewRunnableSheet(printLn).Set("A1", "10").Set("A2", "=A1*2").Value("A2")
func (r *RunnableSheet) Value(address string) Primitive {
	if r.err != nil {
		return nil
	}
	cell, err := r.sheet.GetCell(PositionFromString(address))
	if err != nil {
		r.err = err
		return nil
	}
	if cell == nil {
		return nil
	}
	return cell.GetValue()
}

// Values is a helper to get multiple cell values from the chain
func (r *RunnableSheet) Values(addresses ...string) []Primitive {
	if r.err != nil {
		return nil
	}
	values := make([]Primitive, len(addresses))
	for i, address := range addresses {
		values[i] = r.Value(address)
		if r.err != nil {
			return nil
		}
	}
	return values
}

// Text returns the source text of a cell
func (r *RunnableSheet) Text(address string) string {
	if r.err != nil {
		return ""
	}
	cell, err := r.sheet.GetCell(PositionFromString(address))
	if err != nil {
		r.err = err
		return ""
	}
	if cell == nil {
		return ""
	}
	return cell.GetText()
}

// Log logs the value of a cell using the provided printLn function (chainable)
func (r *RunnableSheet) Log(address string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}

	cell, err := r.sheet.GetCell(PositionFromString(address))
	if err != nil {
		r.err = err
		return r
	}

	if cell == nil {
		r.printLn(fmt.Sprintf("%s: <empty>", address))
	} else {
		r.printLn(fmt.Sprintf("%s: %v", address, cell.GetValue()))
	}
	return r
}

// PrintValues logs the printable region's values (chainable)
func (r *RunnableSheet) PrintValues() *RunnableSheet {
	return r.print((*Sheet).PrintValues)
}

// PrintTexts logs the printable region's texts (chainable)
func (r *RunnableSheet) PrintTexts() *RunnableSheet {
	return r.print((*Sheet).PrintTexts)
}

func (r *RunnableSheet) print(printer func(*Sheet, io.Writer) error) *RunnableSheet {
	if r.err != nil {
		return r
	}
	var sb strings.Builder
	if err := printer(r.sheet, &sb); err != nil {
		r.err = err
		return r
	}
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		r.printLn(line)
	}
	return r
}

// Error returns the current error state
func (r *RunnableSheet) Error() error {
	return r.err
}

// CheckError logs the current error using the printLn function (chainable)
func (r *RunnableSheet) CheckError() *RunnableSheet {
	if r.err != nil {
		r.printLn(fmt.Sprintf("ERROR: %v", r.err))
	} else {
		r.printLn("No errors")
	}
	return r
}

// Reset clears the error state (chainable)
func (r *RunnableSheet) Reset() *RunnableSheet {
	r.err = nil
	return r
}

// Then allows conditional execution based on current error state
func (r *RunnableSheet) Then(fn func(*RunnableSheet) *RunnableSheet) *RunnableSheet {
	if r.err != nil {
		return r // skip if there's an error
	}
	return fn(r)
}

// OnError allows error handling in the chain
func (r *RunnableSheet) OnError(fn func(error) error) *RunnableSheet {
	if r.err != nil {
		r.err = fn(r.err)
	}
	return r
}

// If allows conditional operations in the chain
func (r *RunnableSheet) If(condition bool, fn func(*RunnableSheet) *RunnableSheet) *RunnableSheet {
	if r.err != nil || !condition {
		return r // skip if there's an error or condition is false
	}
	return fn(r)
}

// Must panics if there's an error (chainable). useful for ensuring
// critical operations succeed
func (r *RunnableSheet) Must() *RunnableSheet {
	if r.err != nil {
		panic(r.err)
	}
	return r
}

// Sheet returns the underlying sheet. use with caution as it bypasses
// error tracking.
func (r *RunnableSheet) Sheet() *Sheet {
	return r.sheet
}
