// Package calc implements a four-function calculator as an explicit state machine.
// The Accumulator never panics and never returns errors from its operations;
// failures move it into an error state that renders as "Error" until cleared.
package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/h0rv/widgets/internal/domain"
)

var (
	// ErrDivisionByZero indicates a division whose divisor was exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow indicates an operation produced a non-finite result.
	ErrOverflow = errors.New("result is not finite")
	// ErrParse indicates operand text that is not a number.
	ErrParse = errors.New("malformed number")
)

// ErrorText is the display marker for the error state.
const ErrorText = "Error"

// Accumulator holds calculator state. The zero value is not ready for use; call New.
type Accumulator struct {
	pending    float64
	hasPending bool
	current    string
	op         domain.Operator
	fresh      bool // next digit starts a new operand
	err        error
}

// New creates a cleared Accumulator.
func New() *Accumulator {
	a := &Accumulator{}
	a.Clear()
	return a
}

// AppendDigit appends a digit or decimal point to the current operand.
// Runes other than 0-9 and '.' are ignored, as is any input in the error state.
func (a *Accumulator) AppendDigit(d rune) {
	if a.err != nil || !isDigit(d) {
		return
	}

	if a.fresh {
		a.current = string(d)
		if d == '.' {
			a.current = "0."
		}
		a.fresh = false
		return
	}

	switch {
	case d == '.' && strings.Contains(a.current, "."):
		// second decimal point
	case d == '.' && a.current == "":
		a.current = "0."
	case a.current == "0" && d != '.':
		a.current = string(d)
	default:
		a.current += string(d)
	}
}

// ChooseOperator selects the operator to apply to the next operand.
// A pending operator is resolved first so chained input evaluates left to right.
func (a *Accumulator) ChooseOperator(op domain.Operator) {
	if a.err != nil || !op.Valid() {
		return
	}

	switch {
	case !a.hasPending:
		a.pending, _ = ParseNumber(a.current)
		a.hasPending = true
	case a.op != domain.OpNone:
		result, err := apply(a.pending, a.currentNumber(), a.op)
		if err != nil {
			a.fail(err)
			return
		}
		a.pending = result
		a.current = FormatNumber(result)
	}

	a.op = op
	a.fresh = true
}

// Compute applies the pending operator to the pending and current operands.
// It does nothing unless both an operator and a pending operand are set.
func (a *Accumulator) Compute() {
	if a.op == domain.OpNone || !a.hasPending {
		return
	}

	result, err := apply(a.pending, a.currentNumber(), a.op)
	if err != nil {
		a.fail(err)
		return
	}

	a.current = FormatNumber(result)
	a.pending = 0
	a.hasPending = false
	a.op = domain.OpNone
	a.fresh = true
}

// Clear resets the accumulator to its initial state.
func (a *Accumulator) Clear() {
	a.pending = 0
	a.hasPending = false
	a.current = ""
	a.op = domain.OpNone
	a.fresh = false
	a.err = nil
}

// DeleteLast removes the last character of the current operand.
func (a *Accumulator) DeleteLast() {
	if a.err != nil || a.current == "" {
		return
	}
	a.current = a.current[:len(a.current)-1]
}

// CurrentOperand returns the operand text, or ErrorText in the error state.
func (a *Accumulator) CurrentOperand() string {
	if a.err != nil {
		return ErrorText
	}
	return a.current
}

// Pending returns the operand captured before the operator, if any.
func (a *Accumulator) Pending() (float64, bool) {
	return a.pending, a.hasPending
}

// Operator returns the pending operator, or domain.OpNone.
func (a *Accumulator) Operator() domain.Operator {
	return a.op
}

// AwaitingFreshInput reports whether the next digit starts a new operand.
func (a *Accumulator) AwaitingFreshInput() bool {
	return a.fresh
}

// Err returns the error that put the accumulator in the error state, or nil.
func (a *Accumulator) Err() error {
	return a.err
}

// Display returns the text a calculator screen should show.
func (a *Accumulator) Display() string {
	if a.err != nil {
		return ErrorText
	}
	if a.current != "" {
		return a.current
	}
	if a.hasPending {
		return FormatNumber(a.pending)
	}
	return "0"
}

// Expression returns the pending part of the calculation, e.g. "12 ×".
func (a *Accumulator) Expression() string {
	if !a.hasPending || a.op == domain.OpNone {
		return ""
	}
	return FormatNumber(a.pending) + " " + a.op.Symbol()
}

func (a *Accumulator) currentNumber() float64 {
	n, _ := ParseNumber(a.current)
	return n
}

// fail enters the error state and drops every pending value.
func (a *Accumulator) fail(err error) {
	a.err = err
	a.current = ""
	a.pending = 0
	a.hasPending = false
	a.op = domain.OpNone
	a.fresh = false
}

func apply(x, y float64, op domain.Operator) (float64, error) {
	var result float64
	switch op {
	case domain.OpAdd:
		result = x + y
	case domain.OpSubtract:
		result = x - y
	case domain.OpMultiply:
		result = x * y
	case domain.OpDivide:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		result = x / y
	default:
		return y, nil
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrOverflow
	}
	return result, nil
}

func isDigit(d rune) bool {
	return d == '.' || (d >= '0' && d <= '9')
}

// ParseNumber converts operand text to a number. Empty text is zero.
// Malformed text also yields zero, together with ErrParse.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if s == "." {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, ErrParse
	}
	return n, nil
}

// FormatNumber renders a result the way it is shown on the display:
// shortest exact decimal, no exponent below 1e21, no negative zero.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
