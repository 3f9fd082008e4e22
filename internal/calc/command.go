package calc

import (
	"fmt"
	"unicode/utf8"

	"github.com/h0rv/widgets/internal/domain"
)

// Command is a single calculator input. The concrete types form a closed set.
type Command interface {
	command()
}

// Commands understood by Apply.
type (
	AppendDigit    struct{ Digit rune }
	ChooseOperator struct{ Op domain.Operator }
	Compute        struct{}
	Clear          struct{}
	DeleteLast     struct{}
)

func (AppendDigit) command()    {}
func (ChooseOperator) command() {}
func (Compute) command()        {}
func (Clear) command()          {}
func (DeleteLast) command()     {}

// Apply dispatches a command to the matching operation.
func (a *Accumulator) Apply(cmd Command) {
	switch c := cmd.(type) {
	case AppendDigit:
		a.AppendDigit(c.Digit)
	case ChooseOperator:
		a.ChooseOperator(c.Op)
	case Compute:
		a.Compute()
	case Clear:
		a.Clear()
	case DeleteLast:
		a.DeleteLast()
	}
}

// ParseKey maps a single key or token to a command.
// Digits and '.' map to AppendDigit, operators to ChooseOperator,
// "=" and "enter" to Compute, "c"/"esc" to Clear and "backspace" to DeleteLast.
func ParseKey(key string) (Command, bool) {
	switch key {
	case "=", "enter":
		return Compute{}, true
	case "c", "C", "esc":
		return Clear{}, true
	case "backspace", "←":
		return DeleteLast{}, true
	case "x", "×":
		return ChooseOperator{Op: domain.OpMultiply}, true
	case "÷":
		return ChooseOperator{Op: domain.OpDivide}, true
	}

	if op := domain.Operator(key); op.Valid() {
		return ChooseOperator{Op: op}, true
	}

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if isDigit(r) {
			return AppendDigit{Digit: r}, true
		}
	}
	return nil, false
}

// ParseTokens converts whitespace-separated tokens such as "12", "+", "3.5", "="
// into commands. Multi-digit numbers expand into one AppendDigit per rune.
func ParseTokens(tokens []string) ([]Command, error) {
	var cmds []Command
	for _, tok := range tokens {
		if cmd, ok := ParseKey(tok); ok {
			cmds = append(cmds, cmd)
			continue
		}
		if _, err := ParseNumber(tok); err != nil || tok == "" {
			return nil, fmt.Errorf("token %q: %w", tok, ErrParse)
		}
		for _, r := range tok {
			if !isDigit(r) {
				return nil, fmt.Errorf("token %q: %w", tok, ErrParse)
			}
			cmds = append(cmds, AppendDigit{Digit: r})
		}
	}
	return cmds, nil
}
