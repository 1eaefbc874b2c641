package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var expressionPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Expression is a parsed "NdS+M" dice expression.
//
// Invariant: Count >= 1 and Sides >= 1 after a successful Parse.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
}

// Min returns the smallest total the expression can produce.
func (e Expression) Min() int { return e.Count + e.Modifier }

// Max returns the largest total the expression can produce.
func (e Expression) Max() int { return e.Count*e.Sides + e.Modifier }

// Parse parses a dice expression such as "d4", "1d10" or "1d11+39".
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}
	m := expressionPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(expr)))
	if m == nil {
		return Expression{}, fmt.Errorf("dice: malformed expression %q", expr)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
		count = n
	}
	if count < 1 {
		return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", expr)
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
	}
	// a single-sided die is allowed: "1d1+9" is a fixed value
	if sides < 1 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 1", expr)
	}

	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}

	return Expression{Raw: expr, Count: count, Sides: sides, Modifier: modifier}, nil
}

// MustParse parses expr and panics on error. Useful for package-level stat ranges.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// Roll evaluates expr using src.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and
// expr.Min() <= result.Total() <= expr.Max().
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}
