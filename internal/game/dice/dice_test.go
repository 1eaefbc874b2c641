package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/dice"
)

// fixedSrc returns val for every Intn call.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(_ int) int { return f.val }

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "1d11+39", Dice: []int{7}, Modifier: 39}
	assert.Equal(t, 46, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "1d11+39", Dice: []int{7}, Modifier: 39}
	assert.Equal(t, "1d11+39 → [7] +39 = 46", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr     string
		count    int
		sides    int
		modifier int
	}{
		{"d4", 1, 4, 0},
		{"1d10", 1, 10, 0},
		{"1d11+39", 1, 11, 39},
		{"1d6+4", 1, 6, 4},
		{"2D6-1", 2, 6, -1},
		{"1d1+9", 1, 1, 9},
	}
	for _, tc := range tests {
		e, err := dice.Parse(tc.expr)
		require.NoError(t, err, "expr=%q", tc.expr)
		assert.Equal(t, tc.count, e.Count, "expr=%q", tc.expr)
		assert.Equal(t, tc.sides, e.Sides, "expr=%q", tc.expr)
		assert.Equal(t, tc.modifier, e.Modifier, "expr=%q", tc.expr)
		assert.Equal(t, tc.expr, e.Raw)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{"", "d", "abc", "0d6", "1d0", "1d6+", "1d6*2", "d-3"} {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expr=%q", expr)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
	assert.NotPanics(t, func() { dice.MustParse("1d3") })
}

func TestExpression_MinMax(t *testing.T) {
	e := dice.MustParse("1d11+39")
	assert.Equal(t, 40, e.Min())
	assert.Equal(t, 50, e.Max())
}

func TestRoll_UsesSource(t *testing.T) {
	r := dice.Roll(dice.MustParse("1d6+4"), fixedSrc{val: 5})
	assert.Equal(t, []int{6}, r.Dice)
	assert.Equal(t, 10, r.Total())
}

// Property: every roll total lies within [Min, Max].
func TestRoll_Property_WithinRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 5).Draw(rt, "count")
		sides := rapid.IntRange(1, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-50, 50).Draw(rt, "modifier")
		seed := rapid.Int64().Draw(rt, "seed")
		e := dice.MustParse(fmt.Sprintf("%dd%d%+d", count, sides, mod))
		r := dice.Roll(e, dice.NewSeededSource(seed))
		assert.Len(rt, r.Dice, count)
		assert.GreaterOrEqual(rt, r.Total(), e.Min())
		assert.LessOrEqual(rt, r.Total(), e.Max())
	})
}

func TestRollResult_String_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.StringMatching(`[0-9]+d[0-9]+[+-][0-9]+`).Draw(rt, "expression")
		ds := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 10).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")
		r := dice.RollResult{Expression: expr, Dice: ds, Modifier: modifier}
		s := r.String()
		assert.True(rt, strings.HasPrefix(s, expr))
		assert.Contains(rt, s, fmt.Sprintf("= %d", r.Total()))
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_LogsRollsAndPicks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(fixedSrc{val: 2}, zap.New(core))

	res := r.Roll(dice.MustParse("1d4"))
	assert.Equal(t, 3, res.Total())
	assert.Equal(t, 2, r.Intn(10))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "dice roll", entries[0].Message)
	assert.Equal(t, "uniform pick", entries[1].Message)
}

func TestRoller_LogsRollAudit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(fixedSrc{val: 6}, zap.New(core))
	r.Roll(dice.MustParse("1d11+39"))

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "1d11+39", fields["expression"])
	assert.Equal(t, int64(46), fields["total"])
}
