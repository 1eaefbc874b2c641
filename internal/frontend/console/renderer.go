package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

// Renderer formats arena state as console text.
type Renderer struct {
	palette Palette
	races   ruleset.RaceIndex
}

// NewRenderer creates a Renderer. races may be nil, in which case race lore is omitted.
func NewRenderer(color bool, races ruleset.RaceIndex) *Renderer {
	return &Renderer{palette: Palette{Enabled: color}, races: races}
}

func (r *Renderer) raceColor(race character.Race) string {
	c, _ := NamedColor(r.races.Lookup(race).Color)
	return c
}

func cornerColor(c combat.Corner) string {
	if c == combat.Red {
		return Red
	}
	return Blue
}

// FormatAttack renders an attack value with at most one decimal place.
func FormatAttack(a float64) string {
	return strconv.FormatFloat(math.Round(a*10)/10, 'f', -1, 64)
}

// InfoCard renders a fighter's stat block.
func InfoCard(info character.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Race: %s\n", info.Race)
	fmt.Fprintf(&b, "Health Points: %d\n", info.Health)
	fmt.Fprintf(&b, "Attack: %s damage\n", FormatAttack(info.Attack))
	fmt.Fprintf(&b, "Protection: %d percent\n", info.Protection)
	return b.String()
}

// Status renders the one-line health summary shown after every round.
func Status(f *character.Fighter) string {
	return fmt.Sprintf("%s the %s has %d hp.", f.Name, f.Race, f.Health)
}

// RosterCard renders one selectable roster entry: its index, the race lore
// in the race color, and the stat block.
func (r *Renderer) RosterCard(index int, f *character.Fighter) string {
	var b strings.Builder
	b.WriteString(r.palette.Paint(BgBlack, strconv.Itoa(index)))
	b.WriteString("\n")
	if desc := r.races.Lookup(f.Race).Description; desc != "" {
		b.WriteString(r.palette.Paint(r.raceColor(f.Race), desc))
		b.WriteString("\n")
	}
	b.WriteString(InfoCard(f.Info()))
	b.WriteString("\n")
	return b.String()
}

// Welcome renders the arena banner.
func (r *Renderer) Welcome() string {
	return r.palette.Paint(Bold, "WELCOME TO THE LORD OF THE RINGS ARENA!") + "\n\n"
}

// Corner introduces the fighter standing in corner c.
func (r *Renderer) Corner(c combat.Corner, f *character.Fighter) string {
	header := fmt.Sprintf("IN THE %s CORNER OF THE RING:", strings.ToUpper(c.String()))
	return r.palette.Paint(cornerColor(c), header+"\n"+InfoCard(f.Info())) + "\n"
}

// Countdown renders one tick of the pre-fight countdown.
func (r *Renderer) Countdown(n int) string {
	return strconv.Itoa(n) + "\n"
}

// Round renders one resolved round followed by both fighters' health.
func (r *Renderer) Round(ev combat.RoundEvent, red, blue *character.Fighter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d\n", ev.Round)
	b.WriteString(r.palette.Paint(cornerColor(ev.Corner), ev.Narrative))
	b.WriteString("\n")
	b.WriteString(r.palette.Paint(Red, Status(red)))
	b.WriteString("\n")
	b.WriteString(r.palette.Paint(Blue, Status(blue)))
	b.WriteString("\n\n")
	return b.String()
}

// Outcome announces the winner, or the draw.
func (r *Renderer) Outcome(res combat.Result) string {
	if res.Draw {
		return r.palette.Paintf(Bold, "The fight ends in a draw after %d rounds.", res.Rounds) + "\n\n"
	}
	return r.palette.Paintf(cornerColor(res.WinnerCorner), "%s the %s wins!", res.Winner.Name, res.Winner.Race) + "\n\n"
}
