package commentary

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// Race-specific yardage thresholds for flavored phrase pools: Umbra
// runners get shadow-step lines only on genuinely long gains, Gryll
// carriers get grinding lines only when they churn out short yardage
// through contact.
const (
	umbraLongRunYards  = 8
	gryllGrindMaxYards = 3
)

// Picker is the slice of the match RNG the generator needs. Selecting
// phrases through the shared source keeps commentary reproducible
// alongside the simulation.
type Picker interface {
	Pick(n int) int
}

// Context is the state snapshot the generator renders from. It is
// assembled by the resolver; the generator never touches match state
// and never influences outcomes — it is strictly a projection.
type Context struct {
	Carrier     string
	CarrierRace game.Race
	Defender    string
	Receiver    string
	Kicker      string
	Recovered   string
	Team        string
	Opponent    string

	Yards              int
	Breakaway          bool
	Score              bool
	Completed          bool
	KickGood           bool
	BigHit             bool
	Fumble             bool
	RecoveredByDefense bool
}

// Generator turns structured events into human-readable play text by
// selecting from categorized phrase pools.
type Generator struct {
	bank Bank
}

// NewGenerator builds a generator over the given phrase bank. Pass
// DefaultBank() when no external asset is configured.
func NewGenerator(bank Bank) *Generator {
	if bank == nil {
		bank = DefaultBank()
	}
	return &Generator{bank: bank}
}

// Describe renders the text for one event. Selection within the chosen
// pool draws from the shared RNG, so identical simulations narrate
// identically.
func (g *Generator) Describe(evType game.EventType, ctx Context, pick Picker) string {
	cat := g.categorize(evType, ctx)
	pool := g.bank[cat]
	if len(pool) == 0 {
		// A bank missing a category degrades to a flat call, never an error.
		return render("{carrier} makes the play.", ctx)
	}
	return render(pool[pick.Pick(len(pool))], ctx)
}

// categorize picks exactly one phrase category for the event.
func (g *Generator) categorize(evType game.EventType, ctx Context) string {
	switch evType {
	case game.EventRun:
		return g.runCategory(ctx)
	case game.EventPass:
		if !ctx.Completed {
			return CatPassIncomplete
		}
		if ctx.Breakaway {
			return CatPassDeep
		}
		return CatPassComplete
	case game.EventKick:
		if ctx.KickGood {
			return CatKickGood
		}
		return CatKickMiss
	case game.EventScore:
		if ctx.Receiver != "" {
			return CatPassScore
		}
		if ctx.KickGood {
			return CatKickGood
		}
		return CatRunScore
	case game.EventTackle:
		if ctx.Fumble {
			return CatFumbleRecovered
		}
		if ctx.BigHit {
			return CatTackleBigHit
		}
		return CatTackle
	case game.EventTurnover:
		if ctx.Fumble {
			return CatFumbleLost
		}
		return CatPassIntercepted
	}
	return CatRunPositive
}

func (g *Generator) runCategory(ctx Context) string {
	switch {
	case ctx.Breakaway:
		return CatRunBreakaway
	case ctx.CarrierRace == game.RaceUmbra && ctx.Yards >= umbraLongRunYards:
		return CatRunUmbraLong
	case ctx.CarrierRace == game.RaceGryll && ctx.Yards > 0 && ctx.Yards <= gryllGrindMaxYards:
		return CatRunGryllGrind
	case ctx.Yards > 0:
		return CatRunPositive
	default:
		return CatRunStuffed
	}
}
