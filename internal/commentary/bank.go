package commentary

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Bank maps a phrase category to its template pool. Templates carry
// named placeholders ({carrier}, {defender}, {receiver}, {kicker},
// {team}, {opponent}, {yards}) substituted at render time; no control
// flow lives inside the phrase data itself.
type Bank map[string][]string

// Phrase categories. The generator dispatches to exactly one category
// per event.
const (
	CatRunScore      = "run_score"
	CatRunBreakaway  = "run_breakaway"
	CatRunUmbraLong  = "run_umbra_long"
	CatRunGryllGrind = "run_gryll_grind"
	CatRunPositive   = "run_positive"
	CatRunStuffed    = "run_stuffed"

	CatPassScore       = "pass_score"
	CatPassDeep        = "pass_deep"
	CatPassComplete    = "pass_complete"
	CatPassIncomplete  = "pass_incomplete"
	CatPassIntercepted = "pass_intercepted"

	CatKickGood = "kick_good"
	CatKickMiss = "kick_miss"

	CatTackle         = "tackle"
	CatTackleBigHit   = "tackle_big_hit"
	CatFumbleLost     = "fumble_lost"
	CatFumbleRecovered = "fumble_recovered"
)

// LoadBank reads a phrase bank from a JSON file and overlays it on the
// built-in default: categories present in the file replace the default
// pool wholesale, the rest keep their defaults. This keeps phrase data
// a swappable asset without code changes.
func LoadBank(path string) (Bank, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase bank %s: %w", path, err)
	}
	var overlay Bank
	if err := json.Unmarshal(b, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse phrase bank %s: %w", path, err)
	}
	bank := DefaultBank()
	for cat, pool := range overlay {
		if len(pool) == 0 {
			return nil, fmt.Errorf("phrase bank %s: category %q has an empty pool", path, cat)
		}
		bank[cat] = pool
	}
	return bank, nil
}

// render substitutes the named placeholders into one template.
func render(tmpl string, ctx Context) string {
	r := strings.NewReplacer(
		"{carrier}", ctx.Carrier,
		"{defender}", ctx.Defender,
		"{receiver}", ctx.Receiver,
		"{kicker}", ctx.Kicker,
		"{recovered}", ctx.Recovered,
		"{team}", ctx.Team,
		"{opponent}", ctx.Opponent,
		"{yards}", strconv.Itoa(ctx.Yards),
	)
	return r.Replace(tmpl)
}
