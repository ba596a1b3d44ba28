package commentary

// DefaultBank returns the built-in phrase pools. Deployments can
// overlay any category from an external JSON asset via LoadBank.
func DefaultBank() Bank {
	return Bank{
		CatRunScore: {
			"{carrier} WILL NOT BE DENIED! {team} put points on the board!",
			"{carrier} crosses the line — SCORE for {team}!",
			"They can't catch him! {carrier} takes it all the way home!",
		},
		CatRunBreakaway: {
			"{carrier} finds a seam and EXPLODES through it for {yards} yards!",
			"Nobody is catching {carrier}! A {yards}-yard breakaway!",
			"{carrier} turns the corner and leaves {opponent} grasping at air — {yards} yards!",
		},
		CatRunUmbraLong: {
			"{carrier} melts into the shadows and reappears {yards} yards downfield!",
			"Where did {carrier} go?! The Umbra runner slips every grasp for {yards} yards!",
			"{carrier} shadow-steps through the line — {opponent} never saw it, {yards} yards!",
		},
		CatRunGryllGrind: {
			"{carrier} lowers the shoulder and grinds out {yards} hard-won yards.",
			"Pure Gryll power from {carrier}, dragging tacklers for {yards} yards.",
			"{carrier} just runs THROUGH the contact. {yards} yards, the painful way.",
		},
		CatRunPositive: {
			"{carrier} picks up {yards} yards on the carry.",
			"A solid gain of {yards} for {carrier}.",
			"{carrier} pushes forward for {yards} yards before going down.",
		},
		CatRunStuffed: {
			"{carrier} is swallowed up at the line. Nothing doing.",
			"The {opponent} wall holds — {carrier} gets nowhere.",
			"No room at all for {carrier} on that one.",
		},
		CatPassScore: {
			"{carrier} finds {receiver} in the open — SCORE for {team}!",
			"{receiver} hauls it in and walks it home! Points for {team}!",
			"A dart from {carrier}, and {receiver} finishes the job!",
		},
		CatPassDeep: {
			"{carrier} airs it out and {receiver} runs under it — {yards} huge yards!",
			"A rocket from {carrier}! {receiver} takes it {yards} yards downfield!",
			"{receiver} burns the coverage and {carrier} hits him in stride for {yards}!",
		},
		CatPassComplete: {
			"{carrier} connects with {receiver} for {yards} yards.",
			"Clean catch by {receiver} — a gain of {yards}.",
			"{carrier} threads it to {receiver}, who fights for {yards} yards.",
		},
		CatPassIncomplete: {
			"{carrier}'s pass falls incomplete.",
			"{receiver} can't quite reach it — the ball hits the turf.",
			"The throw sails on {carrier}. No catch.",
		},
		CatPassIntercepted: {
			"INTERCEPTED! {defender} jumps the route and {team} take over!",
			"{carrier} never saw {defender} — the pass is picked off!",
			"A terrible decision by {carrier}, and {defender} makes them pay!",
		},
		CatKickGood: {
			"{kicker}'s kick from {yards} splits the uprights! It's good!",
			"Right down the middle from {yards} out — {kicker} delivers!",
			"{kicker} calmly slots it home from {yards} yards.",
		},
		CatKickMiss: {
			"{kicker} pushes the {yards}-yarder wide. No good!",
			"The kick from {yards} falls short — {opponent} take over.",
			"{kicker} hooks it badly from {yards}. A wasted chance.",
		},
		CatTackle: {
			"{defender} wraps up {carrier} for no gain.",
			"A textbook stop by {defender}.",
			"{defender} brings {carrier} down in the open field.",
		},
		CatTackleBigHit: {
			"{defender} absolutely LEVELS {carrier}! You could hear that one in the cheap seats!",
			"A thunderous hit from {defender} stops {carrier} cold!",
			"{carrier} is rocked by {defender}! He somehow holds onto the ball!",
		},
		CatFumbleLost: {
			"{defender} jars the ball loose and {recovered} falls on it — TURNOVER!",
			"FUMBLE! {carrier} coughs it up and {team} come away with it!",
			"The hit from {defender} pops the ball free — {recovered} recovers for {team}!",
		},
		CatFumbleRecovered: {
			"{carrier} loses the handle but {recovered} dives on the loose ball — {opponent} survive the scare!",
			"The ball squirts free! A scramble... and {recovered} saves it for the offense.",
			"{defender} knocks it out, but {recovered} smothers it. No harm done.",
		},
	}
}
