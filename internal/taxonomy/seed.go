package taxonomy

// seedPatterns defines the built-in behavioral pattern taxonomy.
// 14 patterns across 4 strands.
var seedPatterns = []Pattern{
	// Procedural misconceptions (4)
	{
		ID:          "proc-step-skip",
		Category:    CategoryMisconception,
		Strand:      StrandProcedural,
		Label:       "Skipped procedure step",
		Description: "Consistently drops an intermediate step from a multi-step procedure",
		Examples:    []string{"omits carrying when adding columns", "skips sign flip when moving terms"},
	},
	{
		ID:          "proc-step-order",
		Category:    CategoryMisconception,
		Strand:      StrandProcedural,
		Label:       "Steps applied out of order",
		Description: "Applies correct steps in the wrong order",
		Examples:    []string{"adds before multiplying", "rounds before summing"},
	},
	{
		ID:          "proc-overgeneralize",
		Category:    CategoryMisconception,
		Strand:      StrandProcedural,
		Label:       "Overgeneralized rule",
		Description: "Applies a rule outside the domain where it holds",
		Examples:    []string{"multiplication always makes bigger", "longer number is larger"},
	},
	{
		ID:          "proc-inverse-confusion",
		Category:    CategoryMisconception,
		Strand:      StrandProcedural,
		Label:       "Inverse operation confusion",
		Description: "Substitutes an operation for its inverse",
		Examples:    []string{"divides instead of multiplies when scaling up"},
	},

	// Conceptual misconceptions (4)
	{
		ID:          "concept-unit-mismatch",
		Category:    CategoryMisconception,
		Strand:      StrandConceptual,
		Label:       "Unit mismatch",
		Description: "Combines quantities with incompatible units",
		Examples:    []string{"adds minutes to hours without converting"},
	},
	{
		ID:          "concept-part-whole",
		Category:    CategoryMisconception,
		Strand:      StrandConceptual,
		Label:       "Part-whole confusion",
		Description: "Treats a part as the whole or vice versa",
		Examples:    []string{"reads 3/4 as 3 wholes and 4 parts"},
	},
	{
		ID:          "concept-symbol-meaning",
		Category:    CategoryMisconception,
		Strand:      StrandConceptual,
		Label:       "Symbol meaning",
		Description: "Assigns the wrong meaning to a symbol or notation",
		Examples:    []string{"reads = as 'the answer comes next'"},
	},
	{
		ID:          "concept-scale-linear",
		Category:    CategoryMisconception,
		Strand:      StrandConceptual,
		Label:       "Linear scaling assumption",
		Description: "Assumes all relationships scale linearly",
		Examples:    []string{"doubles area when side length doubles"},
	},

	// Pacing patterns (3)
	{
		ID:          "pace-rush",
		Category:    CategorySpeedRush,
		Strand:      StrandPacing,
		Label:       "Rushing",
		Description: "Answers far faster than the expected floor with elevated error rate",
		Examples:    []string{"sub-3s responses on multi-step items"},
	},
	{
		ID:          "pace-careless-streak",
		Category:    CategoryCareless,
		Strand:      StrandPacing,
		Label:       "Careless streak",
		Description: "High-accuracy subject making clustered slips",
		Examples:    []string{"transcription slips after long correct runs"},
	},
	{
		ID:          "pace-stall",
		Category:    CategoryGuessing,
		Strand:      StrandPacing,
		Label:       "Stall then guess",
		Description: "Long idle time followed by an implausible answer",
		Examples:    []string{"90s idle then single-digit answer on estimation item"},
	},

	// Engagement patterns (3)
	{
		ID:          "engage-hint-first",
		Category:    CategoryHintReliance,
		Strand:      StrandEngagement,
		Label:       "Hint-first habit",
		Description: "Requests a hint before attempting the item",
		Examples:    []string{"hint requested within 2s of item display"},
	},
	{
		ID:          "engage-hint-chain",
		Category:    CategoryHintReliance,
		Strand:      StrandEngagement,
		Label:       "Hint chaining",
		Description: "Exhausts all hints on most items",
		Examples:    []string{"3+ hints on majority of items in a session"},
	},
	{
		ID:          "engage-abandon",
		Category:    CategoryGuessing,
		Strand:      StrandEngagement,
		Label:       "Abandon and guess",
		Description: "Gives up on hard items and submits filler answers",
		Examples:    []string{"repeated identical answers across distinct items"},
	},
}
