package taxonomy

// Category classifies a diagnostic event at the top level.
type Category string

const (
	CategoryMisconception Category = "misconception"
	CategoryCareless      Category = "careless"
	CategorySpeedRush     Category = "speed-rush"
	CategoryGuessing      Category = "guessing"
	CategoryHintReliance  Category = "hint-reliance"
	CategoryUnclassified  Category = "unclassified"
)

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{
		CategoryMisconception,
		CategoryCareless,
		CategorySpeedRush,
		CategoryGuessing,
		CategoryHintReliance,
		CategoryUnclassified,
	}
}

// Strand groups behavioral patterns by the area of activity they show up in.
type Strand string

const (
	StrandProcedural Strand = "procedural"
	StrandConceptual Strand = "conceptual"
	StrandPacing     Strand = "pacing"
	StrandEngagement Strand = "engagement"
)

// Pattern defines a known behavioral pattern.
type Pattern struct {
	ID          string
	Category    Category
	Strand      Strand
	Label       string
	Description string
	Examples    []string
}

// registry is the package-level pattern registry, keyed by ID.
var registry map[string]*Pattern

// byCategory indexes patterns by category.
var byCategory map[Category][]*Pattern

func init() {
	registry = make(map[string]*Pattern, len(seedPatterns))
	byCategory = make(map[Category][]*Pattern)
	for i := range seedPatterns {
		p := &seedPatterns[i]
		registry[p.ID] = p
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
}

// GetPattern returns a pattern by ID, or nil if not found.
func GetPattern(id string) *Pattern {
	return registry[id]
}

// PatternsByCategory returns all patterns for a given category.
func PatternsByCategory(cat Category) []*Pattern {
	return byCategory[cat]
}

// AllPatterns returns every pattern in the taxonomy.
func AllPatterns() []*Pattern {
	result := make([]*Pattern, 0, len(registry))
	for _, p := range registry {
		result = append(result, p)
	}
	return result
}

// ValidCategory reports whether cat is a known category.
func ValidCategory(cat Category) bool {
	for _, c := range AllCategories() {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidPair reports whether a (category, pattern ID) pair is consistent
// with the taxonomy. A misconception must carry a registered pattern ID;
// any other category may carry an empty ID or one registered under that
// category.
func ValidPair(cat Category, patternID string) bool {
	if !ValidCategory(cat) {
		return false
	}
	if patternID == "" {
		return cat != CategoryMisconception
	}
	p := registry[patternID]
	return p != nil && p.Category == cat
}
