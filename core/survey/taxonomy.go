package survey

// Category is one belonging construct. The set is closed.
type Category string

const (
	CategorySafety        Category = "Safety"
	CategoryRespect       Category = "Respect"
	CategoryWelcome       Category = "Welcome"
	CategoryTeachers      Category = "Relationships with Teachers"
	CategoryParticipation Category = "Participation"
	CategoryAcknowledge   Category = "Acknowledgement"
)

// Categories fixes the iteration order everywhere a deterministic order matters
// (highest/lowest selection ties, matched-column union).
var Categories = []Category{
	CategorySafety,
	CategoryRespect,
	CategoryWelcome,
	CategoryTeachers,
	CategoryParticipation,
	CategoryAcknowledge,
}

// Taxonomy maps each category to the substring keywords used for column
// discovery. Matching is a case-insensitive substring test on the raw header
// text, not a token match; that brittleness is inherited from the surveys this
// tool was built for and must not be "fixed" without changing which columns
// match real-world files.
type Taxonomy map[Category][]string

// BelongingTaxonomy is the fixed production taxonomy. Immutable at runtime.
var BelongingTaxonomy = Taxonomy{
	CategorySafety:        {"safe", "surakshit"},
	CategoryRespect:       {"respected", "respect", "izzat", "as much respect"},
	CategoryWelcome:       {"being welcomed", "welcome", "swagat"},
	CategoryTeachers:      {"one teacher", "share your problem", "care about your feelings", "close to your teachers", "close teacher"},
	CategoryParticipation: {"opportunities", "participate", "school activities", "take part"},
	CategoryAcknowledge:   {"notice", "noticed", "listen to you", "dekhein", "acknowledge", "recognized", "valued", "heard", "seen", "like you"},
}

// LikertScale is the fixed text-to-integer scale for the five canonical
// agreement labels. Immutable.
var LikertScale = map[string]int{
	"Strongly Disagree": 1,
	"Disagree":          2,
	"Neutral":           3,
	"Agree":             4,
	"Strongly Agree":    5,
}

// timestampKeywords mark columns that are dropped unconditionally before any
// processing.
var timestampKeywords = []string{
	"timestamp", "date", "time", "created", "submitted", "record", "entry", "logged",
}

// GroupSpec names one demographic grouping and the keywords that locate its
// column in an uploaded file.
type GroupSpec struct {
	Label    string
	Keywords []string
}

// DemographicGroups is the fixed, ordered set of groupings offered for
// comparison.
var DemographicGroups = []GroupSpec{
	{Label: "Gender", Keywords: []string{"gender", "what gender do you use"}},
	{Label: "Grade", Keywords: []string{"grade", "which grade are you in"}},
	{Label: "Income Status", Keywords: []string{"income category"}},
	{Label: "Health Condition", Keywords: []string{"disability", "health condition"}},
	{Label: "Ethnicity", Keywords: []string{"ethnicity_cleaned"}},
	{Label: "Religion", Keywords: []string{"religion"}},
}

// CategoryByName resolves a category label, e.g. from a query parameter.
func CategoryByName(name string) (Category, bool) {
	for _, cat := range Categories {
		if string(cat) == name {
			return cat, true
		}
	}
	return "", false
}

// GroupByLabel resolves a demographic grouping label.
func GroupByLabel(label string) (GroupSpec, bool) {
	for _, g := range DemographicGroups {
		if g.Label == label {
			return g, true
		}
	}
	return GroupSpec{}, false
}
