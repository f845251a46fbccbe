package types

// Scheme names a closed, ordered set of classification levels. Every store
// classifies its records with exactly one scheme.
type Scheme string

const (
	SchemeDifficulty Scheme = "difficulty"
	SchemeExperience Scheme = "experience"
)

// Classification is one level of a scheme, e.g. "easy" or "advanced".
type Classification string

const (
	Easy   Classification = "easy"
	Medium Classification = "medium"
	Hard   Classification = "hard"

	Beginner     Classification = "beginner"
	Intermediate Classification = "intermediate"
	Advanced     Classification = "advanced"
)

type schemeDef struct {
	levels   []Classification
	colors   []string
	fallback string
}

var schemes = map[Scheme]schemeDef{
	SchemeDifficulty: {
		levels:   []Classification{Easy, Medium, Hard},
		colors:   []string{"#10B981", "#F59E0B", "#EF4444"},
		fallback: "#6B7280",
	},
	SchemeExperience: {
		levels:   []Classification{Beginner, Intermediate, Advanced},
		colors:   []string{"#4CAF50", "#FF9800", "#F44336"},
		fallback: "#757575",
	},
}

// Schemes lists the supported schemes in a stable order.
func Schemes() []Scheme {
	return []Scheme{SchemeDifficulty, SchemeExperience}
}

func (s Scheme) IsValid() bool {
	_, ok := schemes[s]
	return ok
}

// Levels returns the scheme's levels from lowest to highest. The returned
// slice is a copy.
func (s Scheme) Levels() []Classification {
	def, ok := schemes[s]
	if !ok {
		return nil
	}
	return append([]Classification(nil), def.levels...)
}

// Rank returns the ordinal of c within the scheme, or -1 if c is not one of
// its levels.
func (s Scheme) Rank(c Classification) int {
	for i, l := range schemes[s].levels {
		if l == c {
			return i
		}
	}
	return -1
}

func (s Scheme) Contains(c Classification) bool {
	return s.Rank(c) >= 0
}

// Color returns the display color for c. Values outside the scheme get the
// scheme's fallback color.
func (s Scheme) Color(c Classification) string {
	def, ok := schemes[s]
	if !ok {
		return schemes[SchemeDifficulty].fallback
	}
	if i := s.Rank(c); i >= 0 {
		return def.colors[i]
	}
	return def.fallback
}

// SchemeOf returns the scheme that contains c.
func SchemeOf(c Classification) (Scheme, bool) {
	for _, s := range Schemes() {
		if s.Contains(c) {
			return s, true
		}
	}
	return "", false
}
