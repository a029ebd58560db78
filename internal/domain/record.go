package domain

// RecordType classifies a searchable content unit.
type RecordType string

// Supported record types.
const (
	TypeQuestion    RecordType = "question"
	TypeNews        RecordType = "news"
	TypeExam        RecordType = "exam"
	TypeSyllabus    RecordType = "syllabus"
	TypeEligibility RecordType = "eligibility"
)

// Metadata keys used by the scorer and filters.
const (
	MetaExamType   = "examType"
	MetaTopic      = "topic"
	MetaDifficulty = "difficulty"
	MetaCategory   = "category"
	MetaDate       = "date"
	MetaYear       = "year"
	MetaMarks      = "marks"
	MetaPercentage = "percentage"
)

// SearchableRecord is a flattened, bilingual content unit assembled by the
// content repository. IDs are unique within one collection pass only.
type SearchableRecord struct {
	ID         string            `json:"id"`
	Type       RecordType        `json:"type"`
	Title      string            `json:"title"`
	TitleHindi string            `json:"titleHindi,omitempty"`
	Body       string            `json:"body,omitempty"`
	BodyHindi  string            `json:"bodyHindi,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Meta returns a metadata value, empty string when absent.
func (r *SearchableRecord) Meta(key string) string {
	if r.Metadata == nil {
		return ""
	}
	return r.Metadata[key]
}

// ScoredResult is a record with its computed relevance. Relevance is 1.0 for
// raw substring matches and a 0.7/0.3 blend of exact and semantic scores
// otherwise.
type ScoredResult struct {
	SearchableRecord
	Relevance float64 `json:"relevance"`
}

// Filters restricts search results by record attributes. Dimensions are
// AND'ed; an empty dimension means no restriction.
type Filters struct {
	ExamTypes []string `json:"examType,omitempty"`
	Types     []string `json:"type,omitempty"`
	Topics    []string `json:"topic,omitempty"`
}

// Empty reports whether no filter dimension is set.
func (f Filters) Empty() bool {
	return len(f.ExamTypes) == 0 && len(f.Types) == 0 && len(f.Topics) == 0
}

// Match reports whether a record passes all set dimensions.
func (f Filters) Match(r *SearchableRecord) bool {
	if len(f.ExamTypes) > 0 && !contains(f.ExamTypes, r.Meta(MetaExamType)) {
		return false
	}
	if len(f.Types) > 0 && !contains(f.Types, string(r.Type)) {
		return false
	}
	if len(f.Topics) > 0 && !contains(f.Topics, r.Meta(MetaTopic)) {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// KeyInfo is the advisory summary block attached to a search response.
type KeyInfo struct {
	Summary         string   `json:"summary"`
	KeyTopics       []string `json:"keyTopics"`
	Recommendations []string `json:"recommendations"`
}
