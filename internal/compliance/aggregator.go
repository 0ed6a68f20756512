package compliance

import (
	"strings"
	"time"
)

// Summarize counts documents by classified status. The counts always sum to
// len(docs): malformed records land in StatusUnknown rather than vanishing.
func Summarize(docs []Document, asOf time.Time) CountsByStatus {
	counts := CountsByStatus{
		StatusUnknown:      0,
		StatusExpired:      0,
		StatusExpiringSoon: 0,
		StatusExpiring:     0,
		StatusValid:        0,
	}
	for _, doc := range docs {
		counts[Classify(doc, asOf).Status]++
	}
	return counts
}

// Filter is a conjunction of optional predicates over a document list.
// Nil/empty fields match everything, so the zero Filter is a passthrough.
type Filter struct {
	Status      *Status
	SubjectKind *SubjectKind
	// Query matches case-insensitively as a substring of the subject name,
	// email, or document type.
	Query string
}

// Apply returns the documents matching every provided predicate, in input
// order. Applying the same filter twice yields the same result.
func (f Filter) Apply(docs []Document, asOf time.Time) []Document {
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if f.matches(doc, asOf) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func (f Filter) matches(doc Document, asOf time.Time) bool {
	if f.Status != nil && Classify(doc, asOf).Status != *f.Status {
		return false
	}
	if f.SubjectKind != nil && doc.SubjectKind != *f.SubjectKind {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(doc.SubjectName), q) &&
			!strings.Contains(strings.ToLower(doc.Email), q) &&
			!strings.Contains(strings.ToLower(doc.Type), q) {
			return false
		}
	}
	return true
}

// ActionRequired returns the renewal queue: documents classified Expired or
// ExpiringSoon, in input order.
func ActionRequired(docs []Document, asOf time.Time) []Document {
	queue := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if Classify(doc, asOf).Status.ActionRequired() {
			queue = append(queue, doc)
		}
	}
	return queue
}
