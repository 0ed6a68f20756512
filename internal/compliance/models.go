// Package compliance implements the KYC document status rules: pure
// classification of identity and proof-of-address documents against a
// reference date, plus aggregation over document lists.
package compliance

import (
	"encoding/json"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

// SubjectKind distinguishes individual from business clients.
type SubjectKind string

const (
	SubjectIndividual SubjectKind = "individual"
	SubjectBusiness   SubjectKind = "business"
)

// ParseSubjectKind validates a subject kind from transport input.
func ParseSubjectKind(s string) (SubjectKind, error) {
	switch SubjectKind(s) {
	case SubjectIndividual, SubjectBusiness:
		return SubjectKind(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown client type %q", s)
}

// DocumentClass selects which classification rule applies.
type DocumentClass string

const (
	// ClassIdentity documents (passport, driving licence) carry an explicit
	// expiry date.
	ClassIdentity DocumentClass = "identity"
	// ClassProofOfAddress documents (utility bill, bank statement) are valid
	// for a rolling window from their issue date.
	ClassProofOfAddress DocumentClass = "proof_of_address"
)

// Status is the derived compliance urgency of a document. The zero value is
// StatusUnknown; ordering is by severity, most severe first, so Unknown
// (malformed record) sorts ahead of Expired.
type Status int

const (
	StatusUnknown Status = iota
	StatusExpired
	StatusExpiringSoon
	StatusExpiring
	StatusValid
)

// statusNames uses the dashboard's wire strings.
var statusNames = map[Status]string{
	StatusUnknown:      "unknown",
	StatusExpired:      "expired",
	StatusExpiringSoon: "expiring-soon",
	StatusExpiring:     "expiring",
	StatusValid:        "valid",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatus validates a status filter value from transport input.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, dErrors.Newf(dErrors.CodeInvalidInput, "unknown status %q", s)
}

// MoreSevere reports whether s is strictly more urgent than other.
func (s Status) MoreSevere(other Status) bool { return s < other }

// ActionRequired reports whether the renewal workflow should pick this
// document up.
func (s Status) ActionRequired() bool {
	return s == StatusExpired || s == StatusExpiringSoon
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Document is the unit the engine reasons about. The Client Directory owns
// these records; the engine only reads them.
type Document struct {
	ID          domain.DocumentID
	SubjectID   domain.ClientID
	SubjectKind SubjectKind
	SubjectName string
	Email       string
	Phone       string
	Class       DocumentClass
	// Type is the free-form document label, e.g. "UK Passport" or
	// "Council Tax Bill".
	Type string
	// IssueDate is required for proof-of-address documents.
	IssueDate *time.Time
	// ExpiryDate is required for identity documents.
	ExpiryDate *time.Time
	// LastReminderSentAt is the most recent renewal notice, if any.
	LastReminderSentAt *time.Time
}

// Assessment is the classification result for one document at one instant.
// DaysRemaining is negative once the document has expired; it is zero for
// StatusUnknown, where no date arithmetic is possible.
type Assessment struct {
	Status        Status `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// DaysOverdue returns how many days past expiry the document is, or 0 while
// it is still within its validity window.
func (a Assessment) DaysOverdue() int {
	if a.DaysRemaining < 0 {
		return -a.DaysRemaining
	}
	return 0
}

// CountsByStatus maps every status, including Unknown, to its document count.
type CountsByStatus map[Status]int

// Total sums all counts. For any input list, Total equals the list length:
// no document is silently dropped.
func (c CountsByStatus) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
