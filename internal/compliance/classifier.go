package compliance

import (
	"math"
	"time"
)

// Validity bands. Boundary values always belong to the stricter band: an
// identity document 30 days from expiry is expiring-soon, not expiring, and
// a proof of address is expired on day 90 exactly. Existing dashboards
// depend on these boundaries.
const (
	identityExpiringSoonDays = 30
	identityExpiringDays     = 90

	proofOfAddressValidityDays     = 90
	proofOfAddressExpiringSoonDays = 14
	proofOfAddressExpiringDays     = 30
)

// Classify maps a document and a reference date to its compliance status.
// Deterministic, no side effects, never errors: a record missing its
// required date degrades to StatusUnknown so one bad row never blocks a
// dashboard.
func Classify(doc Document, asOf time.Time) Assessment {
	switch doc.Class {
	case ClassIdentity:
		return classifyIdentity(doc.ExpiryDate, asOf)
	case ClassProofOfAddress:
		return classifyProofOfAddress(doc.IssueDate, asOf)
	default:
		return Assessment{Status: StatusUnknown}
	}
}

func classifyIdentity(expiryDate *time.Time, asOf time.Time) Assessment {
	if expiryDate == nil {
		return Assessment{Status: StatusUnknown}
	}

	daysUntilExpiry := ceilDays(expiryDate.Sub(asOf))
	assessment := Assessment{DaysRemaining: daysUntilExpiry}

	switch {
	case daysUntilExpiry < 0:
		assessment.Status = StatusExpired
	case daysUntilExpiry <= identityExpiringSoonDays:
		assessment.Status = StatusExpiringSoon
	case daysUntilExpiry <= identityExpiringDays:
		assessment.Status = StatusExpiring
	default:
		assessment.Status = StatusValid
	}
	return assessment
}

func classifyProofOfAddress(issueDate *time.Time, asOf time.Time) Assessment {
	if issueDate == nil {
		return Assessment{Status: StatusUnknown}
	}

	daysSinceIssue := ceilDays(asOf.Sub(*issueDate))
	daysRemaining := proofOfAddressValidityDays - daysSinceIssue
	assessment := Assessment{DaysRemaining: daysRemaining}

	switch {
	case daysRemaining <= 0:
		assessment.Status = StatusExpired
	case daysRemaining <= proofOfAddressExpiringSoonDays:
		assessment.Status = StatusExpiringSoon
	case daysRemaining <= proofOfAddressExpiringDays:
		assessment.Status = StatusExpiring
	default:
		assessment.Status = StatusValid
	}
	return assessment
}

// ceilDays rounds a duration up to whole days, so a document expiring later
// today still counts as having one partial day left and a document issued
// earlier today already counts one day of age.
func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
