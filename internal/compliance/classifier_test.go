package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func identityDoc(expiry *time.Time) Document {
	return Document{Class: ClassIdentity, Type: "UK Passport", ExpiryDate: expiry}
}

func proofOfAddressDoc(issue *time.Time) Document {
	return Document{Class: ClassProofOfAddress, Type: "Council Tax Bill", IssueDate: issue}
}

func TestClassifyIdentity_Boundaries(t *testing.T) {
	asOf := date("2024-12-04")

	tests := []struct {
		name          string
		expiry        *time.Time
		wantStatus    Status
		wantRemaining int
	}{
		{"expired yesterday", datePtr("2024-12-03"), StatusExpired, -1},
		{"expires today", datePtr("2024-12-04"), StatusExpiringSoon, 0},
		{"30 days out is expiring-soon", datePtr("2025-01-03"), StatusExpiringSoon, 30},
		{"31 days out is expiring", datePtr("2025-01-04"), StatusExpiring, 31},
		{"90 days out is expiring", datePtr("2025-03-04"), StatusExpiring, 90},
		{"91 days out is valid", datePtr("2025-03-05"), StatusValid, 91},
		{"missing expiry is unknown", nil, StatusUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(identityDoc(tt.expiry), asOf)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantRemaining, got.DaysRemaining)
		})
	}
}

// The dashboard's historical example: a passport that expired on
// 2024-11-15 viewed on 2024-12-04 shows "Expired (19 days ago)".
func TestClassifyIdentity_ExpiredPassportExample(t *testing.T) {
	got := Classify(identityDoc(datePtr("2024-11-15")), date("2024-12-04"))

	require.Equal(t, StatusExpired, got.Status)
	assert.Equal(t, -19, got.DaysRemaining)
	assert.Equal(t, 19, got.DaysOverdue())
}

// Partial days round up: a passport expiring at midnight tomorrow, viewed
// mid-afternoon, still has one whole day counted.
func TestClassifyIdentity_PartialDaysRoundUp(t *testing.T) {
	asOf := date("2024-12-04").Add(15*time.Hour + 30*time.Minute)
	expiry := date("2024-12-20")

	got := Classify(identityDoc(&expiry), asOf)
	assert.Equal(t, StatusExpiringSoon, got.Status)
	assert.Equal(t, 16, got.DaysRemaining)
}

func TestClassifyProofOfAddress_Boundaries(t *testing.T) {
	asOf := date("2024-11-08")

	issuedDaysAgo := func(n int) *time.Time {
		d := asOf.AddDate(0, 0, -n)
		return &d
	}

	tests := []struct {
		name          string
		issue         *time.Time
		wantStatus    Status
		wantRemaining int
	}{
		{"issued today is valid", issuedDaysAgo(0), StatusValid, 90},
		{"59 days old is valid", issuedDaysAgo(59), StatusValid, 31},
		{"60 days old is expiring", issuedDaysAgo(60), StatusExpiring, 30},
		{"75 days old is expiring", issuedDaysAgo(75), StatusExpiring, 15},
		{"76 days old is expiring-soon", issuedDaysAgo(76), StatusExpiringSoon, 14},
		{"89 days old is expiring-soon", issuedDaysAgo(89), StatusExpiringSoon, 1},
		{"90 days old is expired", issuedDaysAgo(90), StatusExpired, 0},
		{"91 days old is expired", issuedDaysAgo(91), StatusExpired, -1},
		{"missing issue date is unknown", nil, StatusUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(proofOfAddressDoc(tt.issue), asOf)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantRemaining, got.DaysRemaining)
		})
	}
}

// A proof of address issued 2024-08-10 is expired exactly 90 days later and
// expiring-soon the day before.
func TestClassifyProofOfAddress_RollingWindowExample(t *testing.T) {
	doc := proofOfAddressDoc(datePtr("2024-08-10"))

	atBoundary := Classify(doc, date("2024-11-08"))
	assert.Equal(t, StatusExpired, atBoundary.Status)

	dayBefore := Classify(doc, date("2024-11-07"))
	assert.Equal(t, StatusExpiringSoon, dayBefore.Status)
	assert.Equal(t, 1, dayBefore.DaysRemaining)
}

// Classification totality: well-formed dates yield exactly one of the four
// lifecycle statuses, malformed records yield Unknown, and Classify never
// panics.
func TestClassify_Totality(t *testing.T) {
	asOf := date("2025-01-01")

	t.Run("well-formed documents never classify unknown", func(t *testing.T) {
		for offset := -400; offset <= 400; offset += 7 {
			d := asOf.AddDate(0, 0, offset)

			idStatus := Classify(identityDoc(&d), asOf).Status
			assert.NotEqual(t, StatusUnknown, idStatus, "identity offset %d", offset)

			poaStatus := Classify(proofOfAddressDoc(&d), asOf).Status
			assert.NotEqual(t, StatusUnknown, poaStatus, "poa offset %d", offset)
		}
	})

	t.Run("documents missing required dates are unknown", func(t *testing.T) {
		// An identity document with only an issue date is still malformed.
		malformed := identityDoc(nil)
		malformed.IssueDate = datePtr("2024-01-01")
		assert.Equal(t, StatusUnknown, Classify(malformed, asOf).Status)

		assert.Equal(t, StatusUnknown, Classify(proofOfAddressDoc(nil), asOf).Status)
	})

	t.Run("unrecognized document class is unknown", func(t *testing.T) {
		doc := Document{Class: "selfie", IssueDate: datePtr("2024-01-01")}
		assert.Equal(t, StatusUnknown, Classify(doc, asOf).Status)
	})
}

func TestStatus_SeverityOrder(t *testing.T) {
	assert.True(t, StatusUnknown.MoreSevere(StatusExpired))
	assert.True(t, StatusExpired.MoreSevere(StatusExpiringSoon))
	assert.True(t, StatusExpiringSoon.MoreSevere(StatusExpiring))
	assert.True(t, StatusExpiring.MoreSevere(StatusValid))
	assert.False(t, StatusValid.MoreSevere(StatusUnknown))
}

func TestStatus_WireStrings(t *testing.T) {
	for status, want := range map[Status]string{
		StatusUnknown:      "unknown",
		StatusExpired:      "expired",
		StatusExpiringSoon: "expiring-soon",
		StatusExpiring:     "expiring",
		StatusValid:        "valid",
	} {
		assert.Equal(t, want, status.String())

		parsed, err := ParseStatus(want)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseStatus("pending")
	assert.Error(t, err)
}
