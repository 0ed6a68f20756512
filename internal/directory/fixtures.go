package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// Development fixtures: a small client book covering every compliance
// status so the dashboard is populated out of the box. IDs are fixed so
// restarts keep the same URLs.

func fixtureClientID(n byte) domain.ClientID {
	return domain.ClientID(uuid.UUID{0xc1, 15: n})
}

func fixtureDocumentID(n byte) domain.DocumentID {
	return domain.DocumentID(uuid.UUID{0xd0, 15: n})
}

func fixtureDate(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// FixtureDocuments returns the seed document book for development mode.
func FixtureDocuments() []compliance.Document {
	return []compliance.Document{
		{
			ID:          fixtureDocumentID(1),
			SubjectID:   fixtureClientID(1),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Sarah Johnson",
			Email:       "sarah.johnson@email.com",
			Phone:       "07700 900123",
			Class:       compliance.ClassIdentity,
			Type:        "UK Passport",
			ExpiryDate:  fixtureDate(2024, time.November, 15),
		},
		{
			ID:          fixtureDocumentID(2),
			SubjectID:   fixtureClientID(2),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Michael Chen",
			Email:       "m.chen@email.com",
			Phone:       "07700 900456",
			Class:       compliance.ClassIdentity,
			Type:        "UK Driving Licence",
			ExpiryDate:  fixtureDate(2024, time.December, 20),
		},
		{
			ID:          fixtureDocumentID(3),
			SubjectID:   fixtureClientID(3),
			SubjectKind: compliance.SubjectBusiness,
			SubjectName: "Tech Solutions Ltd",
			Email:       "accounts@techsolutions.co.uk",
			Phone:       "020 7946 0958",
			Class:       compliance.ClassIdentity,
			Type:        "Director Passport (James Wilson)",
			ExpiryDate:  fixtureDate(2025, time.January, 15),
		},
		{
			ID:          fixtureDocumentID(4),
			SubjectID:   fixtureClientID(4),
			SubjectKind: compliance.SubjectBusiness,
			SubjectName: "Green Energy Corp",
			Email:       "info@greenenergy.co.uk",
			Phone:       "0161 496 0123",
			Class:       compliance.ClassIdentity,
			Type:        "Director Passport (Lisa Brown)",
			ExpiryDate:  fixtureDate(2025, time.February, 28),
		},
		{
			ID:          fixtureDocumentID(5),
			SubjectID:   fixtureClientID(5),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "David Thompson",
			Email:       "d.thompson@email.com",
			Phone:       "07700 900321",
			Class:       compliance.ClassIdentity,
			Type:        "EU National ID",
			ExpiryDate:  fixtureDate(2025, time.March, 15),
		},
		{
			ID:          fixtureDocumentID(6),
			SubjectID:   fixtureClientID(6),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Robert Garcia",
			Email:       "r.garcia@email.com",
			Phone:       "07700 900654",
			Class:       compliance.ClassIdentity,
			Type:        "UK Biometric Residence Permit",
			ExpiryDate:  fixtureDate(2024, time.November, 30),
		},
		{
			ID:          fixtureDocumentID(7),
			SubjectID:   fixtureClientID(7),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Emma Williams",
			Email:       "emma.w@email.com",
			Phone:       "07700 900789",
			Class:       compliance.ClassIdentity,
			Type:        "UK Passport",
			ExpiryDate:  fixtureDate(2025, time.June, 20),
		},
		{
			ID:          fixtureDocumentID(8),
			SubjectID:   fixtureClientID(1),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Sarah Johnson",
			Email:       "sarah.johnson@email.com",
			Phone:       "07700 900123",
			Class:       compliance.ClassProofOfAddress,
			Type:        "Council Tax Bill",
			IssueDate:   fixtureDate(2024, time.September, 10),
		},
		{
			ID:          fixtureDocumentID(9),
			SubjectID:   fixtureClientID(2),
			SubjectKind: compliance.SubjectIndividual,
			SubjectName: "Michael Chen",
			Email:       "m.chen@email.com",
			Phone:       "07700 900456",
			Class:       compliance.ClassProofOfAddress,
			Type:        "Bank Statement",
			// No issue date on file; classified unknown until provided.
		},
	}
}

// FixtureBusinesses returns the business client book for development mode.
func FixtureBusinesses() []BusinessClient {
	return []BusinessClient{
		{ID: fixtureClientID(3), CompanyName: "Tech Solutions Ltd", CompanyNumber: "09876543"},
		{ID: fixtureClientID(4), CompanyName: "Green Energy Corp", CompanyNumber: "11223344"},
	}
}
