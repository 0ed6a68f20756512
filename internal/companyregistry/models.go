// Package companyregistry looks up UK companies in the Companies House
// register during business client onboarding.
package companyregistry

import (
	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// Company is a registered company's profile as returned to the dashboard.
type Company struct {
	CompanyNumber           string `json:"company_number"`
	CompanyName             string `json:"company_name"`
	CompanyType             string `json:"company_type"`
	CompanyStatus           string `json:"company_status"`
	IncorporationDate       string `json:"incorporation_date"`
	RegisteredOfficeAddress string `json:"registered_office_address"`

	// Accounts deadlines.
	AccountsNextMadeUpTo string `json:"accounts_next_made_up_to,omitempty"`
	AccountsDueBy        string `json:"accounts_due_by,omitempty"`
	AccountsLastMadeUpTo string `json:"accounts_last_made_up_to,omitempty"`

	// Confirmation statement deadlines.
	ConfirmationNextDate string `json:"confirmation_next_date,omitempty"`
	ConfirmationDueBy    string `json:"confirmation_due_by,omitempty"`
	ConfirmationLastDate string `json:"confirmation_last_date,omitempty"`
}

// Officer is an active officer of a company. The first officer returned by
// the register is flagged as the primary contact for onboarding.
type Officer struct {
	OfficerName           string `json:"officer_name"`
	OfficerRole           string `json:"officer_role"`
	AppointedDate         string `json:"appointed_date,omitempty"`
	DateOfBirthMonth      int    `json:"date_of_birth_month,omitempty"`
	DateOfBirthYear       int    `json:"date_of_birth_year,omitempty"`
	Nationality           string `json:"nationality,omitempty"`
	CountryOfResidence    string `json:"country_of_residence,omitempty"`
	Occupation            string `json:"occupation,omitempty"`
	CorrespondenceAddress string `json:"correspondence_address,omitempty"`
	IsPrimaryContact      bool   `json:"is_primary_contact"`
}

// ExistingClient identifies a business client already onboarded with the
// looked-up company number.
type ExistingClient struct {
	ID            id.ClientID `json:"id"`
	CompanyName   string      `json:"company_name"`
	CompanyNumber string      `json:"company_number"`
}

// LookupResult is the outcome of a company number lookup. Exists reports a
// duplicate in the client directory; otherwise Company and Officers carry
// the register data.
type LookupResult struct {
	Exists         bool            `json:"exists"`
	ExistingClient *ExistingClient `json:"existingClient,omitempty"`
	Company        *Company        `json:"company,omitempty"`
	Officers       []Officer       `json:"officers,omitempty"`
}
