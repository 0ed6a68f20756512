package companyregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/sentinel"
)

// Client calls the Companies House public data API. Authentication is HTTP
// basic with the API key as the username and an empty password.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Raw API shapes. Addresses arrive structured and are flattened for the
// dashboard; absent lines are dropped, not rendered empty.
type apiAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Locality     string `json:"locality"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (a apiAddress) join() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.AddressLine1, a.AddressLine2, a.Locality, a.PostalCode, a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

type apiCompanyProfile struct {
	CompanyNumber           string     `json:"company_number"`
	CompanyName             string     `json:"company_name"`
	CompanyStatus           string     `json:"company_status"`
	Type                    string     `json:"type"`
	DateOfCreation          string     `json:"date_of_creation"`
	RegisteredOfficeAddress apiAddress `json:"registered_office_address"`
	Accounts                struct {
		NextMadeUpTo string `json:"next_made_up_to"`
		NextDue      string `json:"next_due"`
		LastAccounts struct {
			MadeUpTo string `json:"made_up_to"`
		} `json:"last_accounts"`
	} `json:"accounts"`
	ConfirmationStatement struct {
		NextMadeUpTo string `json:"next_made_up_to"`
		NextDue      string `json:"next_due"`
		LastMadeUpTo string `json:"last_made_up_to"`
	} `json:"confirmation_statement"`
}

type apiOfficer struct {
	Name        string `json:"name"`
	OfficerRole string `json:"officer_role"`
	AppointedOn string `json:"appointed_on"`
	ResignedOn  string `json:"resigned_on"`
	DateOfBirth struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	} `json:"date_of_birth"`
	Nationality        string      `json:"nationality"`
	CountryOfResidence string      `json:"country_of_residence"`
	Occupation         string      `json:"occupation"`
	Address            *apiAddress `json:"address"`
}

type apiOfficerList struct {
	Items []apiOfficer `json:"items"`
}

// CompanyProfile fetches a company's register entry. An unregistered
// number returns sentinel.ErrNotFound.
func (c *Client) CompanyProfile(ctx context.Context, companyNumber string) (Company, error) {
	var profile apiCompanyProfile
	if err := c.get(ctx, "/company/"+companyNumber, &profile); err != nil {
		return Company{}, err
	}

	return Company{
		CompanyNumber:           profile.CompanyNumber,
		CompanyName:             profile.CompanyName,
		CompanyType:             profile.Type,
		CompanyStatus:           profile.CompanyStatus,
		IncorporationDate:       profile.DateOfCreation,
		RegisteredOfficeAddress: profile.RegisteredOfficeAddress.join(),
		AccountsNextMadeUpTo:    profile.Accounts.NextMadeUpTo,
		AccountsDueBy:           profile.Accounts.NextDue,
		AccountsLastMadeUpTo:    profile.Accounts.LastAccounts.MadeUpTo,
		ConfirmationNextDate:    profile.ConfirmationStatement.NextMadeUpTo,
		ConfirmationDueBy:       profile.ConfirmationStatement.NextDue,
		ConfirmationLastDate:    profile.ConfirmationStatement.LastMadeUpTo,
	}, nil
}

// Officers fetches the company's active officers. Resigned officers are
// dropped; the first remaining officer is the primary contact. An error
// from the officers endpoint is not fatal to onboarding, so callers may
// treat a failure here as an empty list.
func (c *Client) Officers(ctx context.Context, companyNumber string) ([]Officer, error) {
	var list apiOfficerList
	if err := c.get(ctx, "/company/"+companyNumber+"/officers", &list); err != nil {
		return nil, err
	}

	var officers []Officer
	for _, item := range list.Items {
		if item.ResignedOn != "" {
			continue
		}
		officer := Officer{
			OfficerName:        item.Name,
			OfficerRole:        item.OfficerRole,
			AppointedDate:      item.AppointedOn,
			DateOfBirthMonth:   item.DateOfBirth.Month,
			DateOfBirthYear:    item.DateOfBirth.Year,
			Nationality:        item.Nationality,
			CountryOfResidence: item.CountryOfResidence,
			Occupation:         item.Occupation,
			IsPrimaryContact:   len(officers) == 0,
		}
		if item.Address != nil {
			officer.CorrespondenceAddress = item.Address.join()
		}
		officers = append(officers, officer)
	}
	return officers, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build registry request")
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "registry unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sentinel.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("registry returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "decode registry response")
	}
	return nil
}
