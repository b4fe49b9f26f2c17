package models

import (
	"strings"
	"time"
)

// Customer types
const (
	CustomerTypeIndividual   = "individual"
	CustomerTypeOrganization = "organization"
)

// Customer is a renter on record, either a person or an organization
type Customer struct {
	ID           string
	CustomerType string
	FirstName    string
	LastName     string
	CompanyName  string
	NationalID   string
	Nationality  string
	Phone        string
	Email        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName resolves the name printed on legal documents. Organizations use
// their company name; individuals use "first last" trimmed. Empty result means
// the caller must fall back to its own snapshot of the name.
func (c *Customer) DisplayName() string {
	if c.CustomerType == CustomerTypeOrganization && c.CompanyName != "" {
		return c.CompanyName
	}
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.CompanyName
	}
	return name
}
