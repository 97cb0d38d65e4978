package model

import "strings"

// Organization identifies one of the affiliated entities email is sent
// on behalf of. Identifiers double as display names on the wire.
type Organization string

const (
	OrgFreeSA           Organization = "Free SA"
	OrgTLUSA            Organization = "TLU SA"
	OrgFirearmsGuardian Organization = "Firearms Guardian"
	OrgCivilSocietySA   Organization = "Civil Society SA"
)

func (o Organization) String() string { return string(o) }

// ParseOrganization normalizes input case/whitespace.
// Returns (value, true) if the identifier is known.
func ParseOrganization(s string) (Organization, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free sa":
		return OrgFreeSA, true
	case "tlu sa":
		return OrgTLUSA, true
	case "firearms guardian":
		return OrgFirearmsGuardian, true
	case "civil society sa":
		return OrgCivilSocietySA, true
	default:
		return "", false
	}
}

// OrganizationConfig is the static per-organization record: branding,
// verified sender identity and feature flags. Read-only at runtime.
type OrganizationConfig struct {
	Name            Organization
	FullName        string
	SenderEmail     string
	Color           string
	ColorDark       string
	Agents          []string
	ShowBankDetails bool
	HasAttachment   bool
}
