package awsconfig

import "strings"

// Profile represents one [profile X] section from the AWS config file.
// It is built in a single parse pass and read-only afterwards.
type Profile struct {
	Name       string
	Attributes map[string]string
}

// AccountID returns the sso_account_id attribute if present
func (p Profile) AccountID() (string, bool) {
	v, ok := p.Attributes["sso_account_id"]
	return v, ok
}

// Region returns the region attribute if present
func (p Profile) Region() (string, bool) {
	v, ok := p.Attributes["region"]
	return v, ok
}

// RoleName returns the sso_role_name attribute if present
func (p Profile) RoleName() (string, bool) {
	v, ok := p.Attributes["sso_role_name"]
	return v, ok
}

// DisplayLabel formats a profile for the interactive list: the name followed
// by "(account)", "[region]" and "{role}" segments, each omitted when the
// underlying attribute is absent.
func (p Profile) DisplayLabel() string {
	parts := []string{p.Name}

	if accountID, ok := p.AccountID(); ok {
		parts = append(parts, "("+accountID+")")
	}
	if region, ok := p.Region(); ok {
		parts = append(parts, "["+region+"]")
	}
	if role, ok := p.RoleName(); ok {
		parts = append(parts, "{"+role+"}")
	}

	return strings.Join(parts, " ")
}
