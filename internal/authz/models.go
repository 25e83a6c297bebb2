package authz

import (
	"strings"

	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
)

// Role is the closed set of user roles. Authorization compares roles for
// equality; there is no capability matrix.
type Role string

const (
	RoleStandard       Role = "standard"
	RoleAdministrator  Role = "administrator"
	RoleRecordsManager Role = "records_manager"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStandard, RoleAdministrator, RoleRecordsManager:
		return r, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
	}
}

func (r Role) String() string {
	return string(r)
}

// Location carries the access-relevant attributes of a location.
type Location struct {
	ID         id.LocationID `json:"id"`
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Restricted bool          `json:"restricted"`
}
