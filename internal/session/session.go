package session

import "fmt"

// Role identifies a dashboard user role
type Role string

const (
	RoleAdmin          Role = "VXR"
	RoleCountryManager Role = "CM"
	RoleBranchManager  Role = "BM"
	RoleEngineer       Role = "ENG"
)

var validRoles = map[Role]bool{
	RoleAdmin:          true,
	RoleCountryManager: true,
	RoleBranchManager:  true,
	RoleEngineer:       true,
}

// IsValid returns true if the role is a known dashboard role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Session holds the identity established by a successful login.
// It is read-only from the submission workflow's perspective: the
// region and user ids are injected into outbound payloads, never
// written back.
type Session struct {
	Token      string
	UserID     string
	UserName   string
	Role       Role
	RegionID   string
	RegionName string
	RegionCode string
}

// Authenticated returns true if the session carries a token and user id
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.UserID != ""
}

// CanManageUsers reports whether the session may administer users and regions
func (s *Session) CanManageUsers() bool {
	return s.Authenticated() && s.Role == RoleAdmin
}

// CanSubmitReports reports whether the session may file service reports.
// Mirrors the dashboard's route gate: admins, country managers, branch
// managers and engineers.
func (s *Session) CanSubmitReports() bool {
	if !s.Authenticated() {
		return false
	}
	switch s.Role {
	case RoleAdmin, RoleCountryManager, RoleBranchManager, RoleEngineer:
		return true
	}
	return false
}

// CanViewReports follows the same gate as report submission
func (s *Session) CanViewReports() bool {
	return s.CanSubmitReports()
}

// Validate checks the session for the fields the submission workflow needs
func (s *Session) Validate() error {
	if !s.Authenticated() {
		return fmt.Errorf("session is not authenticated")
	}
	if s.RegionID == "" {
		return fmt.Errorf("session has no region id")
	}
	if !s.Role.IsValid() {
		return fmt.Errorf("unknown role: %s", s.Role)
	}
	return nil
}
