package domain

import "fmt"

// UserRole is the coarse access role attached to a user account.
type UserRole string

const (
	RoleUnknown UserRole = "unknown"
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
)

// ParseUserRole maps a wire string to a UserRole. Unrecognized values are an
// error so callers fail validation instead of silently defaulting.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleStaff, RoleUnknown:
		return UserRole(s), nil
	}
	return RoleUnknown, fmt.Errorf("%w: role %q", ErrUnknownEnumValue, s)
}

// UserStatus is the lifecycle state of a user account. Soft-deleted users are
// kept on disk but excluded from listings.
type UserStatus string

const (
	StatusUnknown UserStatus = "unknown"
	StatusActive  UserStatus = "active"
	StatusDeleted UserStatus = "deleted"
)

// ConfigRole is a fine-grained permission grant, distinct from UserRole.
type ConfigRole string

const (
	ConfigRoleUserAdmin     ConfigRole = "user_admin"
	ConfigRoleRuleAdmin     ConfigRole = "rule_admin"
	ConfigRoleQuoteManager  ConfigRole = "quote_manager"
	ConfigRoleBusinessAdmin ConfigRole = "business_admin"
	ConfigRoleAuditViewer   ConfigRole = "audit_viewer"
)

// BootstrapPassword is the well-known credential assigned to freshly created
// accounts. It stays valid only while Logins is zero and the stored hash still
// equals it verbatim; the first password change retires it.
const BootstrapPassword = "12345"

// User is an identity record.
type User struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Name         string       `json:"name" bson:"name"`
	Email        string       `json:"email" bson:"email"`
	Role         UserRole     `json:"role" bson:"role"`
	Phone        string       `json:"phone" bson:"phone"`
	Nationality  string       `json:"nationality" bson:"nationality"`
	Address      string       `json:"address" bson:"address"`
	ConfigRoles  []ConfigRole `json:"config_roles" bson:"config_roles"`
	PasswordHash string       `json:"-" bson:"password_hash"`
	Logins       int          `json:"logins" bson:"logins"`
	Status       UserStatus   `json:"status" bson:"status"`
}

// IsBootstrap reports whether the account is still on its initial credential.
func (u *User) IsBootstrap() bool {
	return u.Logins == 0 && u.PasswordHash == BootstrapPassword
}
