package domain

import "time"

const (
	RoleBuyer  = "comprador"
	RoleSeller = "vendedor"
	RoleAdmin  = "admin"
)

// ValidRole reports whether r is one of the roles the API accepts.
func ValidRole(r string) bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"direccion"`
	Role         string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanMutateUser reports whether the actor may update or delete the given
// account: owners act on themselves, admins on anyone.
func (u *User) CanMutateUser(actorID int64, actorRole string) bool {
	return u.ID == actorID || actorRole == RoleAdmin
}
