// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Role is the marketplace role held by an account's profile. It is fixed at
// registration.
type Role string

const (
	// RoleCustomer buys offers and writes reviews.
	RoleCustomer Role = "customer"
	// RoleBusiness publishes offers and fulfils orders.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	default:
		return false
	}
}

// Caller is the authenticated account acting on a request, as resolved by the
// auth layer. Authorization is expressed through its capability methods.
type Caller struct {
	UserID  uuid.UUID
	Role    Role
	IsStaff bool
}

// CanPublishOffers reports whether the caller may create offers.
func (c Caller) CanPublishOffers() bool {
	return c.Role == RoleBusiness
}

// CanPlaceOrders reports whether the caller may buy an offer tier.
func (c Caller) CanPlaceOrders() bool {
	return c.Role == RoleCustomer
}

// CanChangeOrderStatus reports whether the caller may move orders between states.
func (c Caller) CanChangeOrderStatus() bool {
	return c.Role == RoleBusiness
}

// CanWriteReviews reports whether the caller may review a business.
func (c Caller) CanWriteReviews() bool {
	return c.Role == RoleCustomer
}

// Is reports whether the caller is the given account.
func (c Caller) Is(userID uuid.UUID) bool {
	return c.UserID == userID
}

// CanModify reports whether the caller owns a resource owned by ownerID or is staff.
func (c Caller) CanModify(ownerID uuid.UUID) bool {
	return c.IsStaff || c.UserID == ownerID
}
