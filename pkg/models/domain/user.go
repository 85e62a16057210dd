package domain

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type UserType string

const (
	UserTypePartner  UserType = "PARTNER"
	UserTypeCustomer UserType = "CUSTOMER"
)

type User struct {
	ID      string
	Name    string
	Email   string
	Type    UserType
	Country string
	Status  UserStatus
}

// UserFilters narrows a user listing. Zero values mean "no filter".
type UserFilters struct {
	Status UserStatus
	Type   UserType
	Search string
}

// UserUpdate carries the fields an update is allowed to touch.
// Nil pointers leave the current value untouched.
type UserUpdate struct {
	Name   *string     `json:"name" validate:"omitempty,min=1"`
	Email  *string     `json:"email" validate:"omitempty,email"`
	Status *UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}
