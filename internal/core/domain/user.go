package domain

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSeller   UserRole = "seller"
	RoleCustomer UserRole = "customer"
)

type User struct {
	ID             uint64
	Name           string
	Email          string
	PhoneNumber    string
	Role           UserRole
	PaymentMode    string
	PaymentDetails string
}

type Address struct {
	ID         uint64
	UserID     uint64
	Line1      string
	City       string
	PostalCode string
	Country    string
	Phone      string
}
