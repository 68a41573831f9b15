package model

// Customer is a loyalty participant. The point balance may only be touched
// through EarnPoints/SpendPoints, which is what keeps it non-negative.
type Customer struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Password string `gorm:"not null" json:"-"`
	UserName string `json:"username"`

	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`

	Points   int  `gorm:"not null;default:0" json:"points"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	Tickets []Ticket `gorm:"foreignKey:CustomerId" json:"tickets,omitempty"`
}

// EarnPoints credits the balance. Non-positive amounts are a silent no-op.
func (c *Customer) EarnPoints(n int) {
	if n <= 0 {
		return
	}
	c.Points += n
}

// SpendPoints debits the balance, refusing (and leaving the balance
// untouched) when the request is non-positive or exceeds the balance.
func (c *Customer) SpendPoints(n int) bool {
	if n <= 0 || c.Points < n {
		return false
	}
	c.Points -= n
	return true
}

type RegisterCustomerInput struct {
	UserName string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=8" json:"password"`
}

type EditCustomerInput struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	UserName  *string `json:"username"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
