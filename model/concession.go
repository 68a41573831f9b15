package model

import "time"

type ConcessionItem struct {
	DTO
	Name     string  `gorm:"not null;unique" json:"name"`
	Category string  `gorm:"size:20" json:"category"` // FOOD, DRINK, COMBO
	Price    float64 `gorm:"not null" json:"price"`
	Active   bool    `gorm:"default:true" json:"active"`
}

type FoodOrderStatus string

const (
	FoodOrderPaid      FoodOrderStatus = "PAID"
	FoodOrderCancelled FoodOrderStatus = "CANCELLED"
)

// FoodOrder settles through the same change calculator as tickets: cash
// orders carry a denomination-exact breakdown.
type FoodOrder struct {
	DTO
	PublicCode      string          `gorm:"unique;size:20" json:"publicCode"`
	Status          FoodOrderStatus `gorm:"not null;default:'PAID'" json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	AmountPaid      float64         `json:"amountPaid"`
	ChangeAmount    float64         `json:"changeAmount"`
	ChangeBreakdown ChangeBreakdown `gorm:"type:text" json:"changeBreakdown"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`

	CustomerId *uint     `json:"customerId,omitempty"`
	Customer   *Customer `json:"-"`

	Items []FoodOrderItem `gorm:"foreignKey:FoodOrderId" json:"items"`
}

type FoodOrderItem struct {
	DTO
	FoodOrderId      uint    `json:"foodOrderId"`
	ConcessionItemId uint    `json:"concessionItemId"`
	ItemName         string  `json:"itemName"`
	UnitPrice        float64 `json:"unitPrice"`
	Quantity         int     `json:"quantity"`
	LineTotal        float64 `json:"lineTotal"`
}

type FoodOrderLineInput struct {
	ConcessionItemId uint `json:"concessionItemId" validate:"required,gt=0"`
	Quantity         int  `json:"quantity" validate:"required,gt=0"`
}

type CreateFoodOrderInput struct {
	Items         []FoodOrderLineInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string               `json:"paymentMethod" validate:"required,oneof=CASH CARD"`
	AmountPaid    float64              `json:"amountPaid" validate:"required,gt=0"`
	CustomerEmail string               `json:"customerEmail" validate:"omitempty,email"`
}
