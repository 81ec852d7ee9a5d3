package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a dish line frozen at order time. Name, image
// and price are never recomputed from the live catalog.
type OrderItem struct {
	DishID   primitive.ObjectID `json:"_id" bson:"dish_id"`
	Name     string             `json:"name" bson:"name"`
	Slug     string             `json:"slug" bson:"slug"`
	Image    string             `json:"image" bson:"image"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// DeliveryAddress is the destination snapshot stored on the order.
type DeliveryAddress struct {
	FullName string `json:"fullName" bson:"fullName"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	PinCode  string `json:"pinCode" bson:"pinCode"`
	Country  string `json:"country" bson:"country"`
}

// PaymentResult is the gateway receipt stored verbatim on the pay transition.
type PaymentResult struct {
	TransactionID string `json:"id" bson:"transaction_id"`
	Status        string `json:"status" bson:"status"`
	EmailAddress  string `json:"email_address" bson:"email_address"`
}

// Order is created exactly once; the item list and the four price fields are
// immutable after creation. The only mutations are the pay and deliver
// transitions.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"user" bson:"user_id"`
	OrderItems      []OrderItem        `json:"orderItems" bson:"order_items"`
	DeliveryAddress DeliveryAddress    `json:"deliveryAddress" bson:"delivery_address"`
	PaymentMethod   string             `json:"paymentMethod" bson:"payment_method"`
	ItemsPrice      float64            `json:"itemsPrice" bson:"itemsPrice"`
	TaxPrice        float64            `json:"taxPrice" bson:"taxPrice"`
	DeliveryPrice   float64            `json:"deliveryPrice" bson:"deliveryPrice"`
	TotalPrice      float64            `json:"totalPrice" bson:"totalPrice"`
	IsPaid          bool               `json:"isPaid" bson:"isPaid"`
	PaidAt          *time.Time         `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	PaymentResult   *PaymentResult     `json:"paymentResult,omitempty" bson:"paymentResult,omitempty"`
	IsDelivered     bool               `json:"isDelivered" bson:"isDelivered"`
	DeliveredAt     *time.Time         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
}

// OrderWithUser decorates an order with its owner's display name for the
// admin listing. The name falls back to "Deleted User" when the reference
// dangles.
type OrderWithUser struct {
	Order
	UserName string `json:"userName"`
}
