package services

import (
	"context"
	"time"

	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/middleware"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateOrderRequest is the checkout payload: the plate snapshot plus the
// client's preview of the derived prices.
type CreateOrderRequest struct {
	OrderItems      []models.OrderItem     `json:"orderItems" binding:"required"`
	DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	ItemsPrice      float64                `json:"itemsPrice"`
	DeliveryPrice   float64                `json:"deliveryPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// PayOrderRequest is the gateway receipt submitted after capture.
type PayOrderRequest struct {
	TransactionID string `json:"id" binding:"required"`
	Status        string `json:"status"`
	EmailAddress  string `json:"email_address"`
}

// OrderService manages the order lifecycle: CREATED -> PAID -> DELIVERED.
type OrderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	logger *zap.Logger
}

// NewOrderService creates an order service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, logger: logger}
}

// Create persists a new order snapshot with isPaid=false, isDelivered=false.
// The price fields are recomputed through the pricing engine from the
// submitted unit prices. Known gap: the unit prices themselves are taken from
// the client and not re-read from the catalog, so a tampered price survives
// into the snapshot.
func (s *OrderService) Create(ctx context.Context, userID primitive.ObjectID, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, apperrors.Validation("Plate is empty")
	}
	if req.PaymentMethod == "" {
		return nil, apperrors.Validation("Payment method is required")
	}
	if req.DeliveryAddress.Address == "" {
		return nil, apperrors.Validation("Delivery address is required")
	}

	priced := make([]PricedItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		if item.Quantity < 1 {
			return nil, apperrors.Validation("Item quantity must be at least 1")
		}
		if item.Price < 0 {
			return nil, apperrors.Validation("Item price must not be negative")
		}
		priced = append(priced, PricedItem{Price: item.Price, Quantity: item.Quantity})
	}

	prices := ComputePrices(priced)
	if req.TotalPrice != 0 && req.TotalPrice != prices.Total {
		s.logger.Warn("client total disagrees with recomputed total",
			zap.Float64("client_total", req.TotalPrice),
			zap.Float64("computed_total", prices.Total),
		)
	}

	order := &models.Order{
		UserID:          userID,
		OrderItems:      req.OrderItems,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      prices.Items,
		TaxPrice:        prices.Tax,
		DeliveryPrice:   prices.Delivery,
		TotalPrice:      prices.Total,
		IsPaid:          false,
		IsDelivered:     false,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", userID.Hex()),
		zap.Float64("total", order.TotalPrice),
	)
	return order, nil
}

// MarkPaid stores the gateway receipt verbatim and stamps paidAt. Not
// idempotent: a second call overwrites the receipt and timestamp.
func (s *OrderService) MarkPaid(ctx context.Context, orderID primitive.ObjectID, receipt *PayOrderRequest) (*models.Order, error) {
	now := time.Now().UTC()
	updates := bson.M{
		"isPaid": true,
		"paidAt": now,
		"paymentResult": models.PaymentResult{
			TransactionID: receipt.TransactionID,
			Status:        receipt.Status,
			EmailAddress:  receipt.EmailAddress,
		},
	}

	matched, err := s.orders.Update(ctx, orderID, updates)
	if err != nil {
		s.logger.Error("failed to mark order paid", zap.String("order_id", orderID.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound("Order not found")
	}

	s.logger.Info("order paid",
		zap.String("order_id", orderID.Hex()),
		zap.String("transaction_id", receipt.TransactionID),
	)
	return s.getByID(ctx, orderID)
}

// MarkDelivered stamps deliveredAt. Admin authorization is enforced by the
// route; an unpaid order can still be marked delivered (known gap, kept to
// match the existing workflow).
func (s *OrderService) MarkDelivered(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	updates := bson.M{
		"isDelivered": true,
		"deliveredAt": time.Now().UTC(),
	}

	matched, err := s.orders.Update(ctx, orderID, updates)
	if err != nil {
		s.logger.Error("failed to mark order delivered", zap.String("order_id", orderID.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound("Order not found")
	}

	s.logger.Info("order delivered", zap.String("order_id", orderID.Hex()))
	return s.getByID(ctx, orderID)
}

// GetByID fetches one order, scoped by the authorization policy.
func (s *OrderService) GetByID(ctx context.Context, orderID primitive.ObjectID, identity middleware.Identity) (*models.Order, error) {
	order, err := s.getByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOrderAccess(identity, order); err != nil {
		return nil, err
	}
	return order, nil
}

// History returns the caller's own orders, newest first.
func (s *OrderService) History(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch order history", zap.String("user_id", userID.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// GetAll returns every order with the owner's name resolved, for the admin
// listing. A dangling user reference shows as "Deleted User".
func (s *OrderService) GetAll(ctx context.Context) ([]models.OrderWithUser, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch orders", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	names := map[primitive.ObjectID]string{}
	result := make([]models.OrderWithUser, 0, len(orders))
	for _, order := range orders {
		name, seen := names[order.UserID]
		if !seen {
			name = "Deleted User"
			if user, err := s.users.FindByID(ctx, order.UserID); err == nil {
				name = user.Name
			}
			names[order.UserID] = name
		}
		result = append(result, models.OrderWithUser{Order: order, UserName: name})
	}
	return result, nil
}

func (s *OrderService) getByID(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Order not found")
		}
		s.logger.Error("failed to fetch order", zap.String("order_id", orderID.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

// authorizeOrderAccess is the explicit (identity, resource) policy: admins
// may read any order, everyone else only their own.
func authorizeOrderAccess(identity middleware.Identity, order *models.Order) error {
	if identity.IsAdmin {
		return nil
	}
	if order.UserID.Hex() == identity.UserID {
		return nil
	}
	return apperrors.ErrForbidden
}
