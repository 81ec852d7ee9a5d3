package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/middleware"
	"github.com/itsraghul/hearty-foods/payment"
	"github.com/itsraghul/hearty-foods/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderController exposes the order lifecycle over HTTP.
type OrderController struct {
	orderService   *services.OrderService
	gateway        payment.Gateway
	paypalClientID string
}

// NewOrderController creates an order controller. gateway may be nil when no
// provider is configured.
func NewOrderController(orderService *services.OrderService, gateway payment.Gateway, paypalClientID string) *OrderController {
	return &OrderController{
		orderService:   orderService,
		gateway:        gateway,
		paypalClientID: paypalClientID,
	}
}

func callerID(c *gin.Context) (middleware.Identity, primitive.ObjectID, bool) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return identity, primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return identity, primitive.NilObjectID, false
	}
	return identity, userID, true
}

// CreateOrder snapshots the plate into a new order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	_, userID, ok := callerID(c)
	if !ok {
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	order, err := oc.orderService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderHistory lists the caller's own orders.
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	_, userID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := oc.orderService.History(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns one order, owner or admin only.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	identity, _, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.orderService.GetByID(c.Request.Context(), orderID, identity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PayOrder records the gateway receipt and marks the order paid.
func (oc *OrderController) PayOrder(c *gin.Context) {
	orderID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req services.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	order, err := oc.orderService.MarkPaid(c.Request.Context(), orderID, &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order Paid", "order": order})
}

// DeliverOrder marks the order delivered (admin).
func (oc *OrderController) DeliverOrder(c *gin.Context) {
	orderID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.orderService.MarkDelivered(c.Request.Context(), orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order Delivered", "order": order})
}

// GetAllOrders lists every order with owner names (admin).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.orderService.GetAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreatePaymentIntent opens a gateway charge for the order's total. The
// order state is left unchanged on gateway failure.
func (oc *OrderController) CreatePaymentIntent(c *gin.Context) {
	identity, _, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if oc.gateway == nil {
		apperrors.Respond(c, apperrors.New(http.StatusServiceUnavailable, "Payment gateway is not configured", nil))
		return
	}

	order, err := oc.orderService.GetByID(c.Request.Context(), orderID, identity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	intent, gwErr := oc.gateway.CreateIntent(order.TotalPrice, "usd", order.ID.Hex())
	if gwErr != nil {
		apperrors.Respond(c, apperrors.Upstream("Payment gateway request failed", gwErr))
		return
	}
	c.JSON(http.StatusOK, intent)
}

// GetPayPalKey returns the configured PayPal client id for the browser SDK.
func (oc *OrderController) GetPayPalKey(c *gin.Context) {
	c.String(http.StatusOK, oc.paypalClientID)
}
