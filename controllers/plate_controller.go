package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/middleware"
	"github.com/itsraghul/hearty-foods/plate"
	"github.com/itsraghul/hearty-foods/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlateController exposes the per-user plate state container over HTTP.
type PlateController struct {
	redis       *redis.Client
	ttl         time.Duration
	dishService *services.DishService
}

// NewPlateController creates a plate controller.
func NewPlateController(redisClient *redis.Client, ttl time.Duration, dishService *services.DishService) *PlateController {
	return &PlateController{redis: redisClient, ttl: ttl, dishService: dishService}
}

// manager builds the caller's state container and loads it from the store.
func (pc *PlateController) manager(c *gin.Context) (*plate.Manager, bool) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return nil, false
	}

	m := plate.NewManager(plate.NewRedisStore(pc.redis, identity.UserID, pc.ttl))
	if err := m.Load(c.Request.Context()); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return nil, false
	}
	return m, true
}

// GetPlate returns the caller's plate state.
func (pc *PlateController) GetPlate(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, m.State())
}

type addItemRequest struct {
	DishID   string `json:"dishId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// AddItem upserts a dish selection. Display fields are denormalized from the
// live dish; the quantity is checked against the current stock count but not
// reserved.
func (pc *PlateController) AddItem(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	dishID, err := primitive.ObjectIDFromHex(req.DishID)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid dish id"))
		return
	}

	dish, svcErr := pc.dishService.Get(c.Request.Context(), dishID)
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	if dish.CountInStock < req.Quantity {
		apperrors.Respond(c, apperrors.Validation("Sorry. Dish is out of stock"))
		return
	}

	item := plate.Item{
		DishID:       dish.ID.Hex(),
		Name:         dish.Name,
		Slug:         dish.Slug,
		Image:        dish.Image,
		Price:        dish.Price,
		CountInStock: dish.CountInStock,
		Quantity:     req.Quantity,
	}
	if err := m.AddItem(c.Request.Context(), item); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}

// RemoveItem drops a dish from the plate; absent dishes are a no-op.
func (pc *PlateController) RemoveItem(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	if err := m.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}

// SetAddress stores the delivery address step of the checkout wizard.
func (pc *PlateController) SetAddress(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	var addr plate.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := m.SetDeliveryAddress(c.Request.Context(), addr); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}

type paymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// SetPaymentMethod stores the payment step of the checkout wizard.
func (pc *PlateController) SetPaymentMethod(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := m.SetPaymentMethod(c.Request.Context(), req.PaymentMethod); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}

type darkModeRequest struct {
	DarkMode bool `json:"darkMode"`
}

// SetDarkMode stores the display preference.
func (pc *PlateController) SetDarkMode(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := m.SetDarkMode(c.Request.Context(), req.DarkMode); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}

// ClearPlate empties the plate items, as after a successful checkout.
func (pc *PlateController) ClearPlate(c *gin.Context) {
	m, ok := pc.manager(c)
	if !ok {
		return
	}

	if err := m.Clear(c.Request.Context()); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, m.State())
}
