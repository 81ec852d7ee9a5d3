package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DishController exposes catalog reads and admin catalog mutation.
type DishController struct {
	dishService *services.DishService
}

// NewDishController creates a dish controller.
func NewDishController(dishService *services.DishService) *DishController {
	return &DishController{dishService: dishService}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid id"))
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetDishes lists the catalog.
func (dc *DishController) GetDishes(c *gin.Context) {
	dishes, err := dc.dishService.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GetDishByID returns one dish.
func (dc *DishController) GetDishByID(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	dish, err := dc.dishService.Get(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// GetDishBySlug returns one dish by its URL key.
func (dc *DishController) GetDishBySlug(c *gin.Context) {
	dish, err := dc.dishService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// CreateDish inserts a dish with placeholder defaults (admin).
func (dc *DishController) CreateDish(c *gin.Context) {
	dish, err := dc.dishService.Create(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish Created", "dish": dish})
}

// UpdateDish edits a dish (admin).
func (dc *DishController) UpdateDish(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := dc.dishService.Update(c.Request.Context(), id, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish Updated Successfully"})
}

// DeleteDish soft-deletes a dish (admin).
func (dc *DishController) DeleteDish(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := dc.dishService.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish Deleted"})
}
