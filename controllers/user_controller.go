package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/middleware"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserController exposes registration, login, profile edits and admin user
// management.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a user controller.
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Login authenticates a credential pair.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	resp, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register creates a new account.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	resp, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateProfile edits the caller's own account.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	userID, idErr := primitive.ObjectIDFromHex(identity.UserID)
	if idErr != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	resp, svcErr := uc.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUsers lists every account (admin).
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one account (admin).
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.userService.Get(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser edits another account, including the admin flag (admin).
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := uc.userService.AdminUpdate(c.Request.Context(), id, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Updated Successfully"})
}

// DeleteUser removes an account (admin).
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Deleted"})
}
