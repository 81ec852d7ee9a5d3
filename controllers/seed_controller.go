package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/repository"
	"github.com/itsraghul/hearty-foods/seed"
	"go.uber.org/zap"
)

// SeedController wipes and repopulates the users and dishes collections from
// fixtures. Development-only; the route is not registered in production.
type SeedController struct {
	users  repository.UserRepository
	dishes repository.DishRepository
	logger *zap.Logger
}

// NewSeedController creates a seed controller.
func NewSeedController(users repository.UserRepository, dishes repository.DishRepository, logger *zap.Logger) *SeedController {
	return &SeedController{users: users, dishes: dishes, logger: logger}
}

// Seed replaces both collections with fixture data.
func (sc *SeedController) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	fixtureUsers, err := seed.Users()
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	if err := sc.users.DeleteAll(ctx); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	if err := sc.users.InsertMany(ctx, fixtureUsers); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	if err := sc.dishes.DeleteAll(ctx); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	if err := sc.dishes.InsertMany(ctx, seed.Dishes()); err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	sc.logger.Info("collections seeded",
		zap.Int("users", len(fixtureUsers)),
		zap.Int("dishes", len(seed.Dishes())),
	)
	c.JSON(http.StatusOK, gin.H{"message": "seeded successfully"})
}
