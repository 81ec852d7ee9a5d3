package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DishService handles catalog reads and admin catalog mutation.
type DishService struct {
	dishes repository.DishRepository
	logger *zap.Logger
}

// NewDishService creates a dish service.
func NewDishService(dishes repository.DishRepository, logger *zap.Logger) *DishService {
	return &DishService{dishes: dishes, logger: logger}
}

// List returns every non-deleted dish.
func (s *DishService) List(ctx context.Context) ([]models.Dish, error) {
	dishes, err := s.dishes.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list dishes", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return dishes, nil
}

// Get returns one dish by id.
func (s *DishService) Get(ctx context.Context, id primitive.ObjectID) (*models.Dish, error) {
	dish, err := s.dishes.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Dish not found")
		}
		s.logger.Error("failed to fetch dish", zap.String("dish_id", id.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return dish, nil
}

// GetBySlug returns one dish by its URL key.
func (s *DishService) GetBySlug(ctx context.Context, slug string) (*models.Dish, error) {
	dish, err := s.dishes.FindBySlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Dish not found")
		}
		s.logger.Error("failed to fetch dish by slug", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return dish, nil
}

// Create inserts a dish with placeholder defaults; the admin edits it
// afterwards through Update.
func (s *DishService) Create(ctx context.Context) (*models.Dish, error) {
	dish := &models.Dish{
		Name:         "sample name",
		Slug:         fmt.Sprintf("sample-slug-%d", rand.Intn(1_000_000)),
		Image:        "/images/taco.jpeg",
		Price:        0,
		Category:     "sample-category",
		Cuisine:      "sample-cuisine",
		CountInStock: 0,
		Description:  "sample-description",
		Rating:       0,
		NumReviews:   0,
	}

	if err := s.dishes.Create(ctx, dish); err != nil {
		s.logger.Error("failed to create dish", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("dish created", zap.String("dish_id", dish.ID.Hex()))
	return dish, nil
}

// Update edits the admin-editable fields of a dish.
func (s *DishService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateDishRequest) error {
	updates := bson.M{
		"name":         req.Name,
		"slug":         req.Slug,
		"image":        req.Image,
		"price":        req.Price,
		"category":     req.Category,
		"cuisine":      req.Cuisine,
		"countInStock": req.CountInStock,
		"description":  req.Description,
	}

	matched, err := s.dishes.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("failed to update dish", zap.String("dish_id", id.Hex()), zap.Error(err))
		return apperrors.Internal(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Dish not found")
	}
	return nil
}

// Delete soft-deletes a dish; existing order snapshots are unaffected.
func (s *DishService) Delete(ctx context.Context, id primitive.ObjectID) error {
	matched, err := s.dishes.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete dish", zap.String("dish_id", id.Hex()), zap.Error(err))
		return apperrors.Internal(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Dish not found")
	}
	s.logger.Info("dish deleted", zap.String("dish_id", id.Hex()))
	return nil
}
