package services_test

import (
	"context"
	"testing"

	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// mockDishRepo only needs Count for the summary.
type mockDishRepo struct {
	count int64
}

func (m *mockDishRepo) FindAll(_ context.Context) ([]models.Dish, error)  { return nil, nil }
func (m *mockDishRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Dish, error) {
	return nil, nil
}
func (m *mockDishRepo) FindBySlug(_ context.Context, _ string) (*models.Dish, error) {
	return nil, nil
}
func (m *mockDishRepo) Create(_ context.Context, _ *models.Dish) error { return nil }
func (m *mockDishRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (int64, error) {
	return 0, nil
}
func (m *mockDishRepo) SoftDelete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}
func (m *mockDishRepo) Count(_ context.Context) (int64, error)            { return m.count, nil }
func (m *mockDishRepo) DeleteAll(_ context.Context) error                 { return nil }
func (m *mockDishRepo) InsertMany(_ context.Context, _ []models.Dish) error { return nil }

func TestSummaryService_Compute(t *testing.T) {
	orderRepo := newMockOrderRepo()
	userRepo := newMockUserRepo()
	dishRepo := &mockDishRepo{count: 6}

	logger, _ := zap.NewDevelopment()
	orderSvc := services.NewOrderService(orderRepo, userRepo, logger)
	svc := services.NewSummaryService(orderRepo, userRepo, dishRepo, logger)

	_ = userRepo.Create(context.Background(), &models.User{Name: "Raghul", Email: "raghul@example.com"})

	_, _ = orderSvc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest()) // 276.00
	small := validCreateRequest()
	small.OrderItems = []models.OrderItem{{DishID: primitive.NewObjectID(), Name: "Veggie Burger", Price: 50, Quantity: 1}}
	_, _ = orderSvc.Create(context.Background(), primitive.NewObjectID(), small) // 107.50

	summary, err := svc.Compute(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(2), summary.OrdersCount)
	assert.Equal(t, int64(1), summary.UsersCount)
	assert.Equal(t, int64(6), summary.DishesCount)
	assert.Equal(t, 383.5, summary.OrdersPrice)
	assert.Len(t, summary.SalesData, 1)
	assert.Equal(t, 383.5, summary.SalesData[0].TotalSales)
}
