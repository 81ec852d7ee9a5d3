package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/middleware"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/repository"
	"github.com/itsraghul/hearty-foods/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// --- Mock order repository ---

type mockOrderRepo struct {
	orders map[primitive.ObjectID]*models.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var result []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	var result []models.Order
	for _, order := range m.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (m *mockOrderRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	order, ok := m.orders[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["isPaid"].(bool); ok {
		order.IsPaid = v
	}
	if v, ok := updates["paidAt"].(time.Time); ok {
		order.PaidAt = &v
	}
	if v, ok := updates["paymentResult"].(models.PaymentResult); ok {
		order.PaymentResult = &v
	}
	if v, ok := updates["isDelivered"].(bool); ok {
		order.IsDelivered = v
	}
	if v, ok := updates["deliveredAt"].(time.Time); ok {
		order.DeliveredAt = &v
	}
	return 1, nil
}

func (m *mockOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockOrderRepo) TotalSales(_ context.Context) (float64, error) {
	var sum float64
	for _, order := range m.orders {
		sum += order.TotalPrice
	}
	return sum, nil
}

func (m *mockOrderRepo) SalesByMonth(_ context.Context) ([]repository.SalesBucket, error) {
	buckets := map[string]float64{}
	for _, order := range m.orders {
		buckets[order.CreatedAt.Format("2006-01")] += order.TotalPrice
	}
	var result []repository.SalesBucket
	for month, total := range buckets {
		result = append(result, repository.SalesBucket{Month: month, TotalSales: total})
	}
	return result, nil
}

// --- Mock user repository ---

type mockUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	var result []models.User
	for _, user := range m.users {
		result = append(result, *user)
	}
	return result, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["name"].(string); ok {
		user.Name = v
	}
	if v, ok := updates["email"].(string); ok {
		user.Email = v
	}
	if v, ok := updates["password"].(string); ok {
		user.Password = v
	}
	if v, ok := updates["isAdmin"].(bool); ok {
		user.IsAdmin = v
	}
	return 1, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) DeleteAll(_ context.Context) error {
	m.users = make(map[primitive.ObjectID]*models.User)
	return nil
}

func (m *mockUserRepo) InsertMany(_ context.Context, users []models.User) error {
	for i := range users {
		if users[i].ID.IsZero() {
			users[i].ID = primitive.NewObjectID()
		}
		stored := users[i]
		m.users[stored.ID] = &stored
	}
	return nil
}

// --- Helpers ---

func newOrderService(orders repository.OrderRepository, users repository.UserRepository) *services.OrderService {
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(orders, users, logger)
}

func validCreateRequest() *services.CreateOrderRequest {
	return &services.CreateOrderRequest{
		OrderItems: []models.OrderItem{
			{DishID: primitive.NewObjectID(), Name: "Crunchy Taco", Price: 120, Quantity: 2},
		},
		DeliveryAddress: models.DeliveryAddress{
			FullName: "Raghul", Address: "1 Food St", City: "Chennai", PinCode: "600001", Country: "IN",
		},
		PaymentMethod: "PayPal",
	}
}

// --- Tests ---

func TestOrderService_Create_ComputesPrices(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())
	userID := primitive.NewObjectID()

	order, err := svc.Create(context.Background(), userID, validCreateRequest())
	assert.Nil(t, err)
	assert.NotNil(t, order)
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, 240.0, order.ItemsPrice)
	assert.Equal(t, 0.0, order.DeliveryPrice)
	assert.Equal(t, 36.0, order.TaxPrice)
	assert.Equal(t, 276.0, order.TotalPrice)
	assert.False(t, order.IsPaid)
	assert.False(t, order.IsDelivered)
}

func TestOrderService_Create_TotalInvariant(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	req := validCreateRequest()
	req.OrderItems = []models.OrderItem{
		{DishID: primitive.NewObjectID(), Name: "Veggie Burger", Price: 50, Quantity: 1},
	}

	order, err := svc.Create(context.Background(), primitive.NewObjectID(), req)
	assert.Nil(t, err)
	assert.Equal(t, services.Round2(order.ItemsPrice+order.TaxPrice+order.DeliveryPrice), order.TotalPrice)
	assert.Equal(t, 107.5, order.TotalPrice)
}

func TestOrderService_Create_EmptyPlate(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	req := validCreateRequest()
	req.OrderItems = nil

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.(*apperrors.Error).Code)
}

func TestOrderService_Create_ZeroQuantity(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	req := validCreateRequest()
	req.OrderItems[0].Quantity = 0

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.(*apperrors.Error).Code)
}

func TestOrderService_Create_NewOrderEachCall(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newOrderService(repo, newMockUserRepo())
	userID := primitive.NewObjectID()

	first, err := svc.Create(context.Background(), userID, validCreateRequest())
	assert.Nil(t, err)
	second, err := svc.Create(context.Background(), userID, validCreateRequest())
	assert.Nil(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.orders, 2)
}

func TestOrderService_MarkPaid(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newOrderService(repo, newMockUserRepo())

	order, _ := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	paid, err := svc.MarkPaid(context.Background(), order.ID, &services.PayOrderRequest{
		TransactionID: "TX-1", Status: "COMPLETED", EmailAddress: "payer@example.com",
	})
	assert.Nil(t, err)
	assert.True(t, paid.IsPaid)
	assert.NotNil(t, paid.PaidAt)
	assert.Equal(t, "TX-1", paid.PaymentResult.TransactionID)
}

func TestOrderService_MarkPaid_NotFound(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	_, err := svc.MarkPaid(context.Background(), primitive.NewObjectID(), &services.PayOrderRequest{TransactionID: "TX-1"})
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.(*apperrors.Error).Code)
}

func TestOrderService_MarkPaid_SecondCallOverwrites(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newOrderService(repo, newMockUserRepo())

	order, _ := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	first, err := svc.MarkPaid(context.Background(), order.ID, &services.PayOrderRequest{TransactionID: "TX-1"})
	assert.Nil(t, err)
	second, err := svc.MarkPaid(context.Background(), order.ID, &services.PayOrderRequest{TransactionID: "TX-2"})
	assert.Nil(t, err)

	assert.Equal(t, "TX-1", first.PaymentResult.TransactionID)
	assert.Equal(t, "TX-2", second.PaymentResult.TransactionID)
}

func TestOrderService_MarkDelivered_BeforePaid(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newOrderService(repo, newMockUserRepo())

	order, _ := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	// delivering an unpaid order succeeds under current behavior
	delivered, err := svc.MarkDelivered(context.Background(), order.ID)
	assert.Nil(t, err)
	assert.True(t, delivered.IsDelivered)
	assert.False(t, delivered.IsPaid)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestOrderService_MarkDelivered_NotFound(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	_, err := svc.MarkDelivered(context.Background(), primitive.NewObjectID())
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.(*apperrors.Error).Code)
}

func TestOrderService_GetByID_OwnerAllowed(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())
	userID := primitive.NewObjectID()

	order, _ := svc.Create(context.Background(), userID, validCreateRequest())

	fetched, err := svc.GetByID(context.Background(), order.ID, middleware.Identity{UserID: userID.Hex()})
	assert.Nil(t, err)
	assert.Equal(t, order.ID, fetched.ID)
}

func TestOrderService_GetByID_StrangerForbidden(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	order, _ := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	_, err := svc.GetByID(context.Background(), order.ID, middleware.Identity{UserID: primitive.NewObjectID().Hex()})
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.(*apperrors.Error).Code)
}

func TestOrderService_GetByID_AdminAllowed(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())

	order, _ := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	fetched, err := svc.GetByID(context.Background(), order.ID, middleware.Identity{
		UserID: primitive.NewObjectID().Hex(), IsAdmin: true,
	})
	assert.Nil(t, err)
	assert.Equal(t, order.ID, fetched.ID)
}

func TestOrderService_History_ScopedToUser(t *testing.T) {
	svc := newOrderService(newMockOrderRepo(), newMockUserRepo())
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, _ = svc.Create(context.Background(), alice, validCreateRequest())
	_, _ = svc.Create(context.Background(), alice, validCreateRequest())
	_, _ = svc.Create(context.Background(), bob, validCreateRequest())

	orders, err := svc.History(context.Background(), alice)
	assert.Nil(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_GetAll_ResolvesUserNames(t *testing.T) {
	orderRepo := newMockOrderRepo()
	userRepo := newMockUserRepo()
	svc := newOrderService(orderRepo, userRepo)

	owner := &models.User{Name: "Raghul", Email: "raghul@example.com"}
	_ = userRepo.Create(context.Background(), owner)

	_, _ = svc.Create(context.Background(), owner.ID, validCreateRequest())
	_, _ = svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest())

	orders, err := svc.GetAll(context.Background())
	assert.Nil(t, err)
	assert.Len(t, orders, 2)

	names := map[string]bool{}
	for _, order := range orders {
		names[order.UserName] = true
	}
	assert.True(t, names["Raghul"])
	assert.True(t, names["Deleted User"])
}
