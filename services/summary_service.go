package services

import (
	"context"

	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/repository"
	"go.uber.org/zap"
)

// Summary is the admin dashboard aggregation: store-wide counts, revenue,
// and year-month revenue buckets.
type Summary struct {
	OrdersCount int64                    `json:"ordersCount"`
	UsersCount  int64                    `json:"usersCount"`
	DishesCount int64                    `json:"dishesCount"`
	OrdersPrice float64                  `json:"ordersPrice"`
	SalesData   []repository.SalesBucket `json:"salesData"`
}

// SummaryService computes the dashboard numbers on demand. No caching: each
// call is a fresh snapshot read of the underlying stores.
type SummaryService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	dishes repository.DishRepository
	logger *zap.Logger
}

// NewSummaryService creates a summary service.
func NewSummaryService(orders repository.OrderRepository, users repository.UserRepository, dishes repository.DishRepository, logger *zap.Logger) *SummaryService {
	return &SummaryService{orders: orders, users: users, dishes: dishes, logger: logger}
}

// Compute aggregates counts and revenue across the three collections.
func (s *SummaryService) Compute(ctx context.Context) (*Summary, error) {
	ordersCount, err := s.orders.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count orders", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	usersCount, err := s.users.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	dishesCount, err := s.dishes.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count dishes", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	ordersPrice, err := s.orders.TotalSales(ctx)
	if err != nil {
		s.logger.Error("failed to sum sales", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	salesData, err := s.orders.SalesByMonth(ctx)
	if err != nil {
		s.logger.Error("failed to bucket sales", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	return &Summary{
		OrdersCount: ordersCount,
		UsersCount:  usersCount,
		DishesCount: dishesCount,
		OrdersPrice: ordersPrice,
		SalesData:   salesData,
	}, nil
}
