package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/models"
	"github.com/itsraghul/hearty-foods/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and account administration.
type UserService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates an account and returns a fresh session identity.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Validation("Email already in use")
	} else if err != mongo.ErrNoDocuments {
		s.logger.Error("failed to look up email", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		IsAdmin:  false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.Hex()))
	return s.authResponse(user)
}

// Login verifies the credential pair and returns a session identity.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// UpdateProfile edits the caller's own account and re-issues the token.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.AuthResponse, error) {
	updates := bson.M{
		"name":  req.Name,
		"email": req.Email,
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, apperrors.Validation("Password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		updates["password"] = string(hash)
	}

	matched, err := s.users.Update(ctx, userID, updates)
	if err != nil {
		s.logger.Error("failed to update profile", zap.String("user_id", userID.Hex()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound("User not found")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.authResponse(user)
}

// List returns all users (admin).
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// Get returns one user (admin).
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("User not found")
		}
		s.logger.Error("failed to fetch user", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// AdminUpdate edits another account, including the administrator flag.
func (s *UserService) AdminUpdate(ctx context.Context, id primitive.ObjectID, req *models.AdminUpdateUserRequest) error {
	updates := bson.M{
		"name":    req.Name,
		"email":   req.Email,
		"isAdmin": req.IsAdmin,
	}

	matched, err := s.users.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("failed to update user", zap.String("user_id", id.Hex()), zap.Error(err))
		return apperrors.Internal(err)
	}
	if matched == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// Delete removes an account. Orders keep their dangling user reference and
// display "Deleted User".
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete user", zap.String("user_id", id.Hex()), zap.Error(err))
		return apperrors.Internal(err)
	}
	if deleted == 0 {
		return apperrors.NotFound("User not found")
	}
	s.logger.Info("user deleted", zap.String("user_id", id.Hex()))
	return nil
}

func (s *UserService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return &models.AuthResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"name":     user.Name,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
