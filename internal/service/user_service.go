package service

import (
	"context"
	"errors"
	"fmt"

	"auction_platform/internal/model"
	"auction_platform/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("User not found")
	ErrNotAuctioneer = errors.New("Only auctioneers have payment methods")
)

// UserService provides read-side user operations and payout updates
type UserService interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
	UpdatePaymentMethods(ctx context.Context, userID int64, req model.UpdatePaymentMethodsRequest) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Leaderboard returns users ranked by cumulative spend, highest first.
// Users who never spent anything are excluded.
func (s *userService) Leaderboard(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	return users, nil
}

// UpdatePaymentMethods replaces the caller's payout details, applying the
// same completeness rules as registration.
func (s *userService) UpdatePaymentMethods(ctx context.Context, userID int64, req model.UpdatePaymentMethodsRequest) (*model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleAuctioneer {
		return nil, ErrNotAuctioneer
	}

	pm, err := validatePaymentDetails(req.BankAccountNumber, req.BankAccountName, req.BankName, req.EasypaisaAccountNumber, req.PaypalEmail)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePaymentMethods(ctx, userID, pm); err != nil {
		return nil, fmt.Errorf("failed to update payment methods: %w", err)
	}

	user.PaymentMethods = pm
	return user, nil
}
