package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"auction_platform/internal/model"
	"auction_platform/internal/repository"
	"auction_platform/internal/upload"
	"auction_platform/internal/utils"
)

// Sentinel errors double as API messages; handlers map them to HTTP
// statuses with errors.Is.
var (
	ErrMissingFields      = errors.New("Please fill in all fields")
	ErrInvalidRole        = errors.New("Invalid role provided")
	ErrMissingBankDetails = errors.New("Please fill in all bank details")
	ErrMissingEasypaisa   = errors.New("Please provide Easypaisa account number")
	ErrMissingPaypal      = errors.New("Please provide paypal email")
	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrImageUpload        = errors.New("Failed to upload image")
	ErrMissingCredentials = errors.New("Please enter email and password")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ImageUploader is the slice of the asset host client the service needs
type ImageUploader interface {
	UploadProfileImage(ctx context.Context, r io.Reader, contentType string) (*upload.Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest, image io.Reader, contentType string) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	uploader ImageUploader
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, uploader ImageUploader, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		uploader: uploader,
		jwtUtil:  jwtUtil,
	}
}

// validatePaymentDetails enforces auctioneer payout completeness. The three
// checks are independent and ordered so each missing group keeps its own
// message.
func validatePaymentDetails(bankAccountNumber, bankAccountName, bankName, easypaisaAccountNumber, paypalEmail string) (*model.PaymentMethods, error) {
	if bankAccountNumber == "" || bankAccountName == "" || bankName == "" {
		return nil, ErrMissingBankDetails
	}
	if easypaisaAccountNumber == "" {
		return nil, ErrMissingEasypaisa
	}
	if paypalEmail == "" {
		return nil, ErrMissingPaypal
	}
	return &model.PaymentMethods{
		BankTransfer: model.BankTransfer{
			BankAccountNumber: bankAccountNumber,
			BankAccountName:   bankAccountName,
			BankName:          bankName,
		},
		Easypaisa: model.Easypaisa{AccountNumber: easypaisaAccountNumber},
		Paypal:    model.Paypal{Email: paypalEmail},
	}, nil
}

// Register validates the sign-up request, uploads the profile image and
// creates the account. Validation fails fast in the documented order.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest, image io.Reader, contentType string) (*model.User, string, error) {
	if req.UserName == "" || req.Email == "" || req.Password == "" || req.Phone == "" || req.Address == "" || req.Role == "" {
		return nil, "", ErrMissingFields
	}
	if !model.ValidRegistrationRole(req.Role) {
		return nil, "", ErrInvalidRole
	}

	var paymentMethods *model.PaymentMethods
	if req.Role == model.RoleAuctioneer {
		pm, err := validatePaymentDetails(req.BankAccountNumber, req.BankAccountName, req.BankName, req.EasypaisaAccountNumber, req.PaypalEmail)
		if err != nil {
			return nil, "", err
		}
		paymentMethods = pm
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	asset, err := s.uploader.UploadProfileImage(ctx, image, contentType)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}

	user := &model.User{
		UserName:       req.UserName,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		Phone:          req.Phone,
		Address:        req.Address,
		Role:           req.Role,
		ProfileImage:   model.ProfileImage{PublicID: asset.PublicID, URL: asset.URL},
		PaymentMethods: paymentMethods,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The image is already on the asset host; remove it so a failed
		// registration leaves no orphaned object behind.
		if delErr := s.uploader.Delete(ctx, asset.PublicID); delErr != nil {
			log.Printf("failed to clean up uploaded image %s: %v", asset.PublicID, delErr)
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a JWT token. Unknown email and
// wrong password produce the same error so callers cannot tell which
// check failed.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
