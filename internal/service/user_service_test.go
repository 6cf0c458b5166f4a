package service

import (
	"context"
	"testing"

	"auction_platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetByID_NotFound(t *testing.T) {
	s := NewUserService(newFakeUserRepo())

	_, err := s.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetByID(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["ali@example.com"] = &model.User{ID: 42, Email: "ali@example.com", Role: model.RoleBidder}
	s := NewUserService(repo)

	user, err := s.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", user.Email)
}

func TestUserService_UpdatePaymentMethods_BidderRejected(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["ali@example.com"] = &model.User{ID: 1, Email: "ali@example.com", Role: model.RoleBidder}
	s := NewUserService(repo)

	_, err := s.UpdatePaymentMethods(context.Background(), 1, model.UpdatePaymentMethodsRequest{
		BankAccountNumber: "PK123", BankAccountName: "Ali", BankName: "HBL",
		EasypaisaAccountNumber: "0300123", PaypalEmail: "ali@paypal.com",
	})

	assert.ErrorIs(t, err, ErrNotAuctioneer)
}

func TestUserService_UpdatePaymentMethods_Incomplete(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["sara@example.com"] = &model.User{ID: 2, Email: "sara@example.com", Role: model.RoleAuctioneer}
	s := NewUserService(repo)

	_, err := s.UpdatePaymentMethods(context.Background(), 2, model.UpdatePaymentMethodsRequest{
		BankAccountNumber: "PK123", BankAccountName: "Sara", BankName: "HBL",
		PaypalEmail: "sara@paypal.com",
	})

	assert.ErrorIs(t, err, ErrMissingEasypaisa)
}

func TestUserService_UpdatePaymentMethods(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["sara@example.com"] = &model.User{ID: 2, Email: "sara@example.com", Role: model.RoleAuctioneer}
	s := NewUserService(repo)

	user, err := s.UpdatePaymentMethods(context.Background(), 2, model.UpdatePaymentMethodsRequest{
		BankAccountNumber: "PK123", BankAccountName: "Sara", BankName: "HBL",
		EasypaisaAccountNumber: "0345999", PaypalEmail: "sara@paypal.com",
	})

	require.NoError(t, err)
	require.NotNil(t, user.PaymentMethods)
	assert.Equal(t, "0345999", user.PaymentMethods.Easypaisa.AccountNumber)
}
