package model

import "time"

const (
	RoleBidder     = "Bidder"
	RoleAuctioneer = "Auctioneer"
	RoleSuperAdmin = "Super Admin"
)

// ValidRegistrationRole reports whether a role may be chosen at sign-up.
// Super Admin accounts are provisioned out of band, never self-registered.
func ValidRegistrationRole(role string) bool {
	return role == RoleBidder || role == RoleAuctioneer
}

// ProfileImage references an uploaded avatar on the remote asset host.
type ProfileImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// BankTransfer holds bank wire details for auctioneer payouts.
type BankTransfer struct {
	BankAccountNumber string `json:"bankAccountNumber"`
	BankAccountName   string `json:"bankAccountName"`
	BankName          string `json:"bankName"`
}

type Easypaisa struct {
	AccountNumber string `json:"easypaisaAccountNumber"`
}

type Paypal struct {
	Email string `json:"paypalEmail"`
}

// PaymentMethods is carried only by Auctioneer accounts; Bidders have nil.
type PaymentMethods struct {
	BankTransfer BankTransfer `json:"bankTransfer"`
	Easypaisa    Easypaisa    `json:"easypaisa"`
	Paypal       Paypal       `json:"paypal"`
}

// User represents a platform account
type User struct {
	ID               int64           `json:"id"`
	UserName         string          `json:"userName"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"-"` // Do not expose password hash in JSON responses
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Role             string          `json:"role"`
	ProfileImage     ProfileImage    `json:"profileImage"`
	PaymentMethods   *PaymentMethods `json:"paymentMethods,omitempty"`
	MoneySpent       float64         `json:"moneySpent"`
	UnpaidCommission float64         `json:"unpaidCommission"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// RegisterRequest carries the multipart form fields of a sign-up call.
// Presence validation lives in the service so each failure keeps its
// specific message; gin binding tags would collapse them into one.
type RegisterRequest struct {
	UserName               string
	Email                  string
	Password               string
	Phone                  string
	Address                string
	Role                   string
	BankAccountNumber      string
	BankAccountName        string
	BankName               string
	EasypaisaAccountNumber string
	PaypalEmail            string
}

// LoginRequest is the JSON body of a login call
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePaymentMethodsRequest replaces an auctioneer's payout details.
type UpdatePaymentMethodsRequest struct {
	BankAccountNumber      string `json:"bankAccountNumber"`
	BankAccountName        string `json:"bankAccountName"`
	BankName               string `json:"bankName"`
	EasypaisaAccountNumber string `json:"easypaisaAccountNumber"`
	PaypalEmail            string `json:"paypalEmail"`
}
