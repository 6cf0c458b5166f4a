package repository

import (
	"context"
	"errors"
	"fmt"

	"auction_platform/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned when an insert hits the unique email
// constraint. The constraint, not the pre-insert existence check, is what
// guarantees uniqueness under concurrent registrations.
var ErrDuplicateEmail = errors.New("user with this email already exists")

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindLeaderboard(ctx context.Context) ([]model.User, error)
	UpdatePaymentMethods(ctx context.Context, id int64, pm *model.PaymentMethods) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, user_name, email, password_hash, phone, address, role,
            profile_image_id, profile_image_url,
            bank_account_number, bank_account_name, bank_name,
            easypaisa_account_number, paypal_email,
            money_spent, unpaid_commission, created_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	var ban, bam, bn, easypaisa, paypal *string
	if pm := user.PaymentMethods; pm != nil {
		ban = &pm.BankTransfer.BankAccountNumber
		bam = &pm.BankTransfer.BankAccountName
		bn = &pm.BankTransfer.BankName
		easypaisa = &pm.Easypaisa.AccountNumber
		paypal = &pm.Paypal.Email
	}

	sql := `INSERT INTO users (user_name, email, password_hash, phone, address, role,
                profile_image_id, profile_image_url,
                bank_account_number, bank_account_name, bank_name,
                easypaisa_account_number, paypal_email, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.UserName, user.Email, user.PasswordHash, user.Phone, user.Address, user.Role,
		user.ProfileImage.PublicID, user.ProfileImage.URL,
		ban, bam, bn, easypaisa, paypal, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email, including the password hash for
// credential comparison. Returns (nil, nil) when no user exists.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := r.scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer decides
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := r.scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindLeaderboard retrieves all users with nonzero spend, highest first.
// Equal spends order by id so repeated calls return the same ranking.
func (r *userRepository) FindLeaderboard(ctx context.Context) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE money_spent > 0 ORDER BY money_spent DESC, id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return users, nil
}

// UpdatePaymentMethods replaces the payout details of an auctioneer
func (r *userRepository) UpdatePaymentMethods(ctx context.Context, id int64, pm *model.PaymentMethods) error {
	sql := `UPDATE users SET bank_account_number = $1, bank_account_name = $2, bank_name = $3,
                easypaisa_account_number = $4, paypal_email = $5
            WHERE id = $6`
	tag, err := r.db.Exec(ctx, sql,
		pm.BankTransfer.BankAccountNumber, pm.BankTransfer.BankAccountName, pm.BankTransfer.BankName,
		pm.Easypaisa.AccountNumber, pm.Paypal.Email, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment methods: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update payment methods: no user with id %d", id)
	}
	return nil
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	var ban, bam, bn, easypaisa, paypal *string
	err := row.Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &user.Phone, &user.Address, &user.Role,
		&user.ProfileImage.PublicID, &user.ProfileImage.URL,
		&ban, &bam, &bn, &easypaisa, &paypal,
		&user.MoneySpent, &user.UnpaidCommission, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleAuctioneer {
		pm := &model.PaymentMethods{}
		if ban != nil {
			pm.BankTransfer.BankAccountNumber = *ban
		}
		if bam != nil {
			pm.BankTransfer.BankAccountName = *bam
		}
		if bn != nil {
			pm.BankTransfer.BankName = *bn
		}
		if easypaisa != nil {
			pm.Easypaisa.AccountNumber = *easypaisa
		}
		if paypal != nil {
			pm.Paypal.Email = *paypal
		}
		user.PaymentMethods = pm
	}
	return user, nil
}
