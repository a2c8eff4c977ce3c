package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

const accountColumns = `id, display_name, email, email_verified, avatar_url, role, banned, ban_reason, ban_expires_at, onboarding_completed, created_at, updated_at`

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		id, displayName, email, role   string
		emailVerified, banned          bool
		avatarURL                      string
		banReason                      *string
		banExpiresAt                   *time.Time
		onboardingCompleted            bool
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(&id, &displayName, &email, &emailVerified, &avatarURL, &role, &banned, &banReason, &banExpiresAt, &onboardingCompleted, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("account not found")
		}
		return nil, err
	}
	return entity.ReconstituteAccount(id, entity.AccountProps{
		DisplayName:   displayName,
		Email:         email,
		EmailVerified: emailVerified,
		AvatarURL:     avatarURL,
		Role:          valueobject.Role(role),
	}, banned, banReason, banExpiresAt, onboardingCompleted, createdAt, updatedAt), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) List(ctx context.Context, filter repository.AccountFilter) (*repository.AccountPage, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Role != nil {
		n++
		where += ` AND role = $` + strconv.Itoa(n)
		args = append(args, *filter.Role)
	}
	if filter.Banned != nil {
		n++
		where += ` AND banned = $` + strconv.Itoa(n)
		args = append(args, *filter.Banned)
	}
	if filter.OnboardingCompleted != nil {
		n++
		where += ` AND onboarding_completed = $` + strconv.Itoa(n)
		args = append(args, *filter.OnboardingCompleted)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	query := `SELECT ` + accountColumns + ` FROM accounts` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Account, 0, limit)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return &repository.AccountPage{
		Items:       items,
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *entity.Account) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET display_name = $1, email_verified = $2, avatar_url = $3, role = $4,
		    banned = $5, ban_reason = $6, ban_expires_at = $7,
		    onboarding_completed = $8, updated_at = $9
		WHERE id = $10
	`, a.DisplayName, a.EmailVerified, a.AvatarURL, a.Role.String(),
		a.Banned, a.BanReason, a.BanExpiresAt, a.OnboardingCompleted, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("account not found")
	}
	return nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
