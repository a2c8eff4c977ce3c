package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

type ClientProfileRepository struct {
	pool *pgxpool.Pool
}

func NewClientProfileRepository(pool *pgxpool.Pool) *ClientProfileRepository {
	return &ClientProfileRepository{pool: pool}
}

const clientColumns = `id, account_id, display_name, phone_number, country, state, company, onboarding_completed, created_at, updated_at`

func (r *ClientProfileRepository) scanProfile(ctx context.Context, row pgx.Row) (*entity.ClientProfile, error) {
	var (
		id, accountID, displayName string
		phoneNumber, company       string
		country, state             string
		onboardingCompleted        bool
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &accountID, &displayName, &phoneNumber, &country, &state, &company, &onboardingCompleted, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("client profile not found")
		}
		return nil, err
	}

	specIDs, err := r.loadSpecializationIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	location, err := valueobject.NewLocation(country, state)
	if err != nil {
		return nil, err
	}
	return entity.ReconstituteClientProfile(id, entity.ClientProfileProps{
		AccountID:         accountID,
		DisplayName:       displayName,
		PhoneNumber:       phoneNumber,
		Location:          location,
		Company:           company,
		SpecializationIDs: specIDs,
	}, onboardingCompleted, createdAt, updatedAt), nil
}

func (r *ClientProfileRepository) loadSpecializationIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT specialization_id FROM client_specializations WHERE client_id = $1`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ClientProfileRepository) FindByID(ctx context.Context, id string) (*entity.ClientProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM client_profiles WHERE id = $1`, id)
	return r.scanProfile(ctx, row)
}

func (r *ClientProfileRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.ClientProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM client_profiles WHERE account_id = $1`, accountID)
	return r.scanProfile(ctx, row)
}

func (r *ClientProfileRepository) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM client_profiles WHERE account_id = $1)`, accountID).Scan(&exists)
	return exists, err
}

func (r *ClientProfileRepository) FindAll(ctx context.Context) ([]*entity.ClientProfile, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM client_profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.ClientProfile
	for rows.Next() {
		p, err := r.scanProfile(ctx, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save writes the profile row, its specialization set and the account
// onboarding flag in one transaction. The unique account_id constraint is
// the real 1:1 enforcement; a violation surfaces as conflict.
func (r *ClientProfileRepository) Save(ctx context.Context, p *entity.ClientProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO client_profiles (id, account_id, display_name, phone_number, country, state, company, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.AccountID, p.DisplayName, p.PhoneNumber, p.Location.Country(), p.Location.State(), p.Company, p.OnboardingCompleted, p.CreatedAt, p.UpdatedAt); err != nil {
		return conflictOnUnique(err, "client profile already exists for this user")
	}

	if err := insertClientSpecializations(ctx, tx, p.ID, p.SpecializationIDs); err != nil {
		return err
	}

	if p.OnboardingCompleted {
		if _, err := tx.Exec(ctx, `UPDATE accounts SET onboarding_completed = TRUE, updated_at = $1 WHERE id = $2`, p.UpdatedAt, p.AccountID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update rewrites the profile row and full-replaces the specialization set
// inside the same transaction.
func (r *ClientProfileRepository) Update(ctx context.Context, p *entity.ClientProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE client_profiles
		SET display_name = $1, phone_number = $2, country = $3, state = $4, company = $5, onboarding_completed = $6, updated_at = $7
		WHERE id = $8
	`, p.DisplayName, p.PhoneNumber, p.Location.Country(), p.Location.State(), p.Company, p.OnboardingCompleted, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("client profile not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM client_specializations WHERE client_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertClientSpecializations(ctx, tx, p.ID, p.SpecializationIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertClientSpecializations(ctx context.Context, tx pgx.Tx, profileID string, ids []string) error {
	for _, specID := range ids {
		if _, err := tx.Exec(ctx, `
			INSERT INTO client_specializations (client_id, specialization_id)
			VALUES ($1, $2)
		`, profileID, specID); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.ClientProfileRepository = (*ClientProfileRepository)(nil)
