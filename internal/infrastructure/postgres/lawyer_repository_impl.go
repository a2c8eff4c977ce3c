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

type LawyerProfileRepository struct {
	pool *pgxpool.Pool
}

func NewLawyerProfileRepository(pool *pgxpool.Pool) *LawyerProfileRepository {
	return &LawyerProfileRepository{pool: pool}
}

const lawyerColumns = `id, account_id, first_name, last_name, email, phone_number, country, current_firm, bar_number, bar_issued_at, school, graduation_year, onboarding_step, application_status, profile_completed, created_at, updated_at`

func (r *LawyerProfileRepository) scanProfile(ctx context.Context, row pgx.Row) (*entity.LawyerProfile, error) {
	var (
		id, accountID, firstName, lastName string
		email, phoneNumber, country        string
		currentFirm                        string
		barNumber, school                  *string
		barIssuedAt                        *time.Time
		graduationYear                     *int
		step, status                       string
		profileCompleted                   bool
		createdAt, updatedAt               time.Time
	)
	if err := row.Scan(&id, &accountID, &firstName, &lastName, &email, &phoneNumber, &country, &currentFirm, &barNumber, &barIssuedAt, &school, &graduationYear, &step, &status, &profileCompleted, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("lawyer profile not found")
		}
		return nil, err
	}

	var creds *valueobject.BarCredentials
	if barNumber != nil && barIssuedAt != nil {
		c, err := valueobject.NewBarCredentials(*barNumber, *barIssuedAt)
		if err != nil {
			return nil, err
		}
		creds = &c
	}
	var edu *valueobject.Education
	if school != nil && graduationYear != nil {
		e, err := valueobject.NewEducation(*school, *graduationYear)
		if err != nil {
			return nil, err
		}
		edu = &e
	}

	docs, err := r.loadDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	specs, err := r.loadSpecializations(ctx, id)
	if err != nil {
		return nil, err
	}
	langIDs, err := r.loadLanguageIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return entity.ReconstituteLawyerProfile(id, entity.LawyerProfileProps{
		AccountID:   accountID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phoneNumber,
		Country:     country,
		CurrentFirm: currentFirm,
	}, creds, edu, entity.OnboardingStep(step), entity.ApplicationStatus(status), profileCompleted, docs, specs, langIDs, createdAt, updatedAt), nil
}

func (r *LawyerProfileRepository) loadDocuments(ctx context.Context, lawyerID string) ([]entity.LawyerDocument, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, url, uploaded_at FROM lawyer_documents WHERE lawyer_id = $1 ORDER BY uploaded_at`, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var docs []entity.LawyerDocument
	for rows.Next() {
		var d entity.LawyerDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.URL, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *LawyerProfileRepository) loadSpecializations(ctx context.Context, lawyerID string) ([]entity.LawyerSpecialization, error) {
	rows, err := r.pool.Query(ctx, `SELECT specialization_id, is_primary, years_of_experience FROM lawyer_specializations WHERE lawyer_id = $1`, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var specs []entity.LawyerSpecialization
	for rows.Next() {
		var s entity.LawyerSpecialization
		if err := rows.Scan(&s.SpecializationID, &s.Primary, &s.YearsOfExperience); err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, rows.Err()
}

func (r *LawyerProfileRepository) loadLanguageIDs(ctx context.Context, lawyerID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT language_id FROM lawyer_languages WHERE lawyer_id = $1`, lawyerID)
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

func (r *LawyerProfileRepository) FindByID(ctx context.Context, id string) (*entity.LawyerProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyer_profiles WHERE id = $1`, id)
	return r.scanProfile(ctx, row)
}

func (r *LawyerProfileRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.LawyerProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyer_profiles WHERE account_id = $1`, accountID)
	return r.scanProfile(ctx, row)
}

func (r *LawyerProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.LawyerProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyer_profiles WHERE email = $1`, email)
	return r.scanProfile(ctx, row)
}

func (r *LawyerProfileRepository) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lawyer_profiles WHERE account_id = $1)`, accountID).Scan(&exists)
	return exists, err
}

func (r *LawyerProfileRepository) ExistsByBarNumber(ctx context.Context, barNumber, excludeProfileID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lawyer_profiles WHERE bar_number = $1 AND id <> $2)`, barNumber, excludeProfileID).Scan(&exists)
	return exists, err
}

func (r *LawyerProfileRepository) Save(ctx context.Context, l *entity.LawyerProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lawyer_profiles (id, account_id, first_name, last_name, email, phone_number, country, current_firm, onboarding_step, application_status, profile_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, l.ID, l.AccountID, l.FirstName, l.LastName, l.Email, l.PhoneNumber, l.Country, l.CurrentFirm, string(l.Step), string(l.Status), l.ProfileCompleted, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return conflictOnUnique(err, "lawyer profile already exists for this user")
	}
	return nil
}

// Update rewrites the profile row and full-replaces documents,
// specializations and languages in one transaction, so a reader never
// observes a momentarily empty set.
func (r *LawyerProfileRepository) Update(ctx context.Context, l *entity.LawyerProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var barNumber, school *string
	var barIssuedAt *time.Time
	var graduationYear *int
	if l.BarCredentials != nil {
		bn := l.BarCredentials.BarNumber()
		ia := l.BarCredentials.IssuedAt()
		barNumber, barIssuedAt = &bn, &ia
	}
	if l.Education != nil {
		sc := l.Education.School()
		gy := l.Education.GraduationYear()
		school, graduationYear = &sc, &gy
	}

	res, err := tx.Exec(ctx, `
		UPDATE lawyer_profiles
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, country = $5, current_firm = $6,
		    bar_number = $7, bar_issued_at = $8, school = $9, graduation_year = $10,
		    onboarding_step = $11, application_status = $12, profile_completed = $13, updated_at = $14
		WHERE id = $15
	`, l.FirstName, l.LastName, l.Email, l.PhoneNumber, l.Country, l.CurrentFirm,
		barNumber, barIssuedAt, school, graduationYear,
		string(l.Step), string(l.Status), l.ProfileCompleted, l.UpdatedAt, l.ID)
	if err != nil {
		return conflictOnUnique(err, "bar number is already registered")
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("lawyer profile not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lawyer_documents WHERE lawyer_id = $1`, l.ID); err != nil {
		return err
	}
	for _, d := range l.Documents {
		if _, err := tx.Exec(ctx, `
			INSERT INTO lawyer_documents (id, lawyer_id, name, url, uploaded_at)
			VALUES ($1, $2, $3, $4, $5)
		`, d.ID, l.ID, d.Name, d.URL, d.UploadedAt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lawyer_specializations WHERE lawyer_id = $1`, l.ID); err != nil {
		return err
	}
	for _, s := range l.Specializations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO lawyer_specializations (lawyer_id, specialization_id, is_primary, years_of_experience)
			VALUES ($1, $2, $3, $4)
		`, l.ID, s.SpecializationID, s.Primary, s.YearsOfExperience); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lawyer_languages WHERE lawyer_id = $1`, l.ID); err != nil {
		return err
	}
	for _, langID := range l.LanguageIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO lawyer_languages (lawyer_id, language_id)
			VALUES ($1, $2)
		`, l.ID, langID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

var _ repository.LawyerProfileRepository = (*LawyerProfileRepository)(nil)
