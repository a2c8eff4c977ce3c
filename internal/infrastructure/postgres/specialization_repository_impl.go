package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/internal/domain/repository"
)

type SpecializationRepository struct {
	pool *pgxpool.Pool
}

func NewSpecializationRepository(pool *pgxpool.Pool) *SpecializationRepository {
	return &SpecializationRepository{pool: pool}
}

func (r *SpecializationRepository) FindAll(ctx context.Context) ([]*entity.Specialization, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, active, created_at, updated_at FROM specializations WHERE active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Specialization
	for rows.Next() {
		s := &entity.Specialization{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpecializationRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Specialization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name, active, created_at, updated_at FROM specializations WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Specialization
	for rows.Next() {
		s := &entity.Specialization{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpecializationRepository) ExistsByIDs(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT id) FROM specializations WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		return false, err
	}
	return count == len(uniqueIDs(ids)), nil
}

type LanguageRepository struct {
	pool *pgxpool.Pool
}

func NewLanguageRepository(pool *pgxpool.Pool) *LanguageRepository {
	return &LanguageRepository{pool: pool}
}

func (r *LanguageRepository) FindAll(ctx context.Context) ([]*entity.Language, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, code FROM languages ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Language
	for rows.Next() {
		l := &entity.Language{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Code); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LanguageRepository) ExistsByIDs(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT id) FROM languages WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		return false, err
	}
	return count == len(uniqueIDs(ids)), nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var (
	_ repository.SpecializationRepository = (*SpecializationRepository)(nil)
	_ repository.LanguageRepository      = (*LanguageRepository)(nil)
)
