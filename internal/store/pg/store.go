package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"advocates/internal/domain"
	"advocates/internal/store"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store { return &Store{DB: db} }

// ListAdvocates returns every advocate in insertion order.
func (s *Store) ListAdvocates(ctx context.Context) ([]domain.Advocate, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number
		FROM advocates
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Advocate, error) {
		var (
			a     domain.Advocate
			phone string
		)
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.City, &a.Degree, &a.Specialties, &a.YearsOfExperience, &phone)
		if a.Specialties == nil {
			a.Specialties = []string{}
		}
		a.PhoneNumber = domain.Phone{Kind: domain.PhoneText, Digits: phone}
		return a, err
	})
}

func (s *Store) UpsertAdvocate(ctx context.Context, in store.AdvocateUpsert) error {
	specialties := in.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	_, err := s.DB.Exec(ctx, `
		INSERT INTO advocates (id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		ON CONFLICT (id) DO UPDATE SET
			first_name=EXCLUDED.first_name,
			last_name=EXCLUDED.last_name,
			city=EXCLUDED.city,
			degree=EXCLUDED.degree,
			specialties=EXCLUDED.specialties,
			years_of_experience=EXCLUDED.years_of_experience,
			phone_number=EXCLUDED.phone_number,
			updated_at=EXCLUDED.updated_at
	`, in.ID, in.FirstName, in.LastName, in.City, in.Degree, specialties, in.YearsOfExperience, in.PhoneDigits, in.Now)
	return err
}

func (s *Store) CountAdvocates(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx, `SELECT count(*) FROM advocates`).Scan(&n)
	return n, err
}
