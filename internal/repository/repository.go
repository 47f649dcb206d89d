package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/softsales/api/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

const selectClient = `
	SELECT id, kind, email, address, phone, returning,
	       first_name, last_name, pesel, deleted_at,
	       business_name, krs,
	       created_at, updated_at
	FROM clients`

func (r *Repository) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"

	c, err := scanClient(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Client{}, fmt.Errorf("client %s: %w", id, entity.ErrNotFound)
	}

	return c, err
}

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	const q = `
	INSERT INTO clients (
		id, kind, email, address, phone, returning,
		first_name, last_name, pesel,
		business_name, krs,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var (
		firstName, lastName, pesel string
		businessName, krs          string
	)

	switch c.Kind {
	case entity.ClientKindIndividual:
		firstName, lastName, pesel = c.Individual.FirstName, c.Individual.LastName, c.Individual.PESEL
	case entity.ClientKindBusiness:
		businessName, krs = c.Business.Name, c.Business.KRS
	}

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.Kind,
		c.Email,
		c.Address,
		c.Phone,
		c.Returning,
		zeronull.Text(firstName),
		zeronull.Text(lastName),
		zeronull.Text(pesel),
		zeronull.Text(businessName),
		zeronull.Text(krs),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return entity.Client{}, err
	}

	return c, nil
}

func (r *Repository) SoftDeleteIndividualClient(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	const q = `
	UPDATE clients SET deleted_at = $1, updated_at = $1
	WHERE id = $2 AND kind = $3 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, q, deletedAt, id, entity.ClientKindIndividual)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, entity.ErrNotFound)
	}

	return nil
}

func (r *Repository) UpdateIndividualClient(ctx context.Context, id uuid.UUID, upd entity.IndividualUpdate, updatedAt time.Time) error {
	stmt := sq.Update("clients").
		Where(sq.Eq{"id": id, "kind": entity.ClientKindIndividual}).
		Where("deleted_at IS NULL").
		Set("updated_at", updatedAt).
		PlaceholderFormat(sq.Dollar)

	if upd.Email != "" {
		stmt = stmt.Set("email", upd.Email)
	}

	if upd.Address != "" {
		stmt = stmt.Set("address", upd.Address)
	}

	if upd.Phone != "" {
		stmt = stmt.Set("phone", upd.Phone)
	}

	if upd.FirstName != "" {
		stmt = stmt.Set("first_name", upd.FirstName)
	}

	if upd.LastName != "" {
		stmt = stmt.Set("last_name", upd.LastName)
	}

	return r.execUpdateClient(ctx, stmt, id)
}

func (r *Repository) UpdateBusinessClient(ctx context.Context, id uuid.UUID, upd entity.BusinessUpdate, updatedAt time.Time) error {
	stmt := sq.Update("clients").
		Where(sq.Eq{"id": id, "kind": entity.ClientKindBusiness}).
		Set("updated_at", updatedAt).
		PlaceholderFormat(sq.Dollar)

	if upd.Email != "" {
		stmt = stmt.Set("email", upd.Email)
	}

	if upd.Address != "" {
		stmt = stmt.Set("address", upd.Address)
	}

	if upd.Phone != "" {
		stmt = stmt.Set("phone", upd.Phone)
	}

	if upd.Name != "" {
		stmt = stmt.Set("business_name", upd.Name)
	}

	return r.execUpdateClient(ctx, stmt, id)
}

func (r *Repository) execUpdateClient(ctx context.Context, stmt sq.UpdateBuilder, id uuid.UUID) error {
	q, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, entity.ErrNotFound)
	}

	return nil
}

func scanClient(row pgx.Row) (entity.Client, error) {
	var (
		c                          entity.Client
		firstName, lastName, pesel zeronull.Text
		deletedAt                  *time.Time
		businessName, krs          zeronull.Text
	)

	err := row.Scan(
		&c.ID,
		&c.Kind,
		&c.Email,
		&c.Address,
		&c.Phone,
		&c.Returning,
		&firstName,
		&lastName,
		&pesel,
		&deletedAt,
		&businessName,
		&krs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.Client{}, err
	}

	switch c.Kind {
	case entity.ClientKindIndividual:
		c.Individual = &entity.Individual{
			FirstName: string(firstName),
			LastName:  string(lastName),
			PESEL:     string(pesel),
			DeletedAt: deletedAt,
		}
	case entity.ClientKindBusiness:
		c.Business = &entity.Business{
			Name: string(businessName),
			KRS:  string(krs),
		}
	}

	return c, nil
}
