package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

const selectAgreement = `
	SELECT id, client_id, software_id, price, deposited,
	       payment_from, payment_until, signed,
	       software_version, end_of_version_support,
	       created_at, updated_at
	FROM agreements`

func (r *Repository) CreateAgreement(ctx context.Context, a entity.Agreement) (entity.Agreement, error) {
	const q = `
	INSERT INTO agreements (
		id, client_id, software_id, price, deposited,
		payment_from, payment_until, signed,
		software_version, end_of_version_support,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(
		ctx,
		q,
		a.ID,
		a.ClientID,
		a.SoftwareID,
		a.Price,
		a.Deposited,
		a.PaymentFrom,
		a.PaymentUntil,
		a.Signed,
		a.SoftwareVersion,
		a.EndOfVersionSupport,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return entity.Agreement{}, err
	}

	return a, nil
}

func (r *Repository) Agreement(ctx context.Context, id uuid.UUID) (entity.Agreement, error) {
	q := selectAgreement + " WHERE id = $1"

	a, err := scanAgreement(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Agreement{}, fmt.Errorf("agreement %s: %w", id, entity.ErrNotFound)
	}

	return a, err
}

// ApplyDeposit records a payment and advances the agreement's funding state in
// one transaction. The agreement row is locked for the duration, so concurrent
// deposits against the same agreement serialize and the deposited <= price
// invariant holds. An overfunding deposit rolls back entirely: no payment row
// is kept and the deposited total is untouched.
func (r *Repository) ApplyDeposit(ctx context.Context, p entity.Payment) (entity.Agreement, error) {
	var a entity.Agreement

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		q := selectAgreement + " WHERE id = $1 FOR UPDATE"

		var err error

		a, err = scanAgreement(tx.QueryRow(ctx, q, p.AgreementID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("agreement %s: %w", p.AgreementID, entity.ErrNotFound)
		}

		if err != nil {
			return err
		}

		// Ownership mismatch is reported as not found so that the
		// existence of other clients' agreements does not leak.
		if a.ClientID != p.ClientID {
			return fmt.Errorf("agreement %s for client %s: %w", p.AgreementID, p.ClientID, entity.ErrNotFound)
		}

		err = a.ApplyDeposit(p.Amount)
		if err != nil {
			return err
		}

		const insertPayment = `
		INSERT INTO payments (id, amount, paid_at, client_id, agreement_id)
		VALUES ($1, $2, $3, $4, $5)`

		_, err = tx.Exec(ctx, insertPayment, p.ID, p.Amount, p.Date, p.ClientID, p.AgreementID)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		const updateAgreement = `
		UPDATE agreements SET deposited = $1, signed = $2, updated_at = $3 WHERE id = $4`

		_, err = tx.Exec(ctx, updateAgreement, a.Deposited, a.Signed, p.Date, a.ID)
		if err != nil {
			return fmt.Errorf("update agreement: %w", err)
		}

		a.UpdatedAt = p.Date

		return nil
	})
	if err != nil {
		return entity.Agreement{}, err
	}

	return a, nil
}

// IncomeTotals sums agreement prices in the home currency: actual over signed
// agreements, pending over unsigned ones whose payment window is still open at
// now. A nil softwareID means all software.
func (r *Repository) IncomeTotals(
	ctx context.Context,
	softwareID *uuid.UUID,
	now time.Time,
) (actual, pending decimal.Decimal, err error) {
	stmt := sq.Select().
		Column("COALESCE(SUM(price) FILTER (WHERE signed), 0)").
		Column(sq.Expr("COALESCE(SUM(price) FILTER (WHERE NOT signed AND payment_until >= ?), 0)", now)).
		From("agreements").
		PlaceholderFormat(sq.Dollar)

	if softwareID != nil {
		stmt = stmt.Where(sq.Eq{"software_id": *softwareID})
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	err = r.db.QueryRow(ctx, q, args...).Scan(&actual, &pending)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return actual, pending, nil
}

func (r *Repository) AgreementPayments(ctx context.Context, agreementID uuid.UUID) (payments []entity.Payment, err error) {
	const q = `
	SELECT id, amount, paid_at, client_id, agreement_id
	FROM payments
	WHERE agreement_id = $1
	ORDER BY paid_at`

	rows, err := r.db.Query(ctx, q, agreementID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var p entity.Payment

		err = rows.Scan(&p.ID, &p.Amount, &p.Date, &p.ClientID, &p.AgreementID)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func scanAgreement(row pgx.Row) (a entity.Agreement, err error) {
	err = row.Scan(
		&a.ID,
		&a.ClientID,
		&a.SoftwareID,
		&a.Price,
		&a.Deposited,
		&a.PaymentFrom,
		&a.PaymentUntil,
		&a.Signed,
		&a.SoftwareVersion,
		&a.EndOfVersionSupport,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}
