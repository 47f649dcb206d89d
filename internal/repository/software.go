package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/softsales/api/internal/entity"
)

func (r *Repository) Software(ctx context.Context, id uuid.UUID) (entity.Software, error) {
	const q = `
	SELECT id, name, description, category, current_version,
	       COALESCE(one_time_price, 0), COALESCE(subscription_price, 0),
	       is_one_time_purchase, is_subscription_purchase
	FROM software
	WHERE id = $1`

	var s entity.Software

	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Category,
		&s.CurrentVersion,
		&s.OneTimePrice,
		&s.SubscriptionPrice,
		&s.IsOneTimePurchase,
		&s.IsSubscriptionPurchase,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Software{}, fmt.Errorf("software %s: %w", id, entity.ErrNotFound)
	}

	if err != nil {
		return entity.Software{}, err
	}

	return s, nil
}

// SoftwareDiscounts returns every discount of the given type attached to the
// software, regardless of validity window. Window filtering is the caller's
// concern since it depends on the caller's clock.
func (r *Repository) SoftwareDiscounts(
	ctx context.Context,
	softwareID uuid.UUID,
	discountType entity.DiscountType,
) (discounts []entity.Discount, err error) {
	const q = `
	SELECT id, name, percentage, valid_from, valid_until, type, software_id
	FROM discounts
	WHERE software_id = $1 AND type = $2`

	rows, err := r.db.Query(ctx, q, softwareID, discountType)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var d entity.Discount

		err = rows.Scan(&d.ID, &d.Name, &d.Percentage, &d.From, &d.Until, &d.Type, &d.SoftwareID)
		if err != nil {
			return nil, err
		}

		discounts = append(discounts, d)
	}

	return discounts, rows.Err()
}
