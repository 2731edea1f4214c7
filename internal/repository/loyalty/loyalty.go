package loyalty

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Award начисляет баллы один раз на заказ: повторный вызов с тем же OrderID
// не меняет баланс и возвращает false.
func (r *Repository) Award(ctx context.Context, award entities.LoyaltyAward) (bool, error) {
	query := `WITH awarded AS (
			INSERT INTO loyalty_awards (order_id, customer_id, points)
			VALUES ($1, $2, $3)
			ON CONFLICT (order_id) DO NOTHING
			RETURNING customer_id, points
		)
		INSERT INTO loyalty_accounts (customer_id, points)
		SELECT customer_id, points FROM awarded
		ON CONFLICT (customer_id) DO UPDATE
		SET points = loyalty_accounts.points + EXCLUDED.points, updated_at = NOW()`

	tag, err := r.querier.Exec(ctx, query, award.OrderID, award.CustomerID, award.Points)
	if err != nil {
		return false, fmt.Errorf("unexpected loyalty repository award error: %w", repository.TranslateError(err))
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Balance(ctx context.Context, customerID string) (int64, error) {
	query := `SELECT COALESCE(
		(SELECT points FROM loyalty_accounts WHERE customer_id = $1), 0)`

	var points int64
	err := r.querier.QueryRow(ctx, query, customerID).Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("unexpected loyalty repository balance error: %w", repository.TranslateError(err))
	}
	return points, nil
}
