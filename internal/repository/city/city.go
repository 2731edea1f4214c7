package city

import (
	"context"
	"fmt"

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

// ListActive возвращает активные города в порядке каталога.
func (r *Repository) ListActive(ctx context.Context) ([]string, error) {
	query := `SELECT name
		FROM service_cities
		WHERE active
		ORDER BY position, name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected city repository listactive error: %w", repository.TranslateError(err))
	}
	defer rows.Close()

	cities := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("unexpected city repository listactive error: %w", err)
		}
		cities = append(cities, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected city repository listactive error: %w", repository.TranslateError(err))
	}

	return cities, nil
}
