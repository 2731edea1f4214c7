package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var terminalStatuses = []string{
	entities.OrderDelivered.String(),
	entities.OrderCancelled.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	order, err := r.queryOne(ctx, query, id)
	if err != nil {
		return nil, wrapError("getbyid", err)
	}
	return order, nil
}

// GetByIDForUpdate блокирует строку до конца транзакции из контекста.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	order, err := r.queryOne(ctx, query, id)
	if err != nil {
		return nil, wrapError("getbyidforupdate", err)
	}
	return order, nil
}

// ListDispatchable возвращает заказы города в статусах ленты, в порядке создания.
func (r *Repository) ListDispatchable(ctx context.Context, city string) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{
			"city":   city,
			"status": []string{entities.OrderPreparing.String(), entities.OrderPickedUp.String()},
		}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listdispatchable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("listdispatchable", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, wrapError("listdispatchable", err)
		}
		orderModels = append(orderModels, *orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("listdispatchable", err)
	}

	return ToDomainList(orderModels)
}

// GetPickedUpByDriver находит заказ, который курьер везет прямо сейчас.
func (r *Repository) GetPickedUpByDriver(ctx context.Context, courierID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE driver_id = $1 AND status = $2
		ORDER BY updated_at DESC
		LIMIT 1`

	order, err := r.queryOne(ctx, query, courierID, entities.OrderPickedUp.String())
	if err != nil {
		return nil, wrapError("getpickedupbydriver", err)
	}
	return order, nil
}

// Claim - единственная условная запись захвата. Если условие не выполнилось,
// возвращает entities.ErrAlreadyClaimed, уточнение причины остается вызывающему.
func (r *Repository) Claim(ctx context.Context, claim entities.Claim) (*entities.Order, error) {
	query := `UPDATE orders
		SET driver_id = $2, driver_name = $3, driver_phone = $4, updated_at = NOW()
		WHERE id = $1
			AND (driver_id IS NULL OR driver_id = $2)
			AND status <> ALL($5)
			AND NOT ($2 = ANY(rejected_by))
		RETURNING ` + orderColumns

	order, err := r.queryOne(ctx, query,
		claim.OrderID,
		claim.CourierID,
		claim.CourierName,
		claim.CourierPhone,
		terminalStatuses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAlreadyClaimed
		}
		return nil, wrapError("claim", err)
	}
	return order, nil
}

// AddRejection добавляет курьера в rejected_by. Повторный отказ ничего не меняет.
func (r *Repository) AddRejection(ctx context.Context, orderID string, courierID int64) error {
	query := `UPDATE orders
		SET rejected_by = array_append(rejected_by, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(rejected_by))`

	tag, err := r.querier.Exec(ctx, query, orderID, courierID)
	if err != nil {
		return wrapError("addrejection", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return wrapError("addrejection", err)
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return nil
}

// UpdateStatus применяет переход, только если заказ все еще в статусе update.From.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", update.To.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if update.DriverID != nil {
		builder = builder.
			Set("driver_id", *update.DriverID).
			Set("driver_name", update.DriverName).
			Set("driver_phone", update.DriverPhone)
	}
	if update.To == entities.OrderPickedUp {
		// новый цикл трекинга не должен видеть координаты прошлого
		builder = builder.
			Set("driver_lat", nil).
			Set("driver_lng", nil).
			Set("driver_location_at", nil)
	}
	if update.PhotoURL != nil {
		builder = builder.Set("delivery_photo_url", *update.PhotoURL)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.OrderID, "status": update.From.String()}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	order, err := r.queryOne(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvalidTransition
		}
		return nil, wrapError("updatestatus", err)
	}
	return order, nil
}

// ApplyExternalStatus переводит заказ в status из любого статуса allowedFrom.
// Используется для событий ресторана и отмены.
func (r *Repository) ApplyExternalStatus(
	ctx context.Context,
	orderID string,
	status entities.OrderStatus,
	allowedFrom []entities.OrderStatus,
) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID, "status": statusesToStrings(allowedFrom)}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository applyexternalstatus error: %w", err)
	}

	order, err := r.queryOne(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvalidTransition
		}
		return nil, wrapError("applyexternalstatus", err)
	}
	return order, nil
}

// AdminAssign перезаписывает курьера без проверок ленты. Окно назначения проверяет сервис.
func (r *Repository) AdminAssign(ctx context.Context, assignment entities.Assignment) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("driver_id", assignment.CourierID).
		Set("driver_name", assignment.CourierName).
		Set("driver_phone", assignment.CourierPhone).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": assignment.OrderID}).
		Where(sq.NotEq{"status": terminalStatuses}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository adminassign error: %w", err)
	}

	order, err := r.queryOne(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvalidTransition
		}
		return nil, wrapError("adminassign", err)
	}
	return order, nil
}

// UpdateDriverLocation пишет позицию только пока заказ в picked_up у этого курьера.
// false означает, что запись отклонена и публикацию пора остановить.
func (r *Repository) UpdateDriverLocation(
	ctx context.Context,
	orderID string,
	courierID int64,
	location entities.DriverLocation,
) (bool, error) {
	query := `UPDATE orders
		SET driver_lat = $3, driver_lng = $4, driver_location_at = $5
		WHERE id = $1 AND driver_id = $2 AND status = $6`

	tag, err := r.querier.Exec(ctx, query,
		orderID,
		courierID,
		location.Latitude,
		location.Longitude,
		location.RecordedAt,
		entities.OrderPickedUp.String(),
	)
	if err != nil {
		return false, wrapError("updatedriverlocation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...interface{}) (*entities.Order, error) {
	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return ToDomain(orderModel)
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.Status,
		&o.City,
		&o.CustomerID,
		&o.RestaurantLat,
		&o.RestaurantLng,
		&o.CustomerLat,
		&o.CustomerLng,
		&o.DriverID,
		&o.DriverName,
		&o.DriverPhone,
		&o.RejectedBy,
		&o.DriverLat,
		&o.DriverLng,
		&o.DriverLocationAt,
		&o.DeliveryPhotoURL,
		&o.LastMessageText,
		&o.LastMessageSenderID,
		&o.LastMessageAt,
		&o.LastMessageRead,
		&o.Total,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func wrapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if errors.Is(err, entities.ErrUnknownStatus) {
		return err
	}
	return fmt.Errorf("unexpected order repository %s error: %w", op, repository.TranslateError(err))
}
