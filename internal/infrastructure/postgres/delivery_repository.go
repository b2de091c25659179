package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// selectDeliveryJoin entrega + cliente (LEFT JOIN: el cliente siempre existe por FK,
// pero el scan tolera NULLs).
const selectDeliveryJoin = `
	SELECT d.id, d.customer_id, COALESCE(d.rider_id::text, ''), d.amount, d.is_paid, d.payment_method,
	       d.status, d.created_at, d.updated_at,
	       c.id, c.rider_id, c.name, c.address, c.phone, c.lat, c.lng, c.remarks, c.created_at, c.updated_at
	FROM deliveries d
	JOIN customers c ON c.id = d.customer_id`

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, customer_id, rider_id, amount, is_paid, payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CustomerID, d.RiderID, d.Amount, d.IsPaid, paymentMethodArg(d.PaymentMethod),
		string(d.Status), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega (con su cliente) por ID.
func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*entity.Delivery, error) {
	d, err := scanDelivery(r.q.QueryRow(ctx, selectDeliveryJoin+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// ListByRiderAndStatus entregas del rider en un estado, en orden de creación.
func (r *DeliveryRepo) ListByRiderAndStatus(ctx context.Context, riderID string, status entity.DeliveryStatus) ([]*entity.Delivery, error) {
	return r.list(ctx,
		selectDeliveryJoin+` WHERE d.rider_id = $1 AND d.status = $2 ORDER BY d.created_at, d.id`,
		riderID, string(status),
	)
}

// ListClosedBetween entregas cerradas (delivered/returned) actualizadas en [from, to].
func (r *DeliveryRepo) ListClosedBetween(ctx context.Context, riderID string, from, to time.Time) ([]*entity.Delivery, error) {
	return r.list(ctx,
		selectDeliveryJoin+`
		WHERE d.rider_id = $1
		  AND d.status IN ('delivered', 'returned')
		  AND d.updated_at >= $2 AND d.updated_at <= $3
		ORDER BY d.updated_at DESC`,
		riderID, from, to,
	)
}

// UpdateStatus persiste el resultado de la entrega.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, d *entity.Delivery) error {
	query := `
		UPDATE deliveries SET status = $2, is_paid = $3, payment_method = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		d.ID, string(d.Status), d.IsPaid, paymentMethodArg(d.PaymentMethod), d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

// Delete elimina una entrega por ID.
func (r *DeliveryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

func (r *DeliveryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Delivery, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	list := []*entity.Delivery{}
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	var (
		d      entity.Delivery
		c      entity.Customer
		method *string
		status string
	)
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.RiderID, &d.Amount, &d.IsPaid, &method, &status, &d.CreatedAt, &d.UpdatedAt,
		&c.ID, &c.RiderID, &c.Name, &c.Address, &c.Phone, &c.Lat, &c.Lng, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan delivery: %w", err)
	}
	d.Status = entity.DeliveryStatus(status)
	if method != nil {
		m := entity.PaymentMethod(*method)
		d.PaymentMethod = &m
	}
	d.Customer = &c
	return &d, nil
}

func paymentMethodArg(m *entity.PaymentMethod) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}
