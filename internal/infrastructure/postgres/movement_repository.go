package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `movement_id, product_id, from_location, to_location, qty, "timestamp", created_at, updated_at`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Los CHECK y FK del esquema repiten las reglas del dominio.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO movements (`+movementColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.MovementID, m.ProductID, m.FromLocation, m.ToLocation, m.Qty, m.Timestamp, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isConstraintViolation(err):
			return fmt.Errorf("insert movement: %w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE movement_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update reemplaza producto, extremos, cantidad y timestamp. created_at se conserva.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE movements
		SET product_id = $2, from_location = $3, to_location = $4, qty = $5, "timestamp" = $6, updated_at = $7
		WHERE movement_id = $1`,
		m.MovementID, m.ProductID, m.FromLocation, m.ToLocation, m.Qty, m.Timestamp, m.UpdatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("update movement: %w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista movimientos según el filtro, más recientes primero.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	query, args := movementListQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// movementListQuery arma el SELECT con un placeholder por cada campo del filtro no vacío.
func movementListQuery(f repository.MovementFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond, value string) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ProductID != "" {
		add("product_id = $%d", f.ProductID)
	}
	if f.FromLocation != "" {
		add("from_location = $%d", f.FromLocation)
	}
	if f.ToLocation != "" {
		add("to_location = $%d", f.ToLocation)
	}
	if f.Location != "" {
		args = append(args, f.Location)
		n := len(args)
		where = append(where, fmt.Sprintf("(from_location = $%d OR to_location = $%d)", n, n))
	}

	var b strings.Builder
	b.WriteString("SELECT " + movementColumns + " FROM movements")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(` ORDER BY "timestamp" DESC, movement_id DESC`)
	return b.String(), args
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	if err := row.Scan(&m.MovementID, &m.ProductID, &m.FromLocation, &m.ToLocation,
		&m.Qty, &m.Timestamp, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
