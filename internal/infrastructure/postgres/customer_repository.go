package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente; id y timestamps los asigna la DB.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, company, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.Email, customer.Phone, customer.Company, customer.UserID,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListByOwner lista los clientes del dueño, más recientes primero.
// Search aplica como substring (OR sobre name, email, phone) y Company
// como substring sobre company; cadenas vacías coinciden con todo.
func (r *CustomerRepo) ListByOwner(ownerID int64, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, company, created_at, updated_at, user_id
		FROM customers
		WHERE user_id = $1
		  AND (name LIKE $2 OR email LIKE $2 OR phone LIKE $2)
		  AND company LIKE $3
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query,
		ownerID, "%"+filter.Search+"%", "%"+filter.Company+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update aplica el patch con COALESCE: los campos nil conservan su valor.
// updated_at avanza siempre que la fila coincida; user_id nunca se toca.
// Retorna false si ningún cliente con ese id pertenece al dueño.
func (r *CustomerRepo) Update(id, ownerID int64, patch repository.CustomerPatch) (bool, error) {
	query := `
		UPDATE customers
		SET name = COALESCE($3, name),
		    email = COALESCE($4, email),
		    phone = COALESCE($5, phone),
		    company = COALESCE($6, company),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		id, ownerID, patch.Name, patch.Email, patch.Phone, patch.Company,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrEmailAlreadyExists
		}
		return false, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina el cliente del dueño. Retorna false si no había fila.
func (r *CustomerRepo) Delete(id, ownerID int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
