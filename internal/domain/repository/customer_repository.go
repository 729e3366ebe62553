package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CustomerFilter filtros de listado: Search aplica como substring sobre
// name, email o phone (OR); Company como substring sobre company (AND).
// Cadenas vacías coinciden con todas las filas.
type CustomerFilter struct {
	Search  string
	Company string
}

// CustomerPatch actualización parcial: los campos nil conservan el valor almacenado.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones de lectura/mutación están acotadas al usuario dueño.
type CustomerRepository interface {
	// Create persiste el cliente y asigna ID y timestamps. Retorna
	// domain.ErrEmailAlreadyExists si el email ya existe.
	Create(customer *entity.Customer) error
	// ListByOwner lista los clientes del dueño, más recientes primero.
	ListByOwner(ownerID int64, filter CustomerFilter) ([]*entity.Customer, error)
	// Update aplica el patch (coalesce) y refresca updated_at. Retorna false
	// si ningún cliente con ese id pertenece al dueño.
	Update(id, ownerID int64, patch CustomerPatch) (bool, error)
	// Delete elimina el cliente del dueño. Retorna false si no existía.
	Delete(id, ownerID int64) (bool, error)
}
