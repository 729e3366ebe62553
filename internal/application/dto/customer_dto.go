package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. Company es opcional.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=1"`
	Company string `json:"company" validate:"omitempty,max=200"`
}

// UpdateCustomerRequest actualización parcial: cada campo es opcional pero,
// si viene, se valida con las mismas reglas de la creación. Los campos
// ausentes (nil) conservan el valor almacenado.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,min=1"`
	Company *string `json:"company" validate:"omitempty,max=200"`
}

// ListCustomersQuery parámetros de búsqueda del listado.
// Vacíos por defecto: substring vacío coincide con todas las filas.
type ListCustomersQuery struct {
	Search  string `query:"search"`
	Company string `query:"company"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    int64     `json:"user_id"`
}
