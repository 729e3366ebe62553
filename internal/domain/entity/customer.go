package entity

import "time"

// Customer representa un cliente del CRM. Pertenece a exactamente un User;
// UserID es inmutable después de la creación.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
}
