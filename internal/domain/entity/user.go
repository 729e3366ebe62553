package entity

// Rol por defecto para usuarios nuevos.
const RoleUser = "user"

// User representa un usuario del sistema (dueño de sus clientes).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
}
