package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. Retorna domain.ErrUsernameTaken
	// si el username ya existe.
	Create(user *entity.User) error
	// GetByUsername retorna (nil, nil) si no existe.
	GetByUsername(username string) (*entity.User, error)
}
