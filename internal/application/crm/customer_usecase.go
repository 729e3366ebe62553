package crm

import (
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes, siempre acotados al usuario dueño.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente etiquetado con el dueño autenticado.
// Retorna domain.ErrEmailAlreadyExists si el email ya está en uso.
func (uc *CustomerUseCase) Create(ownerID int64, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		UserID:  ownerID,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes del dueño, más recientes primero. Search aplica
// como substring sobre name, email o phone; Company sobre company.
func (uc *CustomerUseCase) List(ownerID int64, q dto.ListCustomersQuery) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, repository.CustomerFilter{
		Search:  q.Search,
		Company: q.Company,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial (coalesce): los campos ausentes
// conservan su valor; updated_at avanza siempre que haya fila coincidente.
// Retorna domain.ErrNotFound vía found=false si el cliente no es del dueño.
func (uc *CustomerUseCase) Update(id, ownerID int64, in dto.UpdateCustomerRequest) (bool, error) {
	return uc.repo.Update(id, ownerID, repository.CustomerPatch{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
	})
}

// Delete elimina el cliente del dueño. found=false si el id no existe o es ajeno.
func (uc *CustomerUseCase) Delete(id, ownerID int64) (bool, error) {
	return uc.repo.Delete(id, ownerID)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		UserID:    c.UserID,
	}
}
