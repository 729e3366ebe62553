package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/pkg/validation"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido, acotado al dueño).
type CustomerHandler struct {
	uc       *crm.CustomerUseCase
	validate *validation.Validator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *crm.CustomerUseCase, validate *validation.Validator) *CustomerHandler {
	return &CustomerHandler{uc: uc, validate: validate}
}

// Create POST /customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "access token is missing or invalid"})
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if errs := h.validate.Check(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Message: "invalid input", Errors: errs})
	}
	customer, err := h.uc.Create(ownerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /customers?search=&company=
// search filtra por substring sobre name, email o phone; company sobre company.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "access token is missing or invalid"})
	}
	q := dto.ListCustomersQuery{
		Search:  c.Query("search", ""),
		Company: c.Query("company", ""),
	}
	list, err := h.uc.List(ownerID, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
	return c.JSON(list)
}

// Update PUT /customers/:id
// Actualización parcial: los campos ausentes conservan su valor (coalesce).
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "access token is missing or invalid"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// id no numérico nunca coincide con una fila: mismo 404 que un id inexistente
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if errs := h.validate.Check(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Message: "invalid input", Errors: errs})
	}
	found, err := h.uc.Update(id, ownerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "customer updated successfully"})
}

// Delete DELETE /customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "access token is missing or invalid"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	found, err := h.uc.Delete(id, ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "customer deleted successfully"})
}
