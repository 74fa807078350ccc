package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeNotFound    = "NOT_FOUND"
	CodeDuplicateID = "DUPLICATE_ID"
	CodeInternal    = "INTERNAL"
)

// writeError traduce un error de los casos de uso a su respuesta HTTP.
// Los fallos de almacenamiento se registran y el cliente solo recibe un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	var dup *domain.DuplicateIDError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: "datos inválidos", Fields: dto.NewFieldErrors(verr),
		})
	case errors.As(err, &dup):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    CodeDuplicateID,
			Message: "el identificador ya existe",
			Fields:  []dto.FieldErrorResponse{{Field: dup.Field, Reason: domain.ReasonDuplicateID, Message: "ya existe un registro con " + dup.ID}},
		})
	case errors.Is(err, errInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeDuplicateID, Message: "el identificador ya existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "recurso no encontrado"})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", RequestIDFrom(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno, intente de nuevo"})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: message})
}

// errInvalidBody cuerpo que no es JSON válido para el DTO.
var errInvalidBody = errors.New("cuerpo inválido")

// parseBody decodifica el cuerpo JSON. Un qty no entero se reporta como rechazo de su campo.
func parseBody(c *fiber.Ctx, out any) error {
	err := c.BodyParser(out)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "qty" {
		verr := &domain.ValidationError{}
		verr.Add("qty", domain.ReasonInvalidQuantity, "la cantidad debe ser un entero positivo")
		return verr
	}
	return fmt.Errorf("%w: %v", errInvalidBody, err)
}
