package handler

import (
	"net/http"

	"cardbox/internal/delivery/http/response"
	"cardbox/internal/domain/entity"
	"cardbox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CardHandler holds dependencies for the card management handlers.
type CardHandler struct {
	uc usecase.CardUsecase
}

// NewCardHandler is the constructor for CardHandler, injected by Fx.
func NewCardHandler(uc usecase.CardUsecase) *CardHandler {
	return &CardHandler{uc: uc}
}

// List returns the ordered collection together with the active card id.
func (h *CardHandler) List(c echo.Context) error {
	cards, activeID, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"cards":        cards,
		"activeCardId": activeID,
	}, "Cards retrieved successfully")
}

// Get returns a single card by id.
func (h *CardHandler) Get(c echo.Context) error {
	card, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Card retrieved successfully")
}

// Create adds a fresh default-profile card under the supplied manager label.
func (h *CardHandler) Create(c echo.Context) error {
	var input *usecase.CreateCardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, card, "Card created successfully")
}

// Update replaces the whole card in place. The path id wins over any id
// carried in the body. The body goes through the partial-record merge so
// fields written by a newer schema survive the replace instead of being
// dropped at the bind.
func (h *CardHandler) Update(c echo.Context) error {
	var partial entity.PartialCard
	if err := c.Bind(&partial); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	card := entity.WithDefaults(partial)
	card.ID = c.Param("id")

	if err := h.uc.Update(c.Request().Context(), card.ID, card); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Card updated successfully")
}

// SetField applies one dotted field-path mutation and returns the updated
// card.
func (h *CardHandler) SetField(c echo.Context) error {
	var input *usecase.SetFieldInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.uc.SetField(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Field updated successfully")
}

// Delete removes a card. Deleting an id that is already gone still
// succeeds.
func (h *CardHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Card deleted successfully")
}

// Activate points the editor at the given card.
func (h *CardHandler) Activate(c echo.Context) error {
	if err := h.uc.SetActive(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Card activated successfully")
}

// Reorder moves one card in front of another in the manager list.
func (h *CardHandler) Reorder(c echo.Context) error {
	var input *usecase.ReorderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Reorder(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	cards, activeID, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"cards":        cards,
		"activeCardId": activeID,
	}, "Cards reordered successfully")
}
