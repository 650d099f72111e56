package http

import (
	"net/http"

	uc "goldvault-backend/internal/usecase/collateral"

	"github.com/labstack/echo/v4"
)

type GoldItemHandler struct{ uc *uc.Usecase }

func NewGoldItemHandler(u *uc.Usecase) *GoldItemHandler { return &GoldItemHandler{uc: u} }

type addItemReq struct {
	LoanID       string  `json:"loan_id"         validate:"required,hex32"`
	ItemType     string  `json:"item_type"       validate:"required"`
	WeightGrams  float64 `json:"weight_grams"    validate:"required,gt=0,dec3"`
	Purity       string  `json:"purity"          validate:"required"`
	RateAtPledge float64 `json:"rate_at_pledge"  validate:"gte=0,dec2"`
	Description  string  `json:"description"`
}

func (h *GoldItemHandler) AddItem(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	item, err := h.uc.AddItem(c.Request().Context(), uc.AddItemInput{
		LoanID:       req.LoanID,
		Actor:        actor,
		ItemType:     req.ItemType,
		WeightGrams:  req.WeightGrams,
		Purity:       req.Purity,
		RateAtPledge: req.RateAtPledge,
		Description:  req.Description,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

type updateItemReq struct {
	ItemType     *string  `json:"item_type"`
	WeightGrams  *float64 `json:"weight_grams"`
	Purity       *string  `json:"purity"`
	RateAtPledge *float64 `json:"rate_at_pledge"`
	Description  *string  `json:"description"`
}

func (h *GoldItemHandler) UpdateItem(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req updateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	item, err := h.uc.UpdateItem(c.Request().Context(), uc.UpdateItemInput{
		ItemID:       c.Param("item_id"),
		Actor:        actor,
		ItemType:     req.ItemType,
		WeightGrams:  req.WeightGrams,
		Purity:       req.Purity,
		RateAtPledge: req.RateAtPledge,
		Description:  req.Description,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

type releaseReq struct {
	ReleasedToName  string `json:"released_to_name"  validate:"required"`
	ReleasedToPhone string `json:"released_to_phone"`
	Notes           string `json:"notes"`
}

func (h *GoldItemHandler) ReleaseItem(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req releaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	item, err := h.uc.ReleaseItem(c.Request().Context(), uc.ReleaseItemInput{
		ItemID:          c.Param("item_id"),
		Actor:           actor,
		ReleasedToName:  req.ReleasedToName,
		ReleasedToPhone: req.ReleasedToPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *GoldItemHandler) ReleaseAll(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req releaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	count, err := h.uc.ReleaseAll(c.Request().Context(), uc.ReleaseAllInput{
		LoanID:          c.Param("loan_id"),
		Actor:           actor,
		ReleasedToName:  req.ReleasedToName,
		ReleasedToPhone: req.ReleasedToPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"released": count})
}

func (h *GoldItemHandler) DeleteItem(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := h.uc.DeleteItem(c.Request().Context(), c.Param("item_id"), actor); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GoldItemHandler) GetByLoan(c echo.Context) error {
	dto, err := h.uc.GetByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
