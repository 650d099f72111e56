package http

import (
	"net/http"
	"time"

	paymentDomain "goldvault-backend/internal/domain/payment"
	uc "goldvault-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *uc.Usecase }

func NewPaymentHandler(u *uc.Usecase) *PaymentHandler { return &PaymentHandler{uc: u} }

type recordPaymentReq struct {
	LoanID        string  `json:"loan_id"         validate:"required,hex32"`
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
	PaymentType   string  `json:"payment_type"    validate:"required"`
	PaymentMethod string  `json:"payment_method"  validate:"required"`
	// Canonical date `YYYY-MM-DD`; defaults to today when omitted.
	PaymentDate    string `json:"payment_date"    validate:"omitempty,datetime=2006-01-02"`
	TransactionRef string `json:"transaction_ref"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var when time.Time
	if req.PaymentDate != "" {
		when, _ = time.Parse("2006-01-02", req.PaymentDate)
	}
	entry, err := h.uc.Record(c.Request().Context(), uc.RecordInput{
		LoanID:         req.LoanID,
		Actor:          actor,
		Amount:         req.Amount,
		PaymentType:    paymentDomain.Type(req.PaymentType),
		PaymentMethod:  paymentDomain.Method(req.PaymentMethod),
		PaymentDate:    when,
		TransactionRef: req.TransactionRef,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *PaymentHandler) ListByLoan(c echo.Context) error {
	dto, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
