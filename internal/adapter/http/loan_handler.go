package http

import (
	"net/http"

	loanDomain "goldvault-backend/internal/domain/loan"
	uc "goldvault-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *uc.Usecase }

func NewLoanHandler(u *uc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

type newItemReq struct {
	ItemType     string  `json:"item_type"       validate:"required"`
	WeightGrams  float64 `json:"weight_grams"    validate:"required,gt=0,dec3"`
	Purity       string  `json:"purity"          validate:"required"`
	RateAtPledge float64 `json:"rate_at_pledge"  validate:"gte=0,dec2"`
	Description  string  `json:"description"`
}

type createLoanReq struct {
	BorrowerID          string       `json:"borrower_id"            validate:"required,hex32"`
	PrincipalAmount     float64      `json:"principal_amount"       validate:"required,gt=0,dec2"`
	InterestRatePercent float64      `json:"interest_rate_percent"  validate:"gte=0,dec2"`
	TenureMonths        int          `json:"tenure_months"          validate:"required,gt=0"`
	Items               []newItemReq `json:"items"                  validate:"required,min=1,dive"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := uc.CreateLoanInput{
		BorrowerID:          req.BorrowerID,
		PrincipalAmount:     req.PrincipalAmount,
		InterestRatePercent: req.InterestRatePercent,
		TenureMonths:        req.TenureMonths,
		CreatedBy:           actor,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, uc.NewItemInput(it))
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetSchedule(c echo.Context) error {
	rows, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"loan_id":  c.Param("loan_id"),
		"schedule": rows,
	})
}

func (h *LoanHandler) ListByBorrower(c echo.Context) error {
	dtos, err := h.uc.ListByBorrower(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

type remarksReq struct {
	Remarks        string `json:"remarks"`
	ExpectedStatus string `json:"expected_status"`
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req remarksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), uc.ApproveInput{
		LoanID:         c.Param("loan_id"),
		Actor:          actor,
		Remarks:        req.Remarks,
		ExpectedStatus: loanDomain.Status(req.ExpectedStatus),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req remarksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), uc.RejectInput{
		LoanID:         c.Param("loan_id"),
		Actor:          actor,
		Remarks:        req.Remarks,
		ExpectedStatus: loanDomain.Status(req.ExpectedStatus),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DisburseLoan(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req remarksReq
	_ = c.Bind(&req) // body optional
	dto, err := h.uc.Disburse(c.Request().Context(), uc.DisburseInput{
		LoanID:         c.Param("loan_id"),
		Actor:          actor,
		ExpectedStatus: loanDomain.Status(req.ExpectedStatus),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DefaultLoan(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req remarksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.MarkDefaulted(c.Request().Context(), uc.DefaultInput{
		LoanID:         c.Param("loan_id"),
		Actor:          actor,
		Remarks:        req.Remarks,
		ExpectedStatus: loanDomain.Status(req.ExpectedStatus),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
