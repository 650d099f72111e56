package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Register wires the core's REST contract onto the router.
func Register(e *echo.Echo, h *Handler, lh *LoanHandler, gh *GoldItemHandler, ph *PaymentHandler) {
	e.GET("/health", h.Health)

	e.POST("/loans", lh.CreateLoan)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.GET("/loans/:loan_id/schedule", lh.GetSchedule)
	e.POST("/loans/:loan_id/approve", lh.ApproveLoan)
	e.POST("/loans/:loan_id/reject", lh.RejectLoan)
	e.POST("/loans/:loan_id/disburse", lh.DisburseLoan)
	e.POST("/loans/:loan_id/default", lh.DefaultLoan)
	e.GET("/borrowers/:borrower_id/loans", lh.ListByBorrower)

	e.POST("/payments", ph.RecordPayment)
	e.GET("/payments/loan/:loan_id", ph.ListByLoan)

	e.POST("/gold-items", gh.AddItem)
	e.PUT("/gold-items/:item_id", gh.UpdateItem)
	e.PUT("/gold-items/:item_id/release", gh.ReleaseItem)
	e.PUT("/gold-items/loan/:loan_id/release-all", gh.ReleaseAll)
	e.DELETE("/gold-items/:item_id", gh.DeleteItem)
	e.GET("/gold-items/loan/:loan_id", gh.GetByLoan)
}
