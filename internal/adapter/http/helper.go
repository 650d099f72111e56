package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	itemDomain "goldvault-backend/internal/domain/collateral"
	loanDomain "goldvault-backend/internal/domain/loan"
	paymentDomain "goldvault-backend/internal/domain/payment"
)

// HeaderOfficerID carries the acting loan officer for audit attribution;
// required on every mutating route.
const HeaderOfficerID = "Ax-Officer-Id"

func actorID(c echo.Context) (string, error) {
	actor := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderOfficerID)))
	if actor == "" {
		return "", errors.New("missing " + HeaderOfficerID)
	}
	if !reHex32.MatchString(actor) {
		return "", errors.New("invalid " + HeaderOfficerID)
	}
	return actor, nil
}

// writeDomainError maps the modeled error taxonomy onto HTTP statuses:
// validation 422, not-found 404, transition/state/concurrency conflicts
// 409. Anything else is an unexpected storage failure.
func writeDomainError(c echo.Context, err error) error {
	var transition *loanDomain.InvalidTransitionError
	switch {
	case errors.As(err, &transition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: transition.Error()})
	case errors.Is(err, loanDomain.ErrConcurrentModification),
		errors.Is(err, loanDomain.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, itemDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
