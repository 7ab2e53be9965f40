package v1

import (
	"errors"
	"net/http"

	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/recurring"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, recurring.ErrRunInProgress):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errKindInvalid        = errors.New("the kind parameter must be \"income\" or \"expense\"")
	errActorMissing       = errors.New("the actor must be set")
	errOccurrencesInvalid = errors.New("the occurrences parameter must be between 1 and 100")
	errDateRangeInvalid   = errors.New("fromDate must not be after untilDate")
)
