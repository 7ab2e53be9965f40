package v1

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/dojo-ledger/backend/internal/money"
	ez_uuid "github.com/dojo-ledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// Amount is a decimal that also accepts localized strings like "1.234,56 €".
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string, decode as plain number
		return a.Decimal.UnmarshalJSON(data)
	}

	withoutSymbols := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)

	d, err := money.Parse(withoutSymbols, "")
	if err != nil {
		return err
	}

	a.Decimal = d
	return nil
}
