package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Commission is the fee charged for one operation, already rounded to the cent.
type Commission struct {
	Amount decimal.Decimal
}

func (c Commission) String() string {
	return c.Amount.StringFixed(2)
}

func (c Commission) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func CommissionLines(commissions []Commission) []string {
	lines := make([]string, 0, len(commissions))
	for _, c := range commissions {
		lines = append(lines, c.String())
	}
	return lines
}

type ProcessCommissionRequest struct {
	InputPath string `json:"input_path"`
	Operator  string `json:"operator"`
}
