package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/radhian/commission-system/consts"
	"github.com/shopspring/decimal"
)

var ErrInvalidOperation = errors.New("invalid operation")

type OperationType string

const (
	OperationCashIn  OperationType = consts.OperationTypeCashIn
	OperationCashOut OperationType = consts.OperationTypeCashOut
)

func (t OperationType) Valid() bool {
	return t == OperationCashIn || t == OperationCashOut
}

func (t *OperationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("type must be a string: %w", err)
	}
	v := OperationType(strings.TrimSpace(s))
	if !v.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidOperation, s)
	}
	*t = v
	return nil
}

type UserType string

const (
	UserNatural   UserType = consts.UserTypeNatural
	UserJuridical UserType = consts.UserTypeJuridical
)

func (u UserType) Valid() bool {
	return u == UserNatural || u == UserJuridical
}

func (u *UserType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("user_type must be a string: %w", err)
	}
	v := UserType(strings.TrimSpace(s))
	if !v.Valid() {
		return fmt.Errorf("%w: unknown user_type %q", ErrInvalidOperation, s)
	}
	*u = v
	return nil
}

// UserID identifies a user. Input documents carry it either as a JSON
// number or as a string. Numbers are stored in their shortest decimal form.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id must be a string or a number: %w", err)
	}
	// 1, 1.0 and 1e0 name the same user
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("user_id %s is not a valid number: %w", n.String(), err)
	}
	*id = UserID(d.String())
	return nil
}

// Operation is a single cash-in or cash-out record of a batch.
type Operation struct {
	Date     time.Time
	UserID   UserID
	UserType UserType
	Type     OperationType
	Amount   decimal.Decimal
	Currency string
}

type operationJSON struct {
	Date      *string        `json:"date"`
	UserID    *UserID        `json:"user_id"`
	UserType  *UserType      `json:"user_type"`
	Type      *OperationType `json:"type"`
	Operation *struct {
		Amount   *decimal.Decimal `json:"amount"`
		Currency string           `json:"currency"`
	} `json:"operation"`
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw operationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Date == nil:
		return fmt.Errorf("%w: date is required", ErrInvalidOperation)
	case raw.UserID == nil:
		return fmt.Errorf("%w: user_id is required", ErrInvalidOperation)
	case raw.UserType == nil:
		return fmt.Errorf("%w: user_type is required", ErrInvalidOperation)
	case raw.Type == nil:
		return fmt.Errorf("%w: type is required", ErrInvalidOperation)
	case raw.Operation == nil || raw.Operation.Amount == nil:
		return fmt.Errorf("%w: operation.amount is required", ErrInvalidOperation)
	}

	date, err := ParseDate(*raw.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	op := Operation{
		Date:     date,
		UserID:   *raw.UserID,
		UserType: *raw.UserType,
		Type:     *raw.Type,
		Amount:   *raw.Operation.Amount,
		Currency: raw.Operation.Currency,
	}
	if err := op.Validate(); err != nil {
		return err
	}

	*o = op
	return nil
}

func (o Operation) Validate() error {
	if o.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidOperation)
	}
	if o.UserID == "" {
		return fmt.Errorf("%w: user_id is empty", ErrInvalidOperation)
	}
	if !o.UserType.Valid() {
		return fmt.Errorf("%w: unknown user_type %q", ErrInvalidOperation, o.UserType)
	}
	if !o.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidOperation, o.Type)
	}
	if o.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", ErrInvalidOperation, o.Amount.String())
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate accepts a date-only value, RFC3339, or "2006-01-02 15:04:05".
// Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("date %q parse failed: %w", s, lastErr)
}
