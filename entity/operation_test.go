package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_UnmarshalJSON(t *testing.T) {
	raw := `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":200.00,"currency":"EUR"}}`

	var op Operation
	require.NoError(t, json.Unmarshal([]byte(raw), &op))

	assert.Equal(t, time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC), op.Date)
	assert.Equal(t, UserID("1"), op.UserID)
	assert.Equal(t, UserNatural, op.UserType)
	assert.Equal(t, OperationCashIn, op.Type)
	assert.Equal(t, "200.00", op.Amount.StringFixed(2))
	assert.Equal(t, "EUR", op.Currency)
}

func TestOperation_UnmarshalJSON_StringForms(t *testing.T) {
	raw := `{"date":"2016-01-05T10:00:00Z","user_id":"1","user_type":"juridical","type":"cash_out","operation":{"amount":"300.10"}}`

	var op Operation
	require.NoError(t, json.Unmarshal([]byte(raw), &op))

	assert.Equal(t, UserID("1"), op.UserID)
	assert.Equal(t, UserJuridical, op.UserType)
	assert.Equal(t, OperationCashOut, op.Type)
	assert.Equal(t, "300.10", op.Amount.StringFixed(2))
	assert.Empty(t, op.Currency)
}

func TestUserID_UnmarshalJSON_NumericForms(t *testing.T) {
	tests := []struct {
		in   string
		want UserID
	}{
		{`1`, "1"},
		{`1.0`, "1"},
		{`1e0`, "1"},
		{`1.00`, "1"},
		{`100`, "100"},
		{`1e2`, "100"},
		{`"1.0"`, "1.0"},
		{`" 7 "`, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id UserID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestOperation_UnmarshalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing date", `{"user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":1}}`},
		{"bad date", `{"date":"05/01/2016","user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":1}}`},
		{"missing user", `{"date":"2016-01-05","user_type":"natural","type":"cash_in","operation":{"amount":1}}`},
		{"empty user", `{"date":"2016-01-05","user_id":"","user_type":"natural","type":"cash_in","operation":{"amount":1}}`},
		{"unknown user type", `{"date":"2016-01-05","user_id":1,"user_type":"robot","type":"cash_in","operation":{"amount":1}}`},
		{"missing user type", `{"date":"2016-01-05","user_id":1,"type":"cash_in","operation":{"amount":1}}`},
		{"unknown type", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"transfer","operation":{"amount":1}}`},
		{"missing type", `{"date":"2016-01-05","user_id":1,"user_type":"natural","operation":{"amount":1}}`},
		{"missing operation", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in"}`},
		{"missing amount", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in","operation":{}}`},
		{"null amount", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":null}}`},
		{"negative amount", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":-5}}`},
		{"non numeric amount", `{"date":"2016-01-05","user_id":1,"user_type":"natural","type":"cash_in","operation":{"amount":"ten"}}`},
		{"user type not a string", `{"date":"2016-01-05","user_id":1,"user_type":1,"type":"cash_in","operation":{"amount":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var op Operation
			assert.Error(t, json.Unmarshal([]byte(tt.raw), &op))
		})
	}
}

func TestOperation_Validate(t *testing.T) {
	valid := Operation{
		Date:     time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC),
		UserID:   "1",
		UserType: UserNatural,
		Type:     OperationCashOut,
	}
	assert.NoError(t, valid.Validate())

	noDate := valid
	noDate.Date = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ErrInvalidOperation)

	badType := valid
	badType.Type = "refund"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidOperation)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2016-01-05", time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2016-01-05 13:45:00", time.Date(2016, 1, 5, 13, 45, 0, 0, time.UTC)},
		{"2016-01-05T13:45:00Z", time.Date(2016, 1, 5, 13, 45, 0, 0, time.UTC)},
		{" 2016-01-05 ", time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}

	_, err := ParseDate("yesterday")
	assert.Error(t, err)
}

func TestCommission_Format(t *testing.T) {
	c := Commission{}
	assert.Equal(t, "0.00", c.String())

	js, err := json.Marshal([]Commission{c})
	require.NoError(t, err)
	assert.JSONEq(t, `["0.00"]`, string(js))
}
