package commission

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/entity"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedOperation = errors.New("unsupported operation")

// CalculateCommissions prices every operation in input order and returns one
// commission per operation. The weekly cash-out ledger lives only for the
// duration of the call. The first invalid operation fails the whole batch.
func CalculateCommissions(operations []entity.Operation) ([]entity.Commission, error) {
	ledger := NewWeeklyLedger()
	commissions := make([]entity.Commission, 0, len(operations))

	for i, op := range operations {
		fee, err := priceOperation(ledger, op)
		if err != nil {
			return nil, fmt.Errorf("operation #%d (user %s): %w", i+1, op.UserID, err)
		}
		commissions = append(commissions, entity.Commission{Amount: fee})
	}

	log.Debugf("[Commission] Priced %d operations", len(commissions))
	return commissions, nil
}

func priceOperation(ledger *WeeklyLedger, op entity.Operation) (decimal.Decimal, error) {
	if err := op.Validate(); err != nil {
		return decimal.Zero, err
	}

	week := WeekNumber(op.Date)

	switch op.Type {
	case entity.OperationCashIn:
		return CashInCommission(op.Amount), nil
	case entity.OperationCashOut:
		switch op.UserType {
		case entity.UserNatural:
			fee := CashOutNaturalCommission(op.Amount, ledger.CashedOut(op.UserID, week))
			ledger.Add(op.UserID, week, op.Amount)
			return fee, nil
		case entity.UserJuridical:
			return CashOutLegalCommission(op.Amount), nil
		}
	}

	return decimal.Zero, fmt.Errorf("%w: type=%s user_type=%s", ErrUnsupportedOperation, op.Type, op.UserType)
}
