package calculation

import (
	"github.com/radhian/commission-system/entity"
	"github.com/radhian/commission-system/usecase/commission"
)

func (u *calculationUsecase) CalculateCommissions(operations []entity.Operation) ([]entity.Commission, error) {
	return commission.CalculateCommissions(operations)
}
