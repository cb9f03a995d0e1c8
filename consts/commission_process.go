package consts

const (
	// Commission process status codes
	StatusInit     = 1
	StatusRunning  = 2
	StatusFinished = 3
	StatusFailed   = 4

	// Operation types
	OperationTypeCashIn  = "cash_in"
	OperationTypeCashOut = "cash_out"

	// User types
	UserTypeNatural   = "natural"
	UserTypeJuridical = "juridical"

	// Default config
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 2
	DefaultUploadDir     = "uploads"
	DefaultInputDir      = "inputs"
	DefaultOperator      = "system"
)
