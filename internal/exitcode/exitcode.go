package exitcode

const (
	Success             = 0
	UsageError          = 1
	ValidationError     = 2
	MissingColumns      = 3
	InvalidNumericInput = 4
	UnknownTreatment    = 5
	InvalidHospitalType = 6
	DBConnError         = 7
	LoadError           = 8
)
