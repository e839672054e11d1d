package errcode

type Code string

const (
	UnknownCurrency Code = "UNKNOWN_CURRENCY"
	InvalidAmount   Code = "INVALID_AMOUNT"
	RateUnavailable Code = "RATE_UNAVAILABLE"

	ConversionInProgress Code = "CONVERSION_IN_PROGRESS"
	TaskNotFound         Code = "TASK_NOT_FOUND"
	ConversionNotFound   Code = "CONVERSION_NOT_FOUND"

	Timeout    Code = "TIMEOUT"
	Canceled   Code = "CANCELED"
	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
