package submit

import "errors"

var (
	ErrBusy         = errors.New("conversion already in progress")
	ErrTaskNotFound = errors.New("conversion task not found")
)
