package capture

import "errors"

var (
	ErrEmptyInput = errors.New("capture input is empty")
)
