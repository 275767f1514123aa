package tempo

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
