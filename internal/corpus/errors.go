package corpus

import "errors"

var (
	ErrDecode = errors.New("cannot decode wav file")
)
