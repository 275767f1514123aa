package media

import (
	"errors"

	"github.com/nguyentantai21042004/wavshift/internal/tempo"
)

var (
	ErrInvalidArgument = tempo.ErrInvalidArgument
	ErrProbeParse      = errors.New("probe output is not a duration")
)
