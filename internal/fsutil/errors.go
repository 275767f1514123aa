package fsutil

import "errors"

var (
	ErrFileSystem = errors.New("filesystem error")
)
