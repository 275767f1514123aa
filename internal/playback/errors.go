package playback

import "errors"

var (
	ErrEmptyClip     = errors.New("clip has no audio")
	ErrFormatChanged = errors.New("output already opened with a different format")
)
