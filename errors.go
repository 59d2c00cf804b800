package fasthash

import "errors"

var (
	ErrInvalidText = errors.New("text is not valid utf-8")
)
