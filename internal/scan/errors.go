package scan

import "errors"

var (
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrUnknownLogic     = errors.New("unknown logic operator")
	ErrUnknownCondition = errors.New("unknown condition type")
	ErrInvalidRange     = errors.New("invalid seed range")
)
