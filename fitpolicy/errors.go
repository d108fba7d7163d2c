package fitpolicy

import "errors"

// ErrUnknownFit indicates a Fit value outside {Valid, Overhang, Shrink}.
var ErrUnknownFit = errors.New("fitpolicy: unknown fit variant")
