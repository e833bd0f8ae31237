package anchor

import "errors"

// ErrInvalidOption is returned by NewPositioner when an option value is out of range.
var ErrInvalidOption = errors.New("anchor: invalid option")
