package answer

import "errors"

var errBadArity = errors.New("sqrt takes one non-negative number")
