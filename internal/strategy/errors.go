package strategy

import "errors"

var errBetaUnavailable = errors.New("beta unavailable: benchmark return too small")
