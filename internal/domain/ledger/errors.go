package ledger

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found for ledger entry")
