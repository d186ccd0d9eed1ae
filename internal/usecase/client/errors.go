package client

import (
	dbpkg "github.com/BruksfildServices01/salon-api/internal/db"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

// storeError classifies a repository failure that is not a domain sentinel.
func storeError(code, message string, err error) error {
	if dbpkg.IsUnavailable(err) {
		return httperr.ErrDependency(code, err)
	}
	return httperr.ErrInternal(code, message, err)
}
