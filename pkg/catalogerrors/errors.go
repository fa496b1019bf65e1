// Package catalogerrors holds the error kinds surfaced by catalog clients.
// Callers branch with errors.Is on these sentinels, never on status codes.
package catalogerrors

import (
	"net/http"

	"github.com/mugiliam/hatchrelclient/pkg/apperrors"
)

var (
	ErrCatalog apperrors.Error = apperrors.New("error in catalog operation")

	ErrNotFound        apperrors.Error = ErrCatalog.New("not found").SetStatusCode(http.StatusNotFound)
	ErrNoSuchMetalake  apperrors.Error = ErrNotFound.New("metalake does not exist")
	ErrNoSuchCatalog   apperrors.Error = ErrNotFound.New("catalog does not exist")
	ErrNoSuchSchema    apperrors.Error = ErrNotFound.New("schema does not exist")
	ErrNoSuchTable     apperrors.Error = ErrNotFound.New("table does not exist")
	ErrNoSuchPartition apperrors.Error = ErrNotFound.New("partition does not exist")

	ErrAlreadyExists          apperrors.Error = ErrCatalog.New("already exists").SetStatusCode(http.StatusConflict)
	ErrPartitionAlreadyExists apperrors.Error = ErrAlreadyExists.New("partition already exists")

	ErrUnsupportedOperation apperrors.Error = ErrCatalog.New("unsupported operation").SetStatusCode(http.StatusNotImplemented)

	ErrIllegalArgument  apperrors.Error = ErrCatalog.New("illegal argument").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrIllegalNamespace apperrors.Error = ErrIllegalArgument.New("illegal namespace")

	ErrValidation apperrors.Error = ErrCatalog.New("validation failed").SetExpandError(true).SetStatusCode(http.StatusBadRequest)

	ErrInternal apperrors.Error = ErrCatalog.New("internal error").SetStatusCode(http.StatusInternalServerError)
	ErrRest     apperrors.Error = ErrCatalog.New("error response from catalog service").SetStatusCode(http.StatusInternalServerError)
)
