package catalogtest

import (
	"errors"
	"net/http"

	"github.com/mugiliam/hatchrelclient/pkg/apperrors"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
)

// errorKinds is ordered most specific first.
var errorKinds = []struct {
	err  error
	code int
	typ  string
}{
	{catalogerrors.ErrNoSuchMetalake, dto.CodeNotFound, "NoSuchMetalakeException"},
	{catalogerrors.ErrNoSuchCatalog, dto.CodeNotFound, "NoSuchCatalogException"},
	{catalogerrors.ErrNoSuchSchema, dto.CodeNotFound, "NoSuchSchemaException"},
	{catalogerrors.ErrNoSuchTable, dto.CodeNotFound, "NoSuchTableException"},
	{catalogerrors.ErrNoSuchPartition, dto.CodeNotFound, "NoSuchPartitionException"},
	{catalogerrors.ErrNotFound, dto.CodeNotFound, "NotFoundException"},
	{catalogerrors.ErrPartitionAlreadyExists, dto.CodeAlreadyExists, "PartitionAlreadyExistsException"},
	{catalogerrors.ErrAlreadyExists, dto.CodeAlreadyExists, "AlreadyExistsException"},
	{catalogerrors.ErrIllegalArgument, dto.CodeIllegalArguments, "IllegalArgumentException"},
	{catalogerrors.ErrUnsupportedOperation, dto.CodeUnsupportedOperation, "UnsupportedOperationException"},
	{catalogerrors.ErrInternal, dto.CodeInternalError, "RuntimeException"},
}

// ToErrorResponse converts err to the payload and HTTP status the catalog
// service sends for it.
func ToErrorResponse(err error) (int, *dto.ErrorResponse) {
	rsp := &dto.ErrorResponse{
		Code:    dto.CodeInternalError,
		Type:    "RuntimeException",
		Message: err.Error(),
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			rsp.Code = k.code
			rsp.Type = k.typ
			break
		}
	}

	statusCode := http.StatusInternalServerError
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		rsp.Message = appErr.ErrorAll()
		if appErr.StatusCode() != 0 {
			statusCode = appErr.StatusCode()
		}
	}
	return statusCode, rsp
}

func sendError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, rsp := ToErrorResponse(err)
	sendJSON(w, r, statusCode, rsp)
}
