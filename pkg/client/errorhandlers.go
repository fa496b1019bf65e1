package client

import (
	"net/http"
	"strings"

	"github.com/mugiliam/hatchrelclient/pkg/apperrors"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
	"github.com/mugiliam/hatchrelclient/pkg/rest"
	"github.com/tidwall/gjson"
)

// Exception type names reported in ErrorResponse.Type.
const (
	typeNoSuchMetalake  = "NoSuchMetalakeException"
	typeNoSuchCatalog   = "NoSuchCatalogException"
	typeNoSuchSchema    = "NoSuchSchemaException"
	typeNoSuchTable     = "NoSuchTableException"
	typeNoSuchPartition = "NoSuchPartitionException"
)

// errorHandler maps error replies to the catalogerrors taxonomy. notFound is
// used when the reply does not name the missing object; every conflict
// becomes alreadyExists.
type errorHandler struct {
	notFound      apperrors.Error
	alreadyExists apperrors.Error
}

var _ rest.ErrorHandler = (*errorHandler)(nil)

var (
	partitionErrorHandler = &errorHandler{
		notFound:      catalogerrors.ErrNoSuchPartition,
		alreadyExists: catalogerrors.ErrPartitionAlreadyExists,
	}
	tableErrorHandler = &errorHandler{
		notFound:      catalogerrors.ErrNoSuchTable,
		alreadyExists: catalogerrors.ErrAlreadyExists,
	}
)

// PartitionErrorHandler is the handler for partition operations: a not-found
// reply becomes ErrNoSuchPartition and a conflict ErrPartitionAlreadyExists,
// unless the reply names a missing metalake, catalog, schema or table.
func PartitionErrorHandler() rest.ErrorHandler {
	return partitionErrorHandler
}

// TableErrorHandler is the handler for table operations.
func TableErrorHandler() rest.ErrorHandler {
	return tableErrorHandler
}

func (h *errorHandler) Accept(statusCode int, body []byte) error {
	er := parseErrorResponse(statusCode, body)

	switch er.Code {
	case dto.CodeIllegalArguments:
		return catalogerrors.ErrIllegalArgument.Msg(er.Message)
	case dto.CodeNotFound:
		return notFoundKind(er.Type, h.notFound).Msg(er.Message)
	case dto.CodeAlreadyExists:
		return h.alreadyExists.Msg(er.Message)
	case dto.CodeUnsupportedOperation:
		return catalogerrors.ErrUnsupportedOperation.Msg(er.Message)
	case dto.CodeInternalError:
		return catalogerrors.ErrInternal.Msg(er.Message)
	}
	return catalogerrors.ErrRest.Msg(er.Message)
}

func notFoundKind(typ string, fallback apperrors.Error) apperrors.Error {
	switch typ {
	case typeNoSuchMetalake:
		return catalogerrors.ErrNoSuchMetalake
	case typeNoSuchCatalog:
		return catalogerrors.ErrNoSuchCatalog
	case typeNoSuchSchema:
		return catalogerrors.ErrNoSuchSchema
	case typeNoSuchTable:
		return catalogerrors.ErrNoSuchTable
	case typeNoSuchPartition:
		return catalogerrors.ErrNoSuchPartition
	}
	return fallback
}

// parseErrorResponse reads the error payload. Replies that are not error
// payloads (proxies, empty bodies) are classified by HTTP status.
func parseErrorResponse(statusCode int, body []byte) dto.ErrorResponse {
	er := dto.ErrorResponse{}
	if gjson.ValidBytes(body) {
		r := gjson.ParseBytes(body)
		if code := r.Get("code"); code.Exists() && code.Type == gjson.Number {
			er.Code = int(code.Int())
			er.Type = r.Get("type").String()
			er.Message = r.Get("message").String()
		}
	}
	if er.Code == 0 {
		er.Code = codeFromStatus(statusCode)
	}
	if er.Message == "" {
		er.Message = strings.TrimSpace(string(body))
	}
	if er.Message == "" {
		er.Message = http.StatusText(statusCode)
	}
	return er
}

func codeFromStatus(statusCode int) int {
	switch {
	case statusCode == http.StatusBadRequest:
		return dto.CodeIllegalArguments
	case statusCode == http.StatusNotFound:
		return dto.CodeNotFound
	case statusCode == http.StatusConflict:
		return dto.CodeAlreadyExists
	case statusCode == http.StatusNotImplemented:
		return dto.CodeUnsupportedOperation
	case statusCode >= http.StatusInternalServerError:
		return dto.CodeInternalError
	}
	return dto.CodeRestError
}
