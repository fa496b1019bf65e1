package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/stretchr/testify/assert"
)

func TestPartitionErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		notWant error
		msg     string
	}{
		{
			name:   "illegal argument",
			status: http.StatusBadRequest,
			body:   `{"code":1001,"type":"IllegalArgumentException","message":"bad partition"}`,
			want:   catalogerrors.ErrIllegalArgument,
			msg:    "bad partition",
		},
		{
			name:   "missing partition",
			status: http.StatusNotFound,
			body:   `{"code":1003,"type":"NoSuchPartitionException","message":"partition p1 does not exist"}`,
			want:   catalogerrors.ErrNoSuchPartition,
			msg:    "partition p1 does not exist",
		},
		{
			name:    "missing table",
			status:  http.StatusNotFound,
			body:    `{"code":1003,"type":"NoSuchTableException","message":"table orders does not exist"}`,
			want:    catalogerrors.ErrNoSuchTable,
			notWant: catalogerrors.ErrNoSuchPartition,
		},
		{
			name:    "missing schema",
			status:  http.StatusNotFound,
			body:    `{"code":1003,"type":"NoSuchSchemaException","message":"no schema"}`,
			want:    catalogerrors.ErrNoSuchSchema,
			notWant: catalogerrors.ErrNoSuchPartition,
		},
		{
			name:   "missing catalog",
			status: http.StatusNotFound,
			body:   `{"code":1003,"type":"NoSuchCatalogException","message":"no catalog"}`,
			want:   catalogerrors.ErrNoSuchCatalog,
		},
		{
			name:   "missing metalake",
			status: http.StatusNotFound,
			body:   `{"code":1003,"type":"NoSuchMetalakeException","message":"no metalake"}`,
			want:   catalogerrors.ErrNoSuchMetalake,
		},
		{
			name:   "unnamed not found",
			status: http.StatusNotFound,
			body:   `{"code":1003,"type":"NotFoundException","message":"gone"}`,
			want:   catalogerrors.ErrNoSuchPartition,
		},
		{
			name:   "duplicate partition",
			status: http.StatusConflict,
			body:   `{"code":1004,"type":"PartitionAlreadyExistsException","message":"partition p1 already exists"}`,
			want:   catalogerrors.ErrPartitionAlreadyExists,
			msg:    "partition p1 already exists",
		},
		{
			name:   "unsupported",
			status: http.StatusNotImplemented,
			body:   `{"code":1006,"type":"UnsupportedOperationException","message":"no partitions"}`,
			want:   catalogerrors.ErrUnsupportedOperation,
		},
		{
			name:   "internal",
			status: http.StatusInternalServerError,
			body:   `{"code":1002,"type":"RuntimeException","message":"boom"}`,
			want:   catalogerrors.ErrInternal,
			msg:    "boom",
		},
		{
			name:    "unknown code",
			status:  http.StatusBadRequest,
			body:    `{"code":1005,"type":"NonEmptyException","message":"not empty"}`,
			want:    catalogerrors.ErrRest,
			notWant: catalogerrors.ErrIllegalArgument,
		},
		{
			name:   "plain text 404",
			status: http.StatusNotFound,
			body:   `404 page not found`,
			want:   catalogerrors.ErrNoSuchPartition,
			msg:    "404 page not found",
		},
		{
			name:   "empty 502",
			status: http.StatusBadGateway,
			body:   ``,
			want:   catalogerrors.ErrInternal,
			msg:    "Bad Gateway",
		},
		{
			name:   "empty 418",
			status: http.StatusTeapot,
			body:   ``,
			want:   catalogerrors.ErrRest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PartitionErrorHandler().Accept(tt.status, []byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, catalogerrors.ErrCatalog)
			if tt.notWant != nil {
				assert.False(t, errors.Is(err, tt.notWant))
			}
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}

func TestTableErrorHandler(t *testing.T) {
	err := TableErrorHandler().Accept(http.StatusNotFound, []byte(`{"code":1003,"message":"gone"}`))
	assert.ErrorIs(t, err, catalogerrors.ErrNoSuchTable)

	err = TableErrorHandler().Accept(http.StatusConflict, []byte(`{"code":1004,"message":"exists"}`))
	assert.ErrorIs(t, err, catalogerrors.ErrAlreadyExists)
	assert.NotErrorIs(t, err, catalogerrors.ErrPartitionAlreadyExists)
}
