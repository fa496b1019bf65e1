package client

import (
	"context"
	"net/url"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
	"github.com/mugiliam/hatchrelclient/pkg/namespace"
	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/mugiliam/hatchrelclient/pkg/rest"
	"github.com/rs/zerolog/log"
)

// RelationalTable is a table of a relational catalog. Besides the base table
// view it supports partition operations, each of which is one call to the
// catalog service. Nothing is cached.
type RelationalTable struct {
	*BaseTable
	namespace namespace.Namespace
	client    rest.Client
}

var (
	_ rel.Table              = (*RelationalTable)(nil)
	_ rel.SupportsPartitions = (*RelationalTable)(nil)
)

// NewRelationalTable returns the table described by t in the metalake.catalog.schema
// namespace ns.
func NewRelationalTable(ns namespace.Namespace, t *dto.TableDTO, c rest.Client) (*RelationalTable, error) {
	if err := namespace.CheckTable(ns); err != nil {
		return nil, err
	}
	if t == nil || t.Name == "" {
		return nil, catalogerrors.ErrIllegalArgument.Msg("table description must have a name")
	}
	if c == nil {
		return nil, catalogerrors.ErrIllegalArgument.Msg("rest client must not be nil")
	}
	base, err := NewBaseTable(t)
	if err != nil {
		return nil, err
	}
	return &RelationalTable{
		BaseTable: base,
		namespace: ns,
		client:    c,
	}, nil
}

func (t *RelationalTable) Namespace() namespace.Namespace {
	return t.namespace
}

func (t *RelationalTable) SupportPartitions() (rel.SupportsPartitions, error) {
	return t, nil
}

// PartitionRequestPath is the partition collection path of this table.
func (t *RelationalTable) PartitionRequestPath() string {
	return PartitionRequestPath(t.namespace, t.Name())
}

func (t *RelationalTable) ListPartitionNames(ctx context.Context) ([]string, error) {
	resp := &dto.PartitionNameListResponse{}
	err := t.client.Get(ctx, t.PartitionRequestPath(), nil, resp, nil, PartitionErrorHandler())
	if err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return resp.PartitionNames(), nil
}

func (t *RelationalTable) ListPartitions(ctx context.Context) ([]rel.Partition, error) {
	params := url.Values{}
	params.Set("details", "true")

	resp := &dto.PartitionListResponse{}
	err := t.client.Get(ctx, t.PartitionRequestPath(), params, resp, nil, PartitionErrorHandler())
	if err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	parts := make([]rel.Partition, 0, len(resp.Partitions))
	for i := range resp.Partitions {
		parts = append(parts, resp.Partitions[i].ToPartition())
	}
	return parts, nil
}

// GetPartition returns the named partition. A missing partition is reported
// with an error matching catalogerrors.ErrNoSuchPartition.
func (t *RelationalTable) GetPartition(ctx context.Context, name string) (rel.Partition, error) {
	if name == "" {
		return nil, catalogerrors.ErrIllegalArgument.Msg("partition name must not be empty")
	}
	resp := &dto.PartitionResponse{}
	err := t.client.Get(ctx, FormatPartitionRequestPath(t.PartitionRequestPath(), name), nil, resp, nil, PartitionErrorHandler())
	if err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return resp.Partition.ToPartition(), nil
}

// AddPartition adds p and returns the partition as stored by the service. A
// name collision is reported with an error matching
// catalogerrors.ErrPartitionAlreadyExists.
func (t *RelationalTable) AddPartition(ctx context.Context, p rel.Partition) (rel.Partition, error) {
	if p == nil {
		return nil, catalogerrors.ErrIllegalArgument.Msg("partition must not be nil")
	}
	req := dto.NewAddPartitionsRequest(p)
	if err := req.Validate(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("table", t.Name()).Msg("invalid add partition request")
		return nil, err
	}

	resp := &dto.PartitionListResponse{}
	err := t.client.Post(ctx, t.PartitionRequestPath(), req, resp, nil, PartitionErrorHandler())
	if err != nil {
		return nil, err
	}
	if err := resp.ValidateSingle(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("table", t.Name()).Msg("invalid add partition response")
		return nil, err
	}
	return resp.Partitions[0].ToPartition(), nil
}

// DropPartition deletes the named partition and reports whether the service
// removed one.
func (t *RelationalTable) DropPartition(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, catalogerrors.ErrIllegalArgument.Msg("partition name must not be empty")
	}
	resp := &dto.DropResponse{}
	err := t.client.Delete(ctx, FormatPartitionRequestPath(t.PartitionRequestPath(), name), nil, resp, nil, PartitionErrorHandler())
	if err != nil {
		return false, err
	}
	if err := resp.Validate(); err != nil {
		return false, err
	}
	return resp.Dropped, nil
}

// LoadTable fetches the description of a table and returns it with partition support.
func LoadTable(ctx context.Context, c rest.Client, ns namespace.Namespace, name string) (*RelationalTable, error) {
	if err := namespace.CheckTable(ns); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, catalogerrors.ErrIllegalArgument.Msg("table name must not be empty")
	}
	resp := &dto.TableResponse{}
	if err := c.Get(ctx, TableRequestPath(ns, name), nil, resp, nil, TableErrorHandler()); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return NewRelationalTable(ns, resp.Table, c)
}
