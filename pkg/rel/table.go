package rel

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/types"
)

// Column describes one table column. DataType is kept in the service's
// textual form; the client does not interpret it.
type Column struct {
	Name          string
	DataType      string
	Comment       types.NullableString
	Nullable      bool
	AutoIncrement bool
}

type Audit struct {
	Creator          string
	CreateTime       time.Time
	LastModifier     string
	LastModifiedTime time.Time
}

type Index struct {
	Type       string
	Name       string
	FieldNames [][]string
}

// Expression is an uninterpreted partitioning, sort order or distribution
// expression. Strategy is the discriminator the service sent, Raw the full payload.
type Expression struct {
	Strategy string
	Raw      json.RawMessage
}

// Table is the base capability set shared by every table variant.
type Table interface {
	Name() string
	Columns() []Column
	Partitioning() []Expression
	SortOrder() []Expression
	Distribution() Expression
	Comment() types.NullableString
	Properties() map[string]string
	AuditInfo() Audit
	Indexes() []Index

	// SupportPartitions returns the partition capability of the table, or an
	// error matching catalogerrors.ErrUnsupportedOperation.
	SupportPartitions() (SupportsPartitions, error)
}

// SupportsPartitions is the optional partition capability of a table.
type SupportsPartitions interface {
	ListPartitionNames(ctx context.Context) ([]string, error)
	ListPartitions(ctx context.Context) ([]Partition, error)
	GetPartition(ctx context.Context, name string) (Partition, error)
	AddPartition(ctx context.Context, p Partition) (Partition, error)
	DropPartition(ctx context.Context, name string) (bool, error)
}

// Partitions queries the partition capability of t.
func Partitions(t Table) (SupportsPartitions, error) {
	if t == nil {
		return nil, catalogerrors.ErrIllegalArgument.Msg("nil table")
	}
	return t.SupportPartitions()
}

// PartitionExists reports whether the named partition exists. Only a
// not-found result is turned into false; any other failure is returned.
func PartitionExists(ctx context.Context, sp SupportsPartitions, name string) (bool, error) {
	_, err := sp.GetPartition(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, catalogerrors.ErrNoSuchPartition) {
		return false, nil
	}
	return false, err
}

// Unsupported is the capability result of a table that cannot be partitioned.
func Unsupported(tableName string) (SupportsPartitions, error) {
	return nil, catalogerrors.ErrUnsupportedOperation.Msg("table " + tableName + " does not support partition operations")
}
