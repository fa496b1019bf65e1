package client

import (
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/mugiliam/hatchrelclient/pkg/types"
)

// BaseTable is a read-only table view over the description returned by the
// catalog service. It has no optional capabilities.
type BaseTable struct {
	table dto.TableDTO
}

var _ rel.Table = (*BaseTable)(nil)

// NewBaseTable snapshots t. Later changes to t are not observed.
func NewBaseTable(t *dto.TableDTO) (*BaseTable, error) {
	if t == nil {
		return nil, catalogerrors.ErrIllegalArgument.Msg("table description must not be nil")
	}
	return &BaseTable{table: copyTableDTO(t)}, nil
}

func (t *BaseTable) Name() string {
	return t.table.Name
}

func (t *BaseTable) Columns() []rel.Column {
	return t.table.ToColumns()
}

func (t *BaseTable) Partitioning() []rel.Expression {
	return t.table.ToPartitioning()
}

func (t *BaseTable) SortOrder() []rel.Expression {
	return t.table.ToSortOrder()
}

func (t *BaseTable) Distribution() rel.Expression {
	return t.table.ToDistribution()
}

func (t *BaseTable) Comment() types.NullableString {
	return t.table.Comment
}

func (t *BaseTable) Properties() map[string]string {
	props := make(map[string]string, len(t.table.Properties))
	for k, v := range t.table.Properties {
		props[k] = v
	}
	return props
}

func (t *BaseTable) AuditInfo() rel.Audit {
	return t.table.ToAudit()
}

func (t *BaseTable) Indexes() []rel.Index {
	return t.table.ToIndexes()
}

func (t *BaseTable) SupportPartitions() (rel.SupportsPartitions, error) {
	return rel.Unsupported(t.table.Name)
}

// copyTableDTO copies the containers of t so the snapshot cannot be
// modified through the caller's value.
func copyTableDTO(t *dto.TableDTO) dto.TableDTO {
	c := *t
	c.Columns = append([]dto.ColumnDTO(nil), t.Columns...)
	c.Indexes = append([]dto.IndexDTO(nil), t.Indexes...)
	c.Partitioning = append(c.Partitioning[:0:0], t.Partitioning...)
	c.SortOrders = append(c.SortOrders[:0:0], t.SortOrders...)
	if t.Properties != nil {
		c.Properties = make(map[string]string, len(t.Properties))
		for k, v := range t.Properties {
			c.Properties[k] = v
		}
	}
	return c
}
