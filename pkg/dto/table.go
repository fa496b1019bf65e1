package dto

import (
	"encoding/json"
	"time"

	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/mugiliam/hatchrelclient/pkg/types"
	"github.com/tidwall/gjson"
)

type ColumnDTO struct {
	Name          string               `json:"name" validate:"required"`
	Type          json.RawMessage      `json:"type" validate:"required"`
	Comment       types.NullableString `json:"comment"`
	Nullable      bool                 `json:"nullable"`
	AutoIncrement bool                 `json:"autoIncrement"`
}

type AuditDTO struct {
	Creator          string     `json:"creator"`
	CreateTime       *time.Time `json:"createTime,omitempty"`
	LastModifier     string     `json:"lastModifier,omitempty"`
	LastModifiedTime *time.Time `json:"lastModifiedTime,omitempty"`
}

type IndexDTO struct {
	IndexType  string     `json:"indexType" validate:"required"`
	Name       string     `json:"name"`
	FieldNames [][]string `json:"fieldNames"`
}

// TableDTO is the wire description of a table. Partitioning, sort order and
// distribution are kept as raw JSON.
type TableDTO struct {
	Name         string               `json:"name" validate:"required"`
	Comment      types.NullableString `json:"comment"`
	Columns      []ColumnDTO          `json:"columns" validate:"dive"`
	Properties   map[string]string    `json:"properties"`
	Audit        AuditDTO             `json:"audit"`
	Partitioning []json.RawMessage    `json:"partitioning,omitempty"`
	SortOrders   []json.RawMessage    `json:"sortOrders,omitempty"`
	Distribution json.RawMessage      `json:"distribution,omitempty"`
	Indexes      []IndexDTO           `json:"indexes,omitempty" validate:"dive"`
}

func (t *TableDTO) Validate() error {
	return toError("invalid table", t.validationErrors(""))
}

func (t *TableDTO) validationErrors(prefix string) ValidationErrors {
	return structErrors(t, prefix)
}

func (t *TableDTO) ToColumns() []rel.Column {
	cols := make([]rel.Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, rel.Column{
			Name:          c.Name,
			DataType:      dataTypeString(c.Type),
			Comment:       c.Comment,
			Nullable:      c.Nullable,
			AutoIncrement: c.AutoIncrement,
		})
	}
	return cols
}

func (t *TableDTO) ToAudit() rel.Audit {
	a := rel.Audit{
		Creator:      t.Audit.Creator,
		LastModifier: t.Audit.LastModifier,
	}
	if t.Audit.CreateTime != nil {
		a.CreateTime = *t.Audit.CreateTime
	}
	if t.Audit.LastModifiedTime != nil {
		a.LastModifiedTime = *t.Audit.LastModifiedTime
	}
	return a
}

func (t *TableDTO) ToIndexes() []rel.Index {
	idx := make([]rel.Index, 0, len(t.Indexes))
	for _, i := range t.Indexes {
		idx = append(idx, rel.Index{Type: i.IndexType, Name: i.Name, FieldNames: i.FieldNames})
	}
	return idx
}

func (t *TableDTO) ToPartitioning() []rel.Expression {
	return toExpressions(t.Partitioning)
}

func (t *TableDTO) ToSortOrder() []rel.Expression {
	return toExpressions(t.SortOrders)
}

func (t *TableDTO) ToDistribution() rel.Expression {
	return toExpression(t.Distribution)
}

func toExpressions(raw []json.RawMessage) []rel.Expression {
	out := make([]rel.Expression, 0, len(raw))
	for _, r := range raw {
		out = append(out, toExpression(r))
	}
	return out
}

// toExpression keeps the payload as is; the strategy is "strategy" for
// transforms and distributions and "direction" for sort orders.
func toExpression(raw json.RawMessage) rel.Expression {
	if len(raw) == 0 {
		return rel.Expression{}
	}
	strategy := gjson.GetBytes(raw, "strategy")
	if !strategy.Exists() {
		strategy = gjson.GetBytes(raw, "direction")
	}
	return rel.Expression{
		Strategy: strategy.String(),
		Raw:      append(json.RawMessage(nil), raw...),
	}
}

// dataTypeString renders a column type; primitive types arrive as JSON
// strings, complex ones as objects.
func dataTypeString(raw json.RawMessage) string {
	r := gjson.ParseBytes(raw)
	if r.Type == gjson.String {
		return r.String()
	}
	return r.Raw
}
