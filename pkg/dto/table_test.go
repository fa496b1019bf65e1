package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

const ordersTableYAML = `
code: 0
table:
  name: orders
  comment: daily orders
  columns:
    - name: id
      type: long
      nullable: false
      autoIncrement: true
    - name: dt
      type: date
      nullable: true
    - name: tags
      type:
        type: list
        elementType: string
        containsNull: true
  properties:
    format: parquet
  audit:
    creator: etl
    createTime: "2024-01-01T00:00:00Z"
  partitioning:
    - strategy: identity
      fieldName: [dt]
  sortOrders:
    - direction: asc
      nullOrdering: nulls_first
      sortTerm:
        type: field
        fieldName: [id]
  distribution:
    strategy: hash
    number: 4
  indexes:
    - indexType: PRIMARY_KEY
      name: pk
      fieldNames: [[id]]
`

func TestTableResponse(t *testing.T) {
	j, err := yaml.YAMLToJSON([]byte(ordersTableYAML))
	require.NoError(t, err)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(j, &resp))
	require.NoError(t, resp.Validate())

	tbl := resp.Table
	assert.Equal(t, "orders", tbl.Name)
	assert.Equal(t, "daily orders", tbl.Comment.String())

	cols := tbl.ToColumns()
	require.Len(t, cols, 3)
	assert.Equal(t, "long", cols[0].DataType)
	assert.True(t, cols[0].AutoIncrement)
	assert.True(t, cols[1].Nullable)
	assert.JSONEq(t, `{"type":"list","elementType":"string","containsNull":true}`, cols[2].DataType)

	audit := tbl.ToAudit()
	assert.Equal(t, "etl", audit.Creator)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), audit.CreateTime.UTC())
	assert.True(t, audit.LastModifiedTime.IsZero())

	parts := tbl.ToPartitioning()
	require.Len(t, parts, 1)
	assert.Equal(t, "identity", parts[0].Strategy)

	sorts := tbl.ToSortOrder()
	require.Len(t, sorts, 1)
	assert.Equal(t, "asc", sorts[0].Strategy)

	assert.Equal(t, "hash", tbl.ToDistribution().Strategy)

	idx := tbl.ToIndexes()
	require.Len(t, idx, 1)
	assert.Equal(t, "PRIMARY_KEY", idx[0].Type)
	assert.Equal(t, [][]string{{"id"}}, idx[0].FieldNames)
}

func TestTableResponseValidate(t *testing.T) {
	var resp TableResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code": 0}`), &resp))
	assert.ErrorIs(t, resp.Validate(), catalogerrors.ErrValidation)

	require.NoError(t, json.Unmarshal([]byte(`{"code": 0, "table": {"columns": [{"name": "id", "type": "long"}]}}`), &resp))
	err := resp.Validate()
	assert.ErrorIs(t, err, catalogerrors.ErrValidation)
	var ves ValidationErrors
	require.ErrorAs(t, err, &ves)
	assert.Equal(t, "table.name", ves[0].Field)
}

func TestEmptyDistribution(t *testing.T) {
	tbl := &TableDTO{Name: "t"}
	assert.Equal(t, "", tbl.ToDistribution().Strategy)
	assert.Empty(t, tbl.ToPartitioning())
	assert.NoError(t, tbl.Validate())
}
