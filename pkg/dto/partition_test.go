package dto

import (
	"encoding/json"
	"testing"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		valid    bool
		field    string
	}{
		{
			name: "valid identity partition",
			jsonData: `
{
    "type": "identity",
    "name": "dt=2024-01-01",
    "fieldNames": [["dt"]],
    "values": [{"type": "literal", "dataType": "date", "value": "2024-01-01"}],
    "properties": {"location": "s3://bucket/orders/dt=2024-01-01"}
}`,
			valid: true,
		},
		{
			name: "valid range partition",
			jsonData: `
{
    "type": "range",
    "name": "p202401",
    "upper": {"type": "literal", "dataType": "date", "value": "2024-02-01"},
    "lower": {"type": "literal", "dataType": "date", "value": "2024-01-01"}
}`,
			valid: true,
		},
		{
			name: "valid list partition",
			jsonData: `
{
    "type": "list",
    "name": "p_eu",
    "lists": [[{"type": "literal", "dataType": "string", "value": "de"}], [{"type": "literal", "dataType": "string", "value": "fr"}]]
}`,
			valid: true,
		},
		{
			name:     "missing name",
			jsonData: `{"type": "identity"}`,
			field:    "name",
		},
		{
			name:     "missing type",
			jsonData: `{"name": "p1"}`,
			field:    "type",
		},
		{
			name:     "unknown type",
			jsonData: `{"type": "hash", "name": "p1"}`,
			field:    "type",
		},
		{
			name: "literal without data type",
			jsonData: `
{
    "type": "identity",
    "name": "p1",
    "fieldNames": [["dt"]],
    "values": [{"type": "literal", "value": "2024-01-01"}]
}`,
			field: "values[0].dataType",
		},
		{
			name: "identity values do not match field names",
			jsonData: `
{
    "type": "identity",
    "name": "p1",
    "fieldNames": [["dt"], ["country"]],
    "values": [{"type": "literal", "dataType": "date", "value": "2024-01-01"}]
}`,
			field: "fieldNames",
		},
		{
			name: "range partition with lists",
			jsonData: `
{
    "type": "range",
    "name": "p1",
    "lists": [[{"type": "literal", "dataType": "string", "value": "de"}]]
}`,
			field: "lists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PartitionDTO
			require.NoError(t, json.Unmarshal([]byte(tt.jsonData), &p))

			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, catalogerrors.ErrValidation)

			var ves ValidationErrors
			require.ErrorAs(t, err, &ves)
			fields := make([]string, 0, len(ves))
			for _, ve := range ves {
				fields = append(fields, ve.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestPartitionConversion(t *testing.T) {
	parts := []rel.Partition{
		rel.Identity("dt=2024-01-01", [][]string{{"dt"}},
			[]rel.Literal{rel.StringLiteral("date", "2024-01-01")}, map[string]string{"k": "v"}),
		rel.Range("p202401", rel.StringLiteral("date", "2024-02-01"), rel.StringLiteral("date", "2024-01-01"), nil),
		rel.List("p_eu", [][]rel.Literal{{rel.StringLiteral("string", "de")}, {rel.NullLiteral()}}, nil),
	}

	for _, p := range parts {
		t.Run(p.Name(), func(t *testing.T) {
			d := ToPartitionDTO(p)
			require.NoError(t, d.Validate())

			b, err := json.Marshal(d)
			require.NoError(t, err)
			var decoded PartitionDTO
			require.NoError(t, json.Unmarshal(b, &decoded))

			assert.Equal(t, p, decoded.ToPartition())
		})
	}
}

func TestIdentityPartitionWireFormat(t *testing.T) {
	p := rel.Identity("dt=2024-01-01", [][]string{{"dt"}},
		[]rel.Literal{rel.StringLiteral("date", "2024-01-01")}, nil)

	b, err := json.Marshal(ToPartitionDTO(p))
	require.NoError(t, err)
	assert.JSONEq(t, `
{
    "type": "identity",
    "name": "dt=2024-01-01",
    "fieldNames": [["dt"]],
    "values": [{"type": "literal", "dataType": "date", "value": "2024-01-01"}]
}`, string(b))
}

type namedOnly struct{ name string }

func (n namedOnly) Name() string                  { return n.name }
func (n namedOnly) Properties() map[string]string { return map[string]string{"a": "b"} }

func TestToPartitionDTOUnknownKind(t *testing.T) {
	d := ToPartitionDTO(namedOnly{name: "p1"})
	assert.Equal(t, PartitionTypeIdentity, d.Type)
	assert.Equal(t, "p1", d.Name)
	assert.Equal(t, map[string]string{"a": "b"}, d.Properties)
	assert.NoError(t, d.Validate())
}
