package dto

import (
	"encoding/json"
	"testing"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func TestAddPartitionsRequestValidate(t *testing.T) {
	req := NewAddPartitionsRequest()
	err := req.Validate()
	assert.ErrorIs(t, err, catalogerrors.ErrValidation)
	assert.Contains(t, err.Error(), "partitions")

	req = NewAddPartitionsRequest(rel.Identity("", nil, nil, nil))
	err = req.Validate()
	assert.ErrorIs(t, err, catalogerrors.ErrValidation)
	var ves ValidationErrors
	require.ErrorAs(t, err, &ves)
	assert.Equal(t, "partitions[0].name", ves[0].Field)

	req = NewAddPartitionsRequest(rel.Identity("dt=2024-01-01", [][]string{{"dt"}},
		[]rel.Literal{rel.StringLiteral("date", "2024-01-01")}, nil))
	assert.NoError(t, req.Validate())

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `
{
    "partitions": [{
        "type": "identity",
        "name": "dt=2024-01-01",
        "fieldNames": [["dt"]],
        "values": [{"type": "literal", "dataType": "date", "value": "2024-01-01"}]
    }]
}`, string(b))
}

const partitionListJSON = `
{
    "code": 0,
    "partitions": [{
        "type": "identity",
        "name": "dt=2024-01-01",
        "fieldNames": [["dt"]],
        "values": [{"type": "literal", "dataType": "date", "value": "2024-01-01"}]
    }]
}`

func TestPartitionListResponseValidateSingle(t *testing.T) {
	var resp PartitionListResponse
	require.NoError(t, json.Unmarshal([]byte(partitionListJSON), &resp))
	assert.NoError(t, resp.ValidateSingle())

	// two partitions
	two, err := sjson.SetRaw(partitionListJSON, "partitions.-1", `{"type":"range","name":"p2"}`)
	require.NoError(t, err)
	resp = PartitionListResponse{}
	require.NoError(t, json.Unmarshal([]byte(two), &resp))
	assert.NoError(t, resp.Validate())
	assert.ErrorIs(t, resp.ValidateSingle(), catalogerrors.ErrValidation)

	// none
	none, err := sjson.SetRaw(partitionListJSON, "partitions", `[]`)
	require.NoError(t, err)
	resp = PartitionListResponse{}
	require.NoError(t, json.Unmarshal([]byte(none), &resp))
	assert.ErrorIs(t, resp.ValidateSingle(), catalogerrors.ErrValidation)

	// malformed
	malformed, err := sjson.Delete(partitionListJSON, "partitions.0.name")
	require.NoError(t, err)
	resp = PartitionListResponse{}
	require.NoError(t, json.Unmarshal([]byte(malformed), &resp))
	assert.ErrorIs(t, resp.ValidateSingle(), catalogerrors.ErrValidation)

	// error code
	failed, err := sjson.Set(partitionListJSON, "code", CodeInternalError)
	require.NoError(t, err)
	resp = PartitionListResponse{}
	require.NoError(t, json.Unmarshal([]byte(failed), &resp))
	assert.ErrorIs(t, resp.ValidateSingle(), catalogerrors.ErrValidation)
}

func TestPartitionResponseValidate(t *testing.T) {
	var resp PartitionResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code": 0}`), &resp))
	assert.ErrorIs(t, resp.Validate(), catalogerrors.ErrValidation)

	require.NoError(t, json.Unmarshal([]byte(`{"code": 0, "partition": {"type": "list", "name": "p_eu", "lists": []}}`), &resp))
	assert.NoError(t, resp.Validate())
	assert.Equal(t, "p_eu", resp.Partition.ToPartition().Name())
}

func TestPartitionNameListResponse(t *testing.T) {
	var resp PartitionNameListResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code": 0}`), &resp))
	assert.NoError(t, resp.Validate())
	assert.NotNil(t, resp.PartitionNames())
	assert.Empty(t, resp.PartitionNames())

	require.NoError(t, json.Unmarshal([]byte(`{"code": 0, "names": ["p1", ""]}`), &resp))
	assert.ErrorIs(t, resp.Validate(), catalogerrors.ErrValidation)

	require.NoError(t, json.Unmarshal([]byte(`{"code": 0, "names": ["p1", "p2"]}`), &resp))
	assert.NoError(t, resp.Validate())
	assert.Equal(t, []string{"p1", "p2"}, resp.PartitionNames())
}

func TestDropResponse(t *testing.T) {
	var resp DropResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code": 0, "dropped": true}`), &resp))
	assert.NoError(t, resp.Validate())
	assert.True(t, resp.Dropped)
}

func TestErrorResponse(t *testing.T) {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code": 1003, "type": "NoSuchPartitionException", "message": "partition p1 does not exist"}`), &resp))
	assert.Equal(t, CodeNotFound, resp.Code)
	assert.Equal(t, "NoSuchPartitionException: partition p1 does not exist", resp.Error())
}
