package dto

import (
	"strconv"

	"github.com/mugiliam/hatchrelclient/pkg/rel"
)

// AddPartitionsRequest is the body of a POST to a table's partitions collection.
type AddPartitionsRequest struct {
	Partitions []PartitionDTO `json:"partitions"`
}

func NewAddPartitionsRequest(partitions ...rel.Partition) *AddPartitionsRequest {
	req := &AddPartitionsRequest{
		Partitions: make([]PartitionDTO, 0, len(partitions)),
	}
	for _, p := range partitions {
		req.Partitions = append(req.Partitions, ToPartitionDTO(p))
	}
	return req
}

// Validate fails when there is no partition to add or any partition is malformed.
func (r *AddPartitionsRequest) Validate() error {
	if len(r.Partitions) == 0 {
		return toError("invalid add partitions request", ValidationErrors{ErrEmptyList("partitions")})
	}
	var ves ValidationErrors
	for i := range r.Partitions {
		ves = append(ves, r.Partitions[i].validationErrors("partitions["+strconv.Itoa(i)+"]")...)
	}
	return toError("invalid add partitions request", ves)
}
