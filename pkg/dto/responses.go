package dto

import (
	"strconv"
)

// Response codes sent by the catalog service in the "code" attribute.
const (
	CodeOK                   = 0
	CodeRestError            = 1000
	CodeIllegalArguments     = 1001
	CodeInternalError        = 1002
	CodeNotFound             = 1003
	CodeAlreadyExists        = 1004
	CodeNonEmpty             = 1005
	CodeUnsupportedOperation = 1006
)

type BaseResponse struct {
	Code int `json:"code"`
}

func (r BaseResponse) validationErrors() ValidationErrors {
	if r.Code != CodeOK {
		return ValidationErrors{ErrInvalidResponseCode("code", r.Code)}
	}
	return nil
}

// PartitionNameListResponse is the lightweight listing of a table's partitions.
type PartitionNameListResponse struct {
	BaseResponse
	Names []string `json:"names"`
}

func (r *PartitionNameListResponse) Validate() error {
	ves := r.validationErrors()
	for i, n := range r.Names {
		if n == "" {
			ves = append(ves, ErrMissingRequiredAttribute("names["+strconv.Itoa(i)+"]"))
		}
	}
	return toError("invalid partition name list response", ves)
}

// PartitionNames never returns nil.
func (r *PartitionNameListResponse) PartitionNames() []string {
	if r.Names == nil {
		return []string{}
	}
	return r.Names
}

// PartitionListResponse carries full partition records. It answers detailed
// listings and add requests.
type PartitionListResponse struct {
	BaseResponse
	Partitions []PartitionDTO `json:"partitions"`
}

func (r *PartitionListResponse) Validate() error {
	ves := r.validationErrors()
	for i := range r.Partitions {
		ves = append(ves, r.Partitions[i].validationErrors("partitions["+strconv.Itoa(i)+"]")...)
	}
	return toError("invalid partition list response", ves)
}

// ValidateSingle is Validate plus the requirement that exactly one partition is present.
func (r *PartitionListResponse) ValidateSingle() error {
	if len(r.Partitions) != 1 {
		ves := append(r.validationErrors(), ValidationError{
			Field:  "partitions",
			Value:  len(r.Partitions),
			ErrStr: "expected exactly one partition, got " + strconv.Itoa(len(r.Partitions)),
		})
		return toError("invalid partition list response", ves)
	}
	return r.Validate()
}

// PartitionResponse wraps a single partition.
type PartitionResponse struct {
	BaseResponse
	Partition *PartitionDTO `json:"partition"`
}

func (r *PartitionResponse) Validate() error {
	ves := r.validationErrors()
	if r.Partition == nil {
		ves = append(ves, ErrMissingRequiredAttribute("partition"))
	} else {
		ves = append(ves, r.Partition.validationErrors("partition")...)
	}
	return toError("invalid partition response", ves)
}

// DropResponse reports whether a drop removed anything.
type DropResponse struct {
	BaseResponse
	Dropped bool `json:"dropped"`
}

func (r *DropResponse) Validate() error {
	return toError("invalid drop response", r.validationErrors())
}

// TableResponse wraps a single table.
type TableResponse struct {
	BaseResponse
	Table *TableDTO `json:"table"`
}

func (r *TableResponse) Validate() error {
	ves := r.validationErrors()
	if r.Table == nil {
		ves = append(ves, ErrMissingRequiredAttribute("table"))
	} else {
		ves = append(ves, r.Table.validationErrors("table")...)
	}
	return toError("invalid table response", ves)
}

// ErrorResponse is the payload of every non-success reply.
type ErrorResponse struct {
	Code    int      `json:"code"`
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Stack   []string `json:"stack,omitempty"`
}

func (r *ErrorResponse) Error() string {
	if r.Type == "" {
		return r.Message
	}
	return r.Type + ": " + r.Message
}
