package dto

import (
	"strconv"

	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/mugiliam/hatchrelclient/pkg/types"
)

type PartitionType string

const (
	PartitionTypeIdentity PartitionType = "identity"
	PartitionTypeRange    PartitionType = "range"
	PartitionTypeList     PartitionType = "list"
)

const literalType = "literal"

type LiteralDTO struct {
	Type     string               `json:"type" validate:"required,literalTypeValidator"`
	DataType string               `json:"dataType" validate:"required"`
	Value    types.NullableString `json:"value"`
}

// PartitionDTO is the wire form of a partition. Which of the kind-specific
// attributes may be set depends on Type.
type PartitionDTO struct {
	Type       PartitionType     `json:"type" validate:"required,partitionTypeValidator"`
	Name       string            `json:"name" validate:"required"`
	FieldNames [][]string        `json:"fieldNames,omitempty"`
	Values     []LiteralDTO      `json:"values,omitempty" validate:"dive"`
	Upper      *LiteralDTO       `json:"upper,omitempty"`
	Lower      *LiteralDTO       `json:"lower,omitempty"`
	Lists      [][]LiteralDTO    `json:"lists,omitempty" validate:"dive,dive"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Validate checks the partition structure. The returned error matches
// catalogerrors.ErrValidation.
func (p *PartitionDTO) Validate() error {
	return toError("invalid partition", p.validationErrors(""))
}

func (p *PartitionDTO) validationErrors(prefix string) ValidationErrors {
	ves := structErrors(p, prefix)
	if ves != nil {
		return ves
	}
	attr := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	switch p.Type {
	case PartitionTypeIdentity:
		if len(p.FieldNames) != len(p.Values) {
			ves = append(ves, ErrMismatchedFieldValues(attr("fieldNames"), len(p.FieldNames), len(p.Values)))
		}
		for i, fn := range p.FieldNames {
			if len(fn) == 0 {
				ves = append(ves, ErrEmptyList(attr("fieldNames["+strconv.Itoa(i)+"]")))
			}
		}
		if p.Upper != nil || p.Lower != nil {
			ves = append(ves, ErrUnexpectedAttribute(attr("upper"), string(p.Type)))
		}
		if len(p.Lists) > 0 {
			ves = append(ves, ErrUnexpectedAttribute(attr("lists"), string(p.Type)))
		}
	case PartitionTypeRange:
		if len(p.FieldNames) > 0 || len(p.Values) > 0 {
			ves = append(ves, ErrUnexpectedAttribute(attr("values"), string(p.Type)))
		}
		if len(p.Lists) > 0 {
			ves = append(ves, ErrUnexpectedAttribute(attr("lists"), string(p.Type)))
		}
	case PartitionTypeList:
		if len(p.FieldNames) > 0 || len(p.Values) > 0 {
			ves = append(ves, ErrUnexpectedAttribute(attr("values"), string(p.Type)))
		}
		if p.Upper != nil || p.Lower != nil {
			ves = append(ves, ErrUnexpectedAttribute(attr("upper"), string(p.Type)))
		}
	}
	return ves
}

// ToPartitionDTO converts a domain partition to its wire form. Partitions of
// an unknown kind are sent as identity partitions without values.
func ToPartitionDTO(p rel.Partition) PartitionDTO {
	switch v := p.(type) {
	case *rel.IdentityPartition:
		return PartitionDTO{
			Type:       PartitionTypeIdentity,
			Name:       v.PartitionName,
			FieldNames: v.FieldNames,
			Values:     toLiteralDTOs(v.Values),
			Properties: v.Props,
		}
	case *rel.RangePartition:
		upper := toLiteralDTO(v.Upper)
		lower := toLiteralDTO(v.Lower)
		return PartitionDTO{
			Type:       PartitionTypeRange,
			Name:       v.PartitionName,
			Upper:      &upper,
			Lower:      &lower,
			Properties: v.Props,
		}
	case *rel.ListPartition:
		lists := make([][]LiteralDTO, 0, len(v.Lists))
		for _, l := range v.Lists {
			lists = append(lists, toLiteralDTOs(l))
		}
		return PartitionDTO{
			Type:       PartitionTypeList,
			Name:       v.PartitionName,
			Lists:      lists,
			Properties: v.Props,
		}
	}
	return PartitionDTO{
		Type:       PartitionTypeIdentity,
		Name:       p.Name(),
		Properties: p.Properties(),
	}
}

// ToPartition converts the wire form to a domain partition.
func (p *PartitionDTO) ToPartition() rel.Partition {
	switch p.Type {
	case PartitionTypeRange:
		return rel.Range(p.Name, fromLiteralPtr(p.Upper), fromLiteralPtr(p.Lower), p.Properties)
	case PartitionTypeList:
		lists := make([][]rel.Literal, 0, len(p.Lists))
		for _, l := range p.Lists {
			lists = append(lists, fromLiteralDTOs(l))
		}
		return rel.List(p.Name, lists, p.Properties)
	}
	return rel.Identity(p.Name, p.FieldNames, fromLiteralDTOs(p.Values), p.Properties)
}

func toLiteralDTO(l rel.Literal) LiteralDTO {
	return LiteralDTO{
		Type:     literalType,
		DataType: l.DataType,
		Value:    l.Value,
	}
}

func toLiteralDTOs(ls []rel.Literal) []LiteralDTO {
	if ls == nil {
		return nil
	}
	out := make([]LiteralDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLiteralDTO(l))
	}
	return out
}

func fromLiteralPtr(l *LiteralDTO) rel.Literal {
	if l == nil {
		return rel.NullLiteral()
	}
	return rel.Literal{DataType: l.DataType, Value: l.Value}
}

func fromLiteralDTOs(ls []LiteralDTO) []rel.Literal {
	if ls == nil {
		return nil
	}
	out := make([]rel.Literal, 0, len(ls))
	for _, l := range ls {
		out = append(out, rel.Literal{DataType: l.DataType, Value: l.Value})
	}
	return out
}
