package rel

import "github.com/mugiliam/hatchrelclient/pkg/types"

// Partition is a named, addressable subdivision of a table. The name is unique
// within its table.
type Partition interface {
	Name() string
	Properties() map[string]string
}

// Literal is a typed constant value as the catalog service transmits it.
type Literal struct {
	DataType string
	Value    types.NullableString
}

// StringLiteral returns a literal of the given data type holding value.
func StringLiteral(dataType, value string) Literal {
	return Literal{DataType: dataType, Value: types.NewNullableString(value)}
}

// NullLiteral returns the null literal.
func NullLiteral() Literal {
	return Literal{DataType: "null"}
}

// IdentityPartition holds rows whose partition columns equal Values.
// FieldNames[i] is the dotted path of the column Values[i] applies to.
type IdentityPartition struct {
	PartitionName string
	FieldNames    [][]string
	Values        []Literal
	Props         map[string]string
}

func (p *IdentityPartition) Name() string { return p.PartitionName }

func (p *IdentityPartition) Properties() map[string]string { return p.Props }

// RangePartition holds rows in [Lower, Upper).
type RangePartition struct {
	PartitionName string
	Upper         Literal
	Lower         Literal
	Props         map[string]string
}

func (p *RangePartition) Name() string { return p.PartitionName }

func (p *RangePartition) Properties() map[string]string { return p.Props }

// ListPartition holds rows whose partition columns match one of Lists.
type ListPartition struct {
	PartitionName string
	Lists         [][]Literal
	Props         map[string]string
}

func (p *ListPartition) Name() string { return p.PartitionName }

func (p *ListPartition) Properties() map[string]string { return p.Props }

// Identity builds an identity partition, e.g. Identity("dt=2024-01-01",
// [][]string{{"dt"}}, []Literal{StringLiteral("date", "2024-01-01")}).
func Identity(name string, fieldNames [][]string, values []Literal, props map[string]string) *IdentityPartition {
	return &IdentityPartition{
		PartitionName: name,
		FieldNames:    fieldNames,
		Values:        values,
		Props:         props,
	}
}

func Range(name string, upper, lower Literal, props map[string]string) *RangePartition {
	return &RangePartition{
		PartitionName: name,
		Upper:         upper,
		Lower:         lower,
		Props:         props,
	}
}

func List(name string, lists [][]Literal, props map[string]string) *ListPartition {
	return &ListPartition{
		PartitionName: name,
		Lists:         lists,
		Props:         props,
	}
}
