package namespace

import (
	"strconv"
	"strings"

	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
)

// TableLevels is the number of levels in a table namespace: metalake, catalog and schema.
const TableLevels = 3

// Namespace is an ordered, immutable list of levels.
type Namespace struct {
	levels []string
}

// Of builds a namespace from the given levels. Levels must be non-empty.
func Of(levels ...string) (Namespace, error) {
	for i, l := range levels {
		if l == "" {
			return Namespace{}, catalogerrors.ErrIllegalNamespace.Msg("namespace level " + strconv.Itoa(i) + " is empty")
		}
	}
	return Namespace{levels: append([]string(nil), levels...)}, nil
}

// OfTable builds a metalake.catalog.schema namespace.
func OfTable(metalake, catalog, schema string) (Namespace, error) {
	return Of(metalake, catalog, schema)
}

// MustOf is like Of but panics on an invalid level.
func MustOf(levels ...string) Namespace {
	ns, err := Of(levels...)
	if err != nil {
		panic(err)
	}
	return ns
}

func (n Namespace) Level(i int) string {
	return n.levels[i]
}

func (n Namespace) Levels() []string {
	return append([]string(nil), n.levels...)
}

func (n Namespace) Length() int {
	return len(n.levels)
}

func (n Namespace) IsEmpty() bool {
	return len(n.levels) == 0
}

func (n Namespace) String() string {
	return strings.Join(n.levels, ".")
}

// CheckTable returns an error unless the namespace has exactly TableLevels levels.
func CheckTable(n Namespace) error {
	if n.Length() != TableLevels {
		return catalogerrors.ErrIllegalNamespace.Msg("table namespace must have " + strconv.Itoa(TableLevels) +
			" levels, got " + strconv.Itoa(n.Length()) + " [" + n.String() + "]")
	}
	return nil
}
