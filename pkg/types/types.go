package types

// Nullable is implemented by wire values that distinguish an absent value from a zero value.
type Nullable interface {
	IsNil() bool
}
