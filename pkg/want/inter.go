package want

// Wanted reports the binary outcome of a wrapper value. Implementations must
// be total over all values of the type: no failure, no blocking, no side
// effects beyond reading the value.
type Wanted interface {
	// IsWanted returns true for the wanted state (success, presence)
	IsWanted() bool
}

// Provider exposes the payload a wrapper carries
type Provider[T any] interface {
	// Raw returns the contained value without checking the outcome
	Raw() T
}

// Value is the contract the unwrap helpers operate on: a classifiable
// wrapper that can surrender its payload. The helpers consult Raw only
// after a positive classification.
type Value[T any] interface {
	Wanted
	Provider[T]
}
