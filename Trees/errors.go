package Trees

import "fmt"

// EmptyTreeError is returned by operations that need at least one key.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return e.Op + ": tree is empty"
}

// InvalidArgumentError is returned when an argument is outside what the
// current tree admits, such as a rank beyond Size or a key that isn't present.
type InvalidArgumentError struct {
	Op     string
	Arg    any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s(%v): %s", e.Op, e.Arg, e.Reason)
}

// InvalidSliceError is the panic value of Build when the slice isn't strictly ascending.
type InvalidSliceError[K Number] struct {
	Index      int
	Prev, Next K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %v then %v", e.Index, e.Prev, e.Next)
}
