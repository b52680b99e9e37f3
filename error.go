package dynring

import "fmt"

type constError string

// ErrCorrupt may be returned from [Ring.Verify].
const ErrCorrupt = constError("ring corrupted")

func (errStr constError) Error() string { return string(errStr) }

func corruptError(format string, args ...any) error {
	return fmt.Errorf(
		"%w: "+format,
		append([]any{ErrCorrupt}, args...)...)
}
