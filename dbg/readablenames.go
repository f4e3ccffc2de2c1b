package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This generates random readable names. They are helpful for telling apart task
// invocations in interleaved log output, where pointer strings all look alike.
// Names aren't memoized on the object they label: callers keep the name
// themselves, so nothing here holds on to it.

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// NewName returns a fresh name such as "HappyOtter". Two calls may return the
// same name, so it is only fit for humans reading logs.
func NewName() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}
