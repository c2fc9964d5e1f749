// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in non production settings.
package assert

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = false

// Assert runs the provided test and throws a panic with the given message
// if the test evaluates to false. Unfortunately GO still evaluates the
// arguments to this call even when DEBUG is false, so it is necessary to
// also wrap call sites with an "if assert.DEBUG {}" guard to really avoid
// any run time impact. The GO compiler will then eliminate the whole
// statement since DEBUG is a const set to false.
//
// Example:
//
//	if assert.DEBUG {
//		assert.Assert(value > 0, "value must be positive, was %d", value)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
