package eval

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the runtime universe: String, Number, Boolean, Nil, or
// Callable. Represented as interface{} over the concrete Go types below.
// There is no integer type — numbers are always float64 — and no array
// type.
type Value interface{}

// Nil is the single Value representing the language's nil literal. A Go
// nil interface{} is never used directly as a Value so that an
// uninitialized Value variable is distinguishable from an explicit nil.
type Nil struct{}

// IsTruthy projects a Value onto Boolean for conditionals and logical
// operators: only Nil and Boolean(false) are falsy; every other value,
// including Number(0) and the empty string, is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case bool:
		return vv
	default:
		return true
	}
}

// Equal implements the language's equality rule: a Callable is never equal
// to anything but itself (by identity), and values of different Go-level
// kinds are unequal. Nil == Nil is true. Number equality follows IEEE-754
// (NaN != NaN, inherited from Go's == on float64).
func Equal(a, b Value) bool {
	if _, aNil := a.(Nil); aNil {
		_, bNil := b.(Nil)
		return bNil
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	default:
		return false
	}
}

// Display formats a Value the way `print` and the REPL show it to a user.
func Display(v Value) string {
	switch vv := v.(type) {
	case Nil:
		return "nil"
	case bool:
		if vv {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(vv)
	case string:
		return vv
	case *Function:
		if vv.IsNative {
			return "<native function>"
		}
		return fmt.Sprintf("<fn %s>", vv.Name)
	default:
		return fmt.Sprintf("%v", vv)
	}
}

// formatNumber displays integers without a decimal point and falls back to
// the shortest round-trip representation otherwise.
func formatNumber(n float64) string {
	if !math.IsInf(n, 0) && !math.IsNaN(n) && n == math.Trunc(n) &&
		n >= -maxSafeInt && n <= maxSafeInt {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// maxSafeInt is 2^53, the magnitude up to which every integer is exactly
// representable as a float64; integral values beyond it are printed in
// floating-point form instead of as integers.
const maxSafeInt = 1 << 53
