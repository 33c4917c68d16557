package funccache

import (
	"fmt"
	"reflect"
	"runtime"
)

// Identity returns the package-qualified name of fn, for example
// "github.com/acme/feeds.FetchDocument". The name is stable across process
// restarts, which makes it suitable as a wrap identity. Closures come back
// as their enclosing function plus a "funcN" suffix; those names depend on
// declaration order within the enclosing function, so prefer an explicit
// identity string when wrapping closures. A non-function value yields a
// type-based placeholder.
func Identity(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() == reflect.Func && !v.IsNil() {
		if f := runtime.FuncForPC(v.Pointer()); f != nil {
			return f.Name()
		}
	}
	return fmt.Sprintf("%T", fn)
}
