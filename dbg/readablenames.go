package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Assigns memorable names to arbitrary values on demand, so that output
// talking about several anonymous shapes stays readable. Names are memoized
// per value but generated lazily and nondeterministically, as a reminder that
// the same name never means the same thing between runs.

var memo = map[interface{}]string{}

func init() {
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj within this run. Nil values,
// including typed nil pointers, all share the name "Ø".
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = name
	return name
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
