package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary shapes into random readable names, which are much
// easier to tell apart in debug output and CLI listings than coordinates or
// pointers. Names are memoized for the life of the process and generated
// lazily, so the memo only grows when names are actually asked for.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same shape between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for obj. Pointers are keyed by identity,
// comparable values by value, and anything else (slices, structs holding
// them, or values holding a NaN, which never equal themselves) by its printed
// form.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	key := obj
	// A value holding a NaN is not equal to itself
	if !v.Comparable() || obj != obj {
		key = fmt.Sprintf("%T%v", obj, obj)
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
