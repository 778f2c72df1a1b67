package json

import (
	"runtime"
	"unsafe"

	"github.com/goccy/go-reflect"
)

// FunctionPath reports the fully qualified name of fn. Trace consumers
// use it to label the callback a parser was built with.
func FunctionPath(fn any) string {
	ptr := reflect.ValueOf(fn).Pointer()
	funcInfo := runtime.FuncForPC(ptr)
	if funcInfo != nil {
		return funcInfo.Name()
	}
	return ""
}

// b2s converts []byte to string without extra copy.
// (Be sure that the underlying slice is not modified.)
func b2s(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
