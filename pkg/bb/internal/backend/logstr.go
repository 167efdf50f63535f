//go:build cgo && !windows && bbnative

package backend

// #include <stdlib.h>
import "C"

import "unsafe"

// logstr is the logging hook the native engine links against.
//
//export logstr
func logstr(msg *C.char) {
	forwardLog(ReadCString(unsafe.Pointer(msg)))
}
