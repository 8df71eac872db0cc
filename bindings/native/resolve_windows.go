//go:build windows

package native

import "errors"

func lookupSymbol(name string) (uintptr, error) {
	return 0, errors.New("native: process-image symbol resolution is not supported on windows")
}
