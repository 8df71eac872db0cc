//go:build !windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func lookupSymbol(name string) (uintptr, error) {
	addr, err := purego.Dlsym(purego.RTLD_DEFAULT, name)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %s resolved to null", name)
	}
	return addr, nil
}
