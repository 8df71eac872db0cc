package wasm

import (
	"context"
	"testing"
)

func TestInstantiateRejectsInvalidModule(t *testing.T) {
	if _, err := Instantiate(context.Background(), []byte("not wasm")); err == nil {
		t.Fatal("invalid module accepted")
	}
}

func TestInstantiateRejectsModuleWithoutAllocator(t *testing.T) {
	// Smallest valid module: magic + version, no exports at all.
	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if _, err := Instantiate(context.Background(), empty); err == nil {
		t.Fatal("module without malloc/free accepted")
	}
}
