package storage_test

import (
	"testing"

	"blinkytree-go/errcode"
	"blinkytree-go/internal/hal/platform"
	"blinkytree-go/internal/storage"
)

func TestAT24RoundTrip(t *testing.T) {
	bus := platform.NewHostEEPROM(0x50, 4096)
	a := storage.NewAT24(bus, 0x50, 4096)

	if v, err := a.ReadByte(0); err != nil || v != storage.Erased {
		t.Fatalf("fresh read got %#x, %v", v, err)
	}
	if err := a.WriteByte(0, 5); err != nil {
		t.Fatal(err)
	}
	if bus.Peek(0) != 5 {
		t.Fatalf("cell = %d", bus.Peek(0))
	}
	if v, err := a.ReadByte(0); err != nil || v != 5 {
		t.Fatalf("read back %d, %v", v, err)
	}
}

func TestAT24WrongAddressIsStorageIO(t *testing.T) {
	bus := platform.NewHostEEPROM(0x50, 4096)
	a := storage.NewAT24(bus, 0x57, 4096)
	if _, err := a.ReadByte(0); errcode.Of(err) != errcode.StorageIO {
		t.Fatalf("want storage_io, got %v", err)
	}
}
