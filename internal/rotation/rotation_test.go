package rotation

import (
	"errors"
	"testing"

	"blinkytree-go/errcode"
	"blinkytree-go/internal/storage"
	"blinkytree-go/types"
)

type fixedClock uint32

func (c fixedClock) NowMs() uint32 { return uint32(c) }

type failingStore struct{}

func (failingStore) ReadByte(uint16) (byte, error) { return 0, storage.ErrIO }
func (failingStore) WriteByte(uint16, byte) error  { return storage.ErrIO }

func TestRoundTrip(t *testing.T) {
	mem := storage.NewMemory(16)
	r := New(mem, 0, 5, types.RotationSequential, fixedClock(0))
	r.Init()
	for i := 0; i < 3; i++ {
		r.Advance()
	}
	if r.Current() != 3 {
		t.Fatalf("index = %d", r.Current())
	}
	again := New(mem, 0, 5, types.RotationSequential, fixedClock(0))
	again.Init()
	if again.Current() != 3 {
		t.Fatalf("persisted index = %d, want 3", again.Current())
	}
}

func TestOutOfRangeIsResetAndRewritten(t *testing.T) {
	mem := storage.NewMemory(16) // erased: 0xFF
	r := New(mem, 0, 3, types.RotationSequential, fixedClock(0))
	r.Init()
	if r.Current() != 0 {
		t.Fatalf("index = %d", r.Current())
	}
	if v, _ := mem.ReadByte(0); v != 0 {
		t.Fatalf("stored = %#x, want rewritten 0", v)
	}
	if mem.Writes() != 1 {
		t.Fatalf("writes = %d", mem.Writes())
	}
	_ = mem.WriteByte(0, 7)
	r.Init()
	if r.Current() != 0 {
		t.Fatal("stale index after catalog shrink")
	}
}

func TestSequentialWraps(t *testing.T) {
	mem := storage.NewMemory(4)
	_ = mem.WriteByte(0, 2)
	r := New(mem, 0, 3, types.RotationSequential, fixedClock(0))
	r.Init()
	if got := r.Advance(); got != 0 {
		t.Fatalf("(2+1)%%3 = %d", got)
	}
}

func TestRandomUsesClock(t *testing.T) {
	mem := storage.NewMemory(4)
	r := New(mem, 1, 7, types.RotationRandom, fixedClock(45))
	r.Init()
	if got := r.Advance(); got != 45%7 {
		t.Fatalf("random pick = %d", got)
	}
	if v, _ := mem.ReadByte(1); v != 45%7 {
		t.Fatal("pick not persisted")
	}
}

func TestUnchangedIndexNotRewritten(t *testing.T) {
	mem := storage.NewMemory(4)
	_ = mem.WriteByte(0, 0)
	r := New(mem, 0, 1, types.RotationSequential, fixedClock(0))
	r.Init()
	before := mem.Writes()
	r.Advance()
	r.Advance()
	if mem.Writes() != before {
		t.Fatalf("single-song rotation wrote %d times", mem.Writes()-before)
	}
}

func TestStorageFailureFallsBackToZero(t *testing.T) {
	r := New(failingStore{}, 0, 4, types.RotationSequential, fixedClock(0))
	r.Init()
	if r.Current() != 0 || r.Advance() != 1 {
		t.Fatal("rotation should keep working without storage")
	}
	if r.Failures() != 2 {
		t.Fatalf("failures = %d, want load and save", r.Failures())
	}
	err := r.LastErr()
	if errcode.Of(err) != errcode.StorageIO || !errors.Is(err, storage.ErrIO) {
		t.Fatalf("last error %v", err)
	}
}

func TestHealthyStoreReportsNoErrors(t *testing.T) {
	r := New(storage.NewMemory(4), 0, 3, types.RotationSequential, fixedClock(0))
	r.Init()
	r.Advance()
	if r.Failures() != 0 || r.LastErr() != nil {
		t.Fatalf("unexpected failure %v", r.LastErr())
	}
}

func TestEmptyRotation(t *testing.T) {
	mem := storage.NewMemory(4)
	r := New(mem, 0, 0, types.RotationSequential, fixedClock(0))
	r.Init()
	if r.Advance() != 0 || mem.Writes() != 0 {
		t.Fatal("empty rotation must not write")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("random") != types.RotationRandom || ParseMode("sequential") != types.RotationSequential {
		t.Fatal("ParseMode")
	}
}
