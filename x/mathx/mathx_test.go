package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Fatal("clamp failed")
	}
	if Clamp(5, 10, 0) != 5 || Clamp(20, 10, 0) != 10 {
		t.Fatal("swapped bounds not handled")
	}
}

func TestAbsDiff(t *testing.T) {
	if AbsDiff(uint16(3), 10) != 7 || AbsDiff(uint16(10), 3) != 7 {
		t.Fatal("AbsDiff failed")
	}
}

func TestScaleU16(t *testing.T) {
	cases := []struct {
		v        uint16
		num, den uint32
		want     uint16
	}{
		{500, 100, 100, 500},
		{500, 100, 200, 250},
		{500, 100, 25, 2000},
		{50, 100, 10000, 0},
		{60000, 100, 25, 0xFFFF},
		{7, 1, 0, 7},
	}
	for _, c := range cases {
		if got := ScaleU16(c.v, c.num, c.den); got != c.want {
			t.Fatalf("ScaleU16(%d,%d,%d)=%d want %d", c.v, c.num, c.den, got, c.want)
		}
	}
}

func TestMapU16(t *testing.T) {
	if MapU16(50, 50, 560, 5, 255) != 5 {
		t.Fatal("lower edge")
	}
	if MapU16(560, 50, 560, 5, 255) != 255 {
		t.Fatal("upper edge")
	}
	if MapU16(900, 50, 560, 5, 255) != 255 {
		t.Fatal("clamp above")
	}
	if MapU16(305, 50, 560, 5, 255) != 130 {
		t.Fatalf("midpoint = %d", MapU16(305, 50, 560, 5, 255))
	}
}

func TestTriangle(t *testing.T) {
	want := []uint8{0, 1, 2, 3, 3, 2, 1, 0}
	for i := uint8(0); i < 8; i++ {
		if got := Triangle(i, 7); got != want[i] {
			t.Fatalf("Triangle(%d,7)=%d want %d", i, got, want[i])
		}
	}
	if Triangle(70, 0x7F) != 57 {
		t.Fatalf("Triangle(70,127)=%d", Triangle(70, 0x7F))
	}
}
