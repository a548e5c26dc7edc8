package raster

import "testing"

func TestNewRejectsShortBuffer(t *testing.T) {
	if _, err := New(make([]byte, 4), 4, 4, 4); err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}

func TestNewRejectsBadStride(t *testing.T) {
	if _, err := New(make([]byte, 16), 4, 4, 2); err == nil {
		t.Fatal("expected error for stride smaller than width")
	}
}

func TestAtRespectsStride(t *testing.T) {
	data := []byte{
		1, 2, 3, 0xff,
		4, 5, 6, 0xff,
	}
	r, err := New(data, 3, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.At(2, 1); got != 6 {
		t.Fatalf("At(2,1) = %d, want 6", got)
	}
}
