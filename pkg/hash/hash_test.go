package hash

import (
	"testing"
)

// ===========================================================================
// Sum Tests
// ===========================================================================

func TestSum64_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox")

	if Sum64(data) != Sum64(data) {
		t.Error("Sum64 should return the same digest for the same input")
	}
}

func TestSum64_DiffersByContent(t *testing.T) {
	if Sum64([]byte("alpha")) == Sum64([]byte("beta")) {
		t.Error("Sum64 should return different digests for different inputs")
	}
}

func TestSum64String_MatchesSum64(t *testing.T) {
	s := "payload-0123456789"

	if Sum64String(s) != Sum64([]byte(s)) {
		t.Error("Sum64String should match Sum64 over the same bytes")
	}
}

// ===========================================================================
// Digest Tests
// ===========================================================================

func TestDigest_StreamingMatchesOneShot(t *testing.T) {
	d := NewDigest()
	d.WriteString("hello, ")
	d.WriteString("world")

	if got, want := d.Sum64(), Sum64String("hello, world"); got != want {
		t.Errorf("streaming digest = %d, want %d", got, want)
	}
}

func TestDigest_WriteUint64(t *testing.T) {
	a := NewDigest()
	a.WriteUint64(42)

	b := NewDigest()
	b.WriteUint64(43)

	if a.Sum64() == b.Sum64() {
		t.Error("digests of different values should differ")
	}
}

func TestDigest_Reset(t *testing.T) {
	d := NewDigest()
	d.WriteString("stale")
	d.Reset()
	d.WriteString("fresh")

	if got, want := d.Sum64(), Sum64String("fresh"); got != want {
		t.Errorf("digest after Reset = %d, want %d", got, want)
	}
}
