package analyses

import (
	"strconv"
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("resume text", "job description")
	b := Fingerprint("resume text", "job description")
	if a != b {
		t.Fatalf("same input produced different keys: %q vs %q", a, b)
	}
}

func TestFingerprintSensitiveToBothInputs(t *testing.T) {
	base := Fingerprint("resume text", "job description")
	if got := Fingerprint("resume text!", "job description"); got == base {
		t.Fatalf("resume change did not change the key")
	}
	if got := Fingerprint("resume text", "job description!"); got == base {
		t.Fatalf("job description change did not change the key")
	}
}

func TestFingerprintNonNegative(t *testing.T) {
	inputs := []struct{ resume, job string }{
		{"", ""},
		{"short", ""},
		{"a resume long enough to wrap the 32-bit accumulator several times over, with plenty of text to push the hash through multiple overflows along the way", "and a job description that does the same"},
		{"éèê unicode content 你好", "café"},
	}
	for _, in := range inputs {
		key := Fingerprint(in.resume, in.job)
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			t.Fatalf("key %q is not numeric: %v", key, err)
		}
		if n < 0 {
			t.Fatalf("key %q is negative", key)
		}
	}
}

func TestContentHashEmptyIsZero(t *testing.T) {
	if got := contentHash(""); got != 0 {
		t.Fatalf("expected 0 for empty content, got %d", got)
	}
}
