package analyses

import "strconv"

// Fingerprint derives a deterministic, order-sensitive key from the resume text
// and job description. It is a plain 31-multiplier accumulator truncated to 32
// bits, not a collision-resistant hash; identical content always yields the
// identical key.
func Fingerprint(resumeText, jobDescription string) string {
	return strconv.FormatInt(int64(contentHash(resumeText+jobDescription)), 10)
}

func contentHash(content string) int32 {
	var h int32
	for _, r := range content {
		h = h*31 + int32(r)
	}
	if h < 0 {
		if h == -1<<31 {
			return 1 << 30
		}
		return -h
	}
	return h
}
