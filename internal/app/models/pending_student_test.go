package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStudentCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^DER\d{4}[0-9A-F]{4}$`)

	for i := 0; i < 100; i++ {
		code := GenerateStudentCode()
		assert.Regexp(t, pattern, code)
		assert.Len(t, code, 11)
	}
}

func TestGenerateStudentCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateStudentCode()] = true
	}
	// Collisions among 50 draws from a 10^4 * 16^4 space are vanishingly rare.
	assert.Greater(t, len(seen), 45)
}
