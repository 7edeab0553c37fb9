package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Senior Engineer", "senior-engineer"},
		{"punctuation run collapses", "Senior  Engineer (Go)", "senior-engineer-go"},
		{"leading and trailing junk", "  ++Staff SRE!! ", "staff-sre"},
		{"digits kept", "Engineer II / L5", "engineer-ii-l5"},
		{"already lowercase", "designer", "designer"},
		{"no usable characters", "!!!", "job"},
		{"empty", "", "job"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "senior-engineer", slugCandidate("senior-engineer", 1))
	assert.Equal(t, "senior-engineer-2", slugCandidate("senior-engineer", 2))
	assert.Equal(t, "senior-engineer-10", slugCandidate("senior-engineer", 10))
}
