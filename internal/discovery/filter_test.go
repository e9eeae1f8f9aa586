package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Match(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		names    []string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern matches all",
			names:    []string{"login", "logout", "checkout"},
			pattern:  "",
			expected: []string{"login", "logout", "checkout"},
		},
		{
			name:     "wildcard pattern matches prefix",
			names:    []string{"login", "logout", "checkout"},
			pattern:  "log*",
			expected: []string{"login", "logout"},
		},
		{
			name:     "wildcard pattern matches substring",
			names:    []string{"login", "replication-push", "replication-pull", "checkout"},
			pattern:  "*replication*",
			expected: []string{"replication-push", "replication-pull"},
		},
		{
			name:     "simple contains match",
			names:    []string{"login", "logout", "checkout"},
			pattern:  "out",
			expected: []string{"logout", "checkout"},
		},
		{
			name:     "question mark is a single character",
			names:    []string{"test1", "test12"},
			pattern:  "test?",
			expected: []string{"test1"},
		},
		{
			name:     "no matches",
			names:    []string{"login", "logout"},
			pattern:  "*missing*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var matched []string
			for _, name := range tt.names {
				if filter.Match(name, tt.pattern) {
					matched = append(matched, name)
				}
			}
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestFilter_Match_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("only wildcards match nothing but the glob", func(t *testing.T) {
		assert.True(t, filter.Match("anything", "*"))
		assert.False(t, filter.Match("anything", "**x"))
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		assert.True(t, filter.Match("sync-push-pull", "*push*pull"))
		assert.True(t, filter.Match("pull-then-push", "*push*pull*"))
	})
}
