package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Allowed(t *testing.T) {
	gate := NewGate([]string{"100", "200", "300"})

	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{name: "no roles", roles: nil, want: false},
		{name: "disjoint", roles: []string{"1", "2", "3", "4"}, want: false},
		{name: "single overlapping role", roles: []string{"200"}, want: true},
		{name: "overlap among many", roles: []string{"1", "2", "3", "300", "5", "6"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Allowed(tt.roles))
		})
	}
}

func TestGate_EmptyAllowListDeniesEveryone(t *testing.T) {
	gate := NewGate(nil)
	assert.False(t, gate.Allowed([]string{"100"}))
}

func TestGate_TrimsAllowList(t *testing.T) {
	gate := NewGate([]string{"10", " 11", "", "  "})

	assert.True(t, gate.Allowed([]string{"11"}))
	assert.False(t, gate.Allowed([]string{""}))
}
