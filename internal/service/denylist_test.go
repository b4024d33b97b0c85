// internal/service/denylist_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantFilterHidden(t *testing.T) {
	filter := NewTenantFilter(
		[]string{"Digital Morph", "cc", "Test Company"},
		[]string{"falcon eye group"},
		[]string{"Falcon Eye Modern Investment"},
	)

	tests := []struct {
		name   string
		hidden bool
	}{
		{"Digital Morph", true},
		{"digital morph", true},
		{"  Digital Morph  ", true},
		{"CC", true},
		{"Falcon Eye Group", true},
		{"Falcon Eye Group LLC", true},
		{"the falcon eye group holdings", true},
		{"Falcon Eye Modern Investment", false},
		{"FALCON EYE MODERN INVESTMENT", false},
		{"Acme Trading", false},
		{"ccx", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.hidden, filter.Hidden(tt.name), "Hidden(%q)", tt.name)
	}
}

func TestTenantFilterPinned(t *testing.T) {
	filter := NewTenantFilter(nil, nil, []string{"Falcon Eye Modern Investment"})

	assert.True(t, filter.Pinned("falcon eye modern investment"))
	assert.True(t, filter.Pinned(" Falcon Eye Modern Investment "))
	assert.False(t, filter.Pinned("Falcon Eye Modern Investments Extra"))
	assert.False(t, filter.Pinned("Acme Trading"))
}

func TestTenantFilterEmptyLists(t *testing.T) {
	filter := NewTenantFilter(nil, nil, nil)

	assert.False(t, filter.Hidden("anything"))
	assert.False(t, filter.Pinned("anything"))
}
