// internal/service/denylist.go
package service

import "strings"

// TenantFilter hides known placeholder/test tenants from user-facing results.
// Matching is case-insensitive. An allow-list entry beats any deny rule, which
// covers legitimate tenants whose names overlap a denied substring.
type TenantFilter struct {
	denyExact      map[string]struct{}
	denySubstrings []string
	allowExact     map[string]struct{}
}

func NewTenantFilter(denyExact, denySubstrings, allowExact []string) *TenantFilter {
	f := &TenantFilter{
		denyExact:  make(map[string]struct{}, len(denyExact)),
		allowExact: make(map[string]struct{}, len(allowExact)),
	}
	for _, name := range denyExact {
		f.denyExact[normalizeName(name)] = struct{}{}
	}
	for _, name := range denySubstrings {
		f.denySubstrings = append(f.denySubstrings, normalizeName(name))
	}
	for _, name := range allowExact {
		f.allowExact[normalizeName(name)] = struct{}{}
	}
	return f
}

// Hidden reports whether a tenant with this name must be dropped from results.
func (f *TenantFilter) Hidden(name string) bool {
	n := normalizeName(name)
	if _, ok := f.allowExact[n]; ok {
		return false
	}
	if _, ok := f.denyExact[n]; ok {
		return true
	}
	for _, sub := range f.denySubstrings {
		if strings.Contains(n, sub) {
			return true
		}
	}
	return false
}

// Pinned reports whether this name is explicitly allow-listed. Pinned
// employer parties always resolve during the direct employer pass, with the
// owner role, regardless of the usual association checks.
func (f *TenantFilter) Pinned(name string) bool {
	_, ok := f.allowExact[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
