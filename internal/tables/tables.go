// Package tables implements the static lookup tables consulted by packet
// programs: the MAC redirect table and the device map. Both are written once
// at load time and read concurrently by every worker, so reads take an RLock.
package tables

import (
	"sync"

	"firestige.xyz/strix/internal/core"
)

// RedirectTable maps a source MAC to the destination MAC that redirected
// frames should carry.
type RedirectTable struct {
	mu sync.RWMutex
	m  map[core.MAC]core.MAC
}

// NewRedirectTable returns an empty redirect table.
func NewRedirectTable() *RedirectTable {
	return &RedirectTable{m: make(map[core.MAC]core.MAC)}
}

// Set installs or replaces a mapping.
func (t *RedirectTable) Set(src, dst core.MAC) {
	t.mu.Lock()
	t.m[src] = dst
	t.mu.Unlock()
}

// Lookup returns the destination MAC for src, if any.
func (t *RedirectTable) Lookup(src core.MAC) (core.MAC, bool) {
	t.mu.RLock()
	dst, ok := t.m[src]
	t.mu.RUnlock()
	return dst, ok
}

// Len returns the number of installed mappings.
func (t *RedirectTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// DeviceMap maps a logical egress index, as carried by a Redirect verdict,
// to a physical interface index.
type DeviceMap struct {
	mu sync.RWMutex
	m  map[int]int
}

// NewDeviceMap returns an empty device map.
func NewDeviceMap() *DeviceMap {
	return &DeviceMap{m: make(map[int]int)}
}

// Set installs or replaces an entry.
func (t *DeviceMap) Set(logical, ifindex int) {
	t.mu.Lock()
	t.m[logical] = ifindex
	t.mu.Unlock()
}

// Lookup returns the physical interface index behind a logical one.
func (t *DeviceMap) Lookup(logical int) (int, bool) {
	t.mu.RLock()
	ifindex, ok := t.m[logical]
	t.mu.RUnlock()
	return ifindex, ok
}

// Len returns the number of installed entries.
func (t *DeviceMap) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}
