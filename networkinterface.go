// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package netinfo

import (
	"net/netip"
	"strings"
)

// NetworkInterface describes one interface visible to the calling process,
// together with every address the OS reported for it at query time.
// The value is a fully owned copy; it stays valid indefinitely after the
// underlying OS structures are released.
type NetworkInterface struct {
	// Index is the OS-assigned interface index. The OS may reuse an index
	// after an interface is removed.
	Index uint32

	// Name is the interface name (e.g. "eth0", "en0"). Unique at a point
	// in time, not guaranteed stable across reboots.
	Name string

	// Addrs holds the interface addresses in native enumeration order.
	// May be empty.
	Addrs []Addr

	// MACAddr is the hardware address formatted "aa:bb:cc:dd:ee:ff".
	// Empty for interfaces without one, such as loopback.
	MACAddr string

	// Flags reflects the OS-reported interface state at the instant of
	// the call and is immediately stale thereafter.
	Flags Flags
}

// Flags is the OS-reported status bit set of an interface.
type Flags struct {
	Up        bool // administratively up
	Loopback  bool // loopback device
	Running   bool // resources allocated, operational
	Multicast bool // supports multicast
	Broadcast bool // supports broadcast
}

// String lists the set flags separated by "|", or "none".
func (f Flags) String() string {
	var parts []string
	if f.Up {
		parts = append(parts, "up")
	}
	if f.Loopback {
		parts = append(parts, "loopback")
	}
	if f.Running {
		parts = append(parts, "running")
	}
	if f.Multicast {
		parts = append(parts, "multicast")
	}
	if f.Broadcast {
		parts = append(parts, "broadcast")
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Addr is a single interface address: either an IfAddrV4 or an IfAddrV6.
// Callers type-switch on the concrete type.
type Addr interface {
	sealedAddr()
}

// IfAddrV4 is an AF_INET interface address.
type IfAddrV4 struct {
	// IP is the 4-byte interface address.
	IP netip.Addr

	// Netmask is the 4-byte mask, or the zero Addr when the OS did not
	// report one.
	Netmask netip.Addr

	// Broadcast is the 4-byte broadcast address. Only set when the
	// interface is broadcast-capable and a broadcast address is known.
	Broadcast netip.Addr
}

func (IfAddrV4) sealedAddr() {}

// IfAddrV6 is an AF_INET6 interface address. IPv6 defines no broadcast.
type IfAddrV6 struct {
	// IP is the 16-byte interface address.
	IP netip.Addr

	// Netmask is the 16-byte mask, or the zero Addr when the OS did not
	// report one.
	Netmask netip.Addr
}

func (IfAddrV6) sealedAddr() {}
