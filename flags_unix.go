// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package netinfo

import "golang.org/x/sys/unix"

// flagsFromBits maps the raw IFF_* bit set onto Flags.
func flagsFromBits(bits uint32) Flags {
	return Flags{
		Up:        bits&unix.IFF_UP != 0,
		Loopback:  bits&unix.IFF_LOOPBACK != 0,
		Running:   bits&unix.IFF_RUNNING != 0,
		Multicast: bits&unix.IFF_MULTICAST != 0,
		Broadcast: bits&unix.IFF_BROADCAST != 0,
	}
}
