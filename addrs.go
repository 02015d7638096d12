// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package netinfo

import (
	"net"
	"net/netip"
)

// addrFromBytes copies a raw 4- or 16-byte address into an owned
// netip.Addr. Any other length yields the zero Addr.
func addrFromBytes(b []byte) netip.Addr {
	switch len(b) {
	case net.IPv4len:
		return netip.AddrFrom4([4]byte(b))
	case net.IPv6len:
		return netip.AddrFrom16([16]byte(b))
	}

	return netip.Addr{}
}

// maskFromPrefix expands a prefix length into a full netmask of the given
// width in bytes (4 or 16).
func maskFromPrefix(prefixLen, byteLen int) netip.Addr {
	if prefixLen < 0 || prefixLen > byteLen*8 {
		return netip.Addr{}
	}

	buf := make([]byte, byteLen)
	for i := 0; i < prefixLen; i++ {
		buf[i/8] |= 0x80 >> (i % 8)
	}

	return addrFromBytes(buf)
}

// broadcastFor computes ip | ^netmask for a 4-byte address pair.
func broadcastFor(ip, netmask netip.Addr) netip.Addr {
	if !ip.Is4() || !netmask.Is4() {
		return netip.Addr{}
	}

	ipb := ip.As4()
	maskb := netmask.As4()
	var out [4]byte
	for i := range out {
		out[i] = ipb[i] | ^maskb[i]
	}

	return netip.AddrFrom4(out)
}

// hwAddrString formats a 6-byte hardware address. Missing and all-zero
// addresses (loopback and other virtual links) are reported as absent.
func hwAddrString(b []byte) string {
	if len(b) != 6 {
		return ""
	}
	nonzero := false
	for _, c := range b {
		if c != 0 {
			nonzero = true

			break
		}
	}
	if !nonzero {
		return ""
	}

	return net.HardwareAddr(b).String()
}

// addrFromIPNet converts a masked address into the tagged form, computing
// the IPv4 broadcast when the interface supports it. The OS value is
// copied; nothing aliases the input.
func addrFromIPNet(ipnet *net.IPNet, broadcastCapable bool) Addr {
	if ip4 := ipnet.IP.To4(); ip4 != nil {
		addr := IfAddrV4{IP: addrFromBytes(ip4)}
		if len(ipnet.Mask) == net.IPv4len {
			addr.Netmask = addrFromBytes(ipnet.Mask)
		}
		if broadcastCapable && addr.Netmask.IsValid() {
			addr.Broadcast = broadcastFor(addr.IP, addr.Netmask)
		}

		return addr
	}

	addr := IfAddrV6{IP: addrFromBytes(ipnet.IP.To16())}
	if len(ipnet.Mask) == net.IPv6len {
		addr.Netmask = addrFromBytes(ipnet.Mask)
	}

	return addr
}
