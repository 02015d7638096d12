// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package netinfo

import (
	"net/netip"

	"golang.org/x/net/route"
	"golang.org/x/sys/unix"
)

// queryInterfaces enumerates interfaces with a one-shot routing-socket
// sysctl dump of the interface list. The kernel-owned buffer is parsed
// exactly once and every field of interest is copied into owned values
// before returning.
func queryInterfaces() ([]NetworkInterface, error) {
	rib, err := route.FetchRIB(unix.AF_UNSPEC, route.RIBTypeInterface, 0)
	if err != nil {
		return nil, newNativeErr("route sysctl net_rt_iflist", err)
	}
	msgs, err := route.ParseRIB(route.RIBTypeInterface, rib)
	if err != nil {
		return nil, newNativeErr("parse net_rt_iflist", err)
	}

	return parseInterfaceRIB(msgs), nil
}

// parseInterfaceRIB merges interface and interface-address messages into
// one NetworkInterface per link, in the kernel's enumeration order.
// Links without addresses are included.
func parseInterfaceRIB(msgs []route.Message) []NetworkInterface {
	byIndex := make(map[int]*NetworkInterface)
	var order []*NetworkInterface

	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *route.InterfaceMessage:
			iface := &NetworkInterface{
				Index: uint32(msg.Index), // nolint:gosec // kernel indexes are positive
				Name:  msg.Name,
				Flags: flagsFromBits(uint32(msg.Flags)), // nolint:gosec // raw IFF_* bits
			}
			for _, addr := range msg.Addrs {
				if link, ok := addr.(*route.LinkAddr); ok {
					iface.MACAddr = hwAddrString(link.Addr)
				}
			}

			byIndex[msg.Index] = iface
			order = append(order, iface)

		case *route.InterfaceAddrMessage:
			iface, ok := byIndex[msg.Index]
			if !ok {
				continue
			}

			var ip, mask, brd netip.Addr
			if len(msg.Addrs) > unix.RTAX_IFA {
				ip = routeAddr(msg.Addrs[unix.RTAX_IFA])
			}
			if len(msg.Addrs) > unix.RTAX_NETMASK {
				mask = routeAddr(msg.Addrs[unix.RTAX_NETMASK])
			}
			if len(msg.Addrs) > unix.RTAX_BRD {
				brd = routeAddr(msg.Addrs[unix.RTAX_BRD])
			}

			switch {
			case ip.Is4():
				addr := IfAddrV4{IP: ip}
				if mask.Is4() {
					addr.Netmask = mask
				}
				if iface.Flags.Broadcast && brd.Is4() {
					addr.Broadcast = brd
				}
				iface.Addrs = append(iface.Addrs, addr)
			case ip.Is6():
				addr := IfAddrV6{IP: ip}
				if mask.Is6() {
					addr.Netmask = mask
				}
				iface.Addrs = append(iface.Addrs, addr)
			}
		}
	}

	ifaces := make([]NetworkInterface, 0, len(order))
	for _, iface := range order {
		ifaces = append(ifaces, *iface)
	}

	return ifaces
}

// routeAddr copies a routing sockaddr into an owned netip.Addr.
func routeAddr(addr route.Addr) netip.Addr {
	switch addr := addr.(type) {
	case *route.Inet4Addr:
		return netip.AddrFrom4(addr.IP)
	case *route.Inet6Addr:
		return netip.AddrFrom16(addr.IP)
	}

	return netip.Addr{}
}
