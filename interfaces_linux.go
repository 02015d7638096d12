// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux && !android
// +build linux,!android

package netinfo

import (
	"bytes"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// queryInterfaces enumerates interfaces with two one-shot netlink dumps:
// RTM_GETLINK for the links themselves, RTM_GETADDR for every address.
// The kernel-owned dump buffers are parsed exactly once and every field
// of interest is copied into owned values before returning.
func queryInterfaces() ([]NetworkInterface, error) {
	linkDump, err := syscall.NetlinkRIB(unix.RTM_GETLINK, unix.AF_UNSPEC)
	if err != nil {
		return nil, newNativeErr("netlink rtm_getlink", err)
	}
	linkMsgs, err := syscall.ParseNetlinkMessage(linkDump)
	if err != nil {
		return nil, newNativeErr("parse rtm_getlink", err)
	}

	addrDump, err := syscall.NetlinkRIB(unix.RTM_GETADDR, unix.AF_UNSPEC)
	if err != nil {
		return nil, newNativeErr("netlink rtm_getaddr", err)
	}
	addrMsgs, err := syscall.ParseNetlinkMessage(addrDump)
	if err != nil {
		return nil, newNativeErr("parse rtm_getaddr", err)
	}

	return parseInterfaceDump(linkMsgs, addrMsgs)
}

// parseInterfaceDump merges a link dump and an address dump into one
// NetworkInterface per link, in the kernel's enumeration order. Links
// without addresses are included.
func parseInterfaceDump(linkMsgs, addrMsgs []syscall.NetlinkMessage) ([]NetworkInterface, error) {
	byIndex := make(map[uint32]*NetworkInterface)
	var order []*NetworkInterface

	for i := range linkMsgs {
		msg := &linkMsgs[i]
		if msg.Header.Type != unix.RTM_NEWLINK {
			continue
		}
		// nolint:gosec // intentional netlink message parsing
		ifi := (*unix.IfInfomsg)(unsafe.Pointer(&msg.Data[0]))
		attrs, err := syscall.ParseNetlinkRouteAttr(msg)
		if err != nil {
			return nil, newNativeErr("parse link attributes", err)
		}

		iface := &NetworkInterface{
			Index: uint32(ifi.Index), // nolint:gosec // kernel indexes are positive
			Flags: flagsFromBits(ifi.Flags),
		}
		for _, attr := range attrs {
			switch attr.Attr.Type {
			case unix.IFLA_IFNAME:
				iface.Name = string(bytes.TrimRight(attr.Value, "\x00"))
			case unix.IFLA_ADDRESS:
				iface.MACAddr = hwAddrString(attr.Value)
			}
		}

		byIndex[iface.Index] = iface
		order = append(order, iface)
	}

	for i := range addrMsgs {
		msg := &addrMsgs[i]
		if msg.Header.Type != unix.RTM_NEWADDR {
			continue
		}
		// nolint:gosec // intentional netlink message parsing
		ifa := (*unix.IfAddrmsg)(unsafe.Pointer(&msg.Data[0]))
		attrs, err := syscall.ParseNetlinkRouteAttr(msg)
		if err != nil {
			return nil, newNativeErr("parse address attributes", err)
		}

		iface, ok := byIndex[ifa.Index]
		if !ok {
			continue // link vanished between the two dumps
		}

		var local, address, brd []byte
		for _, attr := range attrs {
			switch attr.Attr.Type {
			case unix.IFA_LOCAL:
				local = attr.Value
			case unix.IFA_ADDRESS:
				address = attr.Value
			case unix.IFA_BROADCAST:
				brd = attr.Value
			}
		}

		// IFA_LOCAL is the interface's own address; IFA_ADDRESS is the
		// peer on point-to-point links.
		raw := local
		if raw == nil {
			raw = address
		}
		ip := addrFromBytes(raw)
		if !ip.IsValid() {
			continue
		}

		switch ifa.Family {
		case unix.AF_INET:
			addr := IfAddrV4{IP: ip, Netmask: maskFromPrefix(int(ifa.Prefixlen), 4)}
			if iface.Flags.Broadcast {
				addr.Broadcast = addrFromBytes(brd)
			}
			iface.Addrs = append(iface.Addrs, addr)
		case unix.AF_INET6:
			iface.Addrs = append(iface.Addrs, IfAddrV6{
				IP:      ip,
				Netmask: maskFromPrefix(int(ifa.Prefixlen), 16),
			})
		}
	}

	ifaces := make([]NetworkInterface, 0, len(order))
	for _, iface := range order {
		ifaces = append(ifaces, *iface)
	}

	return ifaces, nil
}
