// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package netinfo

import (
	"encoding/binary"
	"net/netip"
	"syscall"
	"unsafe"

	"github.com/pion/logging"
	"golang.org/x/sys/unix"
)

// queryDefaultGateway dumps the routing tables with a one-shot
// RTM_GETROUTE and keeps every default (zero-length destination) route.
func queryDefaultGateway(log logging.LeveledLogger) (Gateways, error) {
	dump, err := syscall.NetlinkRIB(unix.RTM_GETROUTE, unix.AF_UNSPEC)
	if err != nil {
		return Gateways{}, newNativeErr("netlink rtm_getroute", err)
	}
	msgs, err := syscall.ParseNetlinkMessage(dump)
	if err != nil {
		return Gateways{}, newNativeErr("parse rtm_getroute", err)
	}

	return parseRouteDump(msgs, interfaceNames(log))
}

// parseRouteDump extracts the default routes of both families from a
// route dump. An empty table is a success carrying no routes.
func parseRouteDump(msgs []syscall.NetlinkMessage, names map[uint32]string) (Gateways, error) {
	var gws Gateways

	for i := range msgs {
		msg := &msgs[i]
		if msg.Header.Type != unix.RTM_NEWROUTE {
			continue
		}
		// nolint:gosec // intentional netlink message parsing
		rt := (*unix.RtMsg)(unsafe.Pointer(&msg.Data[0]))
		if rt.Dst_len != 0 {
			continue // more specific than the default route
		}
		attrs, err := syscall.ParseNetlinkRouteAttr(msg)
		if err != nil {
			return Gateways{}, newNativeErr("parse route attributes", err)
		}

		var gwIP netip.Addr
		var oif uint32
		for _, attr := range attrs {
			switch attr.Attr.Type {
			case unix.RTA_GATEWAY:
				gwIP = addrFromBytes(attr.Value)
			case unix.RTA_OIF:
				if len(attr.Value) >= 4 {
					oif = binary.NativeEndian.Uint32(attr.Value)
				}
			}
		}
		if !gwIP.IsValid() {
			continue // directly connected default, no next hop
		}

		entry := Gateway{IP: gwIP, Interface: names[oif]}
		switch {
		case gwIP.Is4():
			gws.V4 = appendUniqueGateway(gws.V4, entry)
		default:
			gws.V6 = appendUniqueGateway(gws.V6, entry)
		}
	}

	return gws, nil
}
