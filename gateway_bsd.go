// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package netinfo

import (
	"github.com/pion/logging"
	"golang.org/x/net/route"
	"golang.org/x/sys/unix"
)

// queryDefaultGateway dumps the routing table through the routing-socket
// sysctl and keeps every gatewayed route with an unspecified destination.
func queryDefaultGateway(log logging.LeveledLogger) (Gateways, error) {
	rib, err := route.FetchRIB(unix.AF_UNSPEC, route.RIBTypeRoute, 0)
	if err != nil {
		return Gateways{}, newNativeErr("route sysctl net_rt_dump", err)
	}
	msgs, err := route.ParseRIB(route.RIBTypeRoute, rib)
	if err != nil {
		return Gateways{}, newNativeErr("parse net_rt_dump", err)
	}

	return parseRouteRIB(msgs, interfaceNames(log)), nil
}

// parseRouteRIB extracts the default routes of both families from a
// route dump. An empty table is a success carrying no routes.
func parseRouteRIB(msgs []route.Message, names map[uint32]string) Gateways {
	var gws Gateways

	for _, msg := range msgs {
		rm, ok := msg.(*route.RouteMessage)
		if !ok {
			continue
		}
		if rm.Flags&unix.RTF_GATEWAY == 0 {
			continue
		}
		if len(rm.Addrs) <= unix.RTAX_GATEWAY {
			continue
		}

		dst := routeAddr(rm.Addrs[unix.RTAX_DST])
		if !dst.IsValid() || !dst.IsUnspecified() {
			continue // more specific than the default route
		}
		if len(rm.Addrs) > unix.RTAX_NETMASK {
			if mask := routeAddr(rm.Addrs[unix.RTAX_NETMASK]); mask.IsValid() && !mask.IsUnspecified() {
				continue
			}
		}

		gwIP := routeAddr(rm.Addrs[unix.RTAX_GATEWAY])
		if !gwIP.IsValid() {
			continue // link-level next hop
		}

		entry := Gateway{IP: gwIP, Interface: names[uint32(rm.Index)]} // nolint:gosec // kernel indexes are positive
		switch {
		case gwIP.Is4():
			gws.V4 = appendUniqueGateway(gws.V4, entry)
		default:
			gws.V6 = appendUniqueGateway(gws.V6, entry)
		}
	}

	return gws
}
