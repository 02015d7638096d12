// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package netinfo

import (
	"net/netip"

	"github.com/pion/logging"
)

// Gateway is one default route entry.
type Gateway struct {
	// IP is the next-hop address.
	IP netip.Addr

	// Interface is the name of the interface the gateway is reachable
	// through. Empty when the OS did not associate one.
	Interface string
}

// Gateways holds every default route configured on the host, split by
// address family. Both slices empty means no default route is configured,
// which is a valid state, not an error.
type Gateways struct {
	V4 []Gateway
	V6 []Gateway
}

// HasRoute reports whether at least one default route is configured.
func (g Gateways) HasRoute() bool {
	return len(g.V4) > 0 || len(g.V6) > 0
}

// appendUniqueGateway adds entry unless an identical route was already
// recorded. Route dumps can list the same gateway in several tables.
func appendUniqueGateway(routes []Gateway, entry Gateway) []Gateway {
	for _, r := range routes {
		if r == entry {
			return routes
		}
	}

	return append(routes, entry)
}

// interfaceNames indexes the current interface names for route output.
// Enumeration failure is not fatal here; gateways are then reported
// without an interface name.
func interfaceNames(log logging.LeveledLogger) map[uint32]string {
	ifaces, err := queryInterfaces()
	if err != nil {
		log.Warnf("interface enumeration failed during route query: %v", err)

		return nil
	}

	return namesByIndex(ifaces)
}

// namesByIndex maps interface indexes to their names.
func namesByIndex(ifaces []NetworkInterface) map[uint32]string {
	names := make(map[uint32]string, len(ifaces))
	for i := range ifaces {
		names[ifaces[i].Index] = ifaces[i].Name
	}

	return names
}
