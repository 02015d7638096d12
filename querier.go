// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package netinfo

import (
	"net/netip"

	"github.com/pion/logging"
)

// QuerierConfig collects the options for NewQuerier.
type QuerierConfig struct {
	// LoggerFactory produces the querier's logger. Defaults to
	// logging.NewDefaultLoggerFactory().
	LoggerFactory logging.LoggerFactory
}

// Querier retrieves host network facts. It holds no state between calls
// besides its logger and is safe for concurrent use; every method is a
// blocking native query with no cancellation support.
type Querier struct {
	log logging.LeveledLogger
}

// NewQuerier builds a Querier. A nil config selects all defaults.
func NewQuerier(config *QuerierConfig) *Querier {
	var loggerFactory logging.LoggerFactory
	if config != nil {
		loggerFactory = config.LoggerFactory
	}
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Querier{log: loggerFactory.NewLogger("netinfo")}
}

// NetworkInterfaces returns every interface currently visible to the
// calling process. See the package-level function for the full contract.
func (q *Querier) NetworkInterfaces() ([]NetworkInterface, error) {
	ifaces, err := queryInterfaces()
	if err != nil {
		return nil, err
	}
	q.log.Debugf("enumerated %d interfaces", len(ifaces))

	return ifaces, nil
}

// LocalIPv4Addresses returns the IPv4 addresses of all interfaces.
func (q *Querier) LocalIPv4Addresses() ([]netip.Addr, error) {
	return q.localAddresses(func(addr Addr) (netip.Addr, bool) {
		if v4, ok := addr.(IfAddrV4); ok {
			return v4.IP, true
		}

		return netip.Addr{}, false
	})
}

// LocalIPv6Addresses returns the IPv6 addresses of all interfaces.
func (q *Querier) LocalIPv6Addresses() ([]netip.Addr, error) {
	return q.localAddresses(func(addr Addr) (netip.Addr, bool) {
		if v6, ok := addr.(IfAddrV6); ok {
			return v6.IP, true
		}

		return netip.Addr{}, false
	})
}

// localAddresses filters the interface enumeration down to one address
// family, preserving enumeration order and discarding interface metadata.
func (q *Querier) localAddresses(pick func(Addr) (netip.Addr, bool)) ([]netip.Addr, error) {
	ifaces, err := queryInterfaces()
	if err != nil {
		return nil, err
	}

	var addrs []netip.Addr
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			if ip, ok := pick(addr); ok {
				addrs = append(addrs, ip)
			}
		}
	}

	return addrs, nil
}

// Hostname returns the host's name as reported by the OS.
func (q *Querier) Hostname() (string, error) {
	return queryHostname(q.log)
}

// DefaultGateway queries the OS routing table for default routes of both
// address families.
func (q *Querier) DefaultGateway() (Gateways, error) {
	gws, err := queryDefaultGateway(q.log)
	if err != nil {
		return Gateways{}, err
	}
	if !gws.HasRoute() {
		q.log.Debugf("no default route configured")
	}

	return gws, nil
}
