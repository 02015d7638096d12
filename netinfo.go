// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package netinfo retrieves host network facts from the operating system:
// interface enumeration with addresses and flags, local IPv4/IPv6 address
// lists, the hostname and the default gateway.
//
// Every query is a single synchronous native call whose result is copied
// into owned values before returning; nothing is cached between calls and
// no OS resource is held across the public-function boundary. On targets
// without a compiled backend every query fails with
// ErrorKindUnsupportedPlatform.
package netinfo

import (
	"net/netip"
	"sync"
)

var (
	defaultQuerierOnce sync.Once // nolint:gochecknoglobals
	defaultQuerier     *Querier  // nolint:gochecknoglobals
)

func defaultQ() *Querier {
	defaultQuerierOnce.Do(func() {
		defaultQuerier = NewQuerier(nil)
	})

	return defaultQuerier
}

// NetworkInterfaces returns every interface currently visible to the
// calling process, including down or address-less ones, in native
// enumeration order. Addresses of all families belonging to the same
// interface are coalesced into a single entry keyed by name. Either the
// full list is returned or an error; never a truncated list.
func NetworkInterfaces() ([]NetworkInterface, error) {
	return defaultQ().NetworkInterfaces()
}

// LocalIPv4Addresses returns the IPv4 addresses of all interfaces,
// loopback included. The result is exactly the IPv4 filter of
// NetworkInterfaces taken at the same point in time.
func LocalIPv4Addresses() ([]netip.Addr, error) {
	return defaultQ().LocalIPv4Addresses()
}

// LocalIPv6Addresses returns the IPv6 addresses of all interfaces,
// loopback included. The result is exactly the IPv6 filter of
// NetworkInterfaces taken at the same point in time.
func LocalIPv6Addresses() ([]netip.Addr, error) {
	return defaultQ().LocalIPv6Addresses()
}

// Hostname returns the host's name as reported by the OS. A buffer found
// too small is retried once with a larger one before a truncation error
// is surfaced; truncated text is never returned silently.
func Hostname() (string, error) {
	return defaultQ().Hostname()
}

// DefaultGateway queries the OS routing table for default routes of both
// address families. Every configured default route is reported. A host
// with no default route yields an empty Gateways value and no error.
func DefaultGateway() (Gateways, error) {
	return defaultQ().DefaultGateway()
}
