// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || windows || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux windows darwin dragonfly freebsd netbsd openbsd

package netinfo

import (
	"net/netip"
	"testing"

	"github.com/jackpal/gateway"
	"github.com/pion/logging"
	"github.com/stretchr/testify/require"
)

func TestDefaultGateway(t *testing.T) {
	gws, err := DefaultGateway()
	require.NoError(t, err, "a host without a default route must yield a success value")

	for _, gw := range gws.V4 {
		require.True(t, gw.IP.Is4())
	}
	for _, gw := range gws.V6 {
		require.True(t, gw.IP.Is6())
	}

	if !gws.HasRoute() {
		t.Log("no default route configured")
	}
	for _, gw := range gws.V4 {
		t.Logf("  v4 default via %s dev %q", gw.IP, gw.Interface)
	}
	for _, gw := range gws.V6 {
		t.Logf("  v6 default via %s dev %q", gw.IP, gw.Interface)
	}
}

// Cross-check the IPv4 result against an independent discovery
// implementation when both find a gateway.
func TestDefaultGatewayCrossCheck(t *testing.T) {
	gws, err := DefaultGateway()
	require.NoError(t, err)
	if len(gws.V4) == 0 {
		t.Skip("no IPv4 default route configured")
	}

	discovered, err := gateway.DiscoverGateway()
	if err != nil {
		t.Skipf("independent gateway discovery unavailable: %v", err)
	}
	ip4 := discovered.To4()
	if ip4 == nil {
		t.Skipf("independent discovery returned a non-IPv4 gateway: %v", discovered)
	}

	want := netip.AddrFrom4([4]byte(ip4))
	ips := make([]netip.Addr, 0, len(gws.V4))
	for _, gw := range gws.V4 {
		ips = append(ips, gw.IP)
	}
	require.Contains(t, ips, want)
}

func TestNamesByIndex(t *testing.T) {
	names := namesByIndex([]NetworkInterface{
		{Index: 1, Name: "lo"},
		{Index: 2, Name: "eth0"},
	})
	require.Equal(t, map[uint32]string{1: "lo", 2: "eth0"}, names)

	require.Empty(t, namesByIndex(nil))
}

func TestInterfaceNames(t *testing.T) {
	log := logging.NewDefaultLoggerFactory().NewLogger("test")

	ifaces, err := NetworkInterfaces()
	require.NoError(t, err)

	names := interfaceNames(log)
	require.Len(t, names, len(namesByIndex(ifaces)))
	for _, iface := range ifaces {
		require.Equal(t, iface.Name, names[iface.Index])
	}
}

func TestAppendUniqueGateway(t *testing.T) {
	eth0 := Gateway{IP: netip.MustParseAddr("192.168.1.1"), Interface: "eth0"}
	eth1 := Gateway{IP: netip.MustParseAddr("192.168.1.1"), Interface: "eth1"}

	routes := appendUniqueGateway(nil, eth0)
	routes = appendUniqueGateway(routes, eth0)
	require.Len(t, routes, 1)

	// Same next hop through another interface is a distinct route.
	routes = appendUniqueGateway(routes, eth1)
	require.Len(t, routes, 2)
}
