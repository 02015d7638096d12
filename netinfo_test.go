// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || windows || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux windows darwin dragonfly freebsd netbsd openbsd

package netinfo

import (
	"net/netip"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/require"
)

func TestNetworkInterfaces(t *testing.T) {
	ifaces, err := NetworkInterfaces()
	require.NoError(t, err)
	if len(ifaces) == 0 {
		t.Skip("no network interfaces on this host")
	}

	for _, iface := range ifaces {
		t.Logf(
			"  %s (index=%d, mac=%q, flags=%s, addrs=%d)",
			iface.Name, iface.Index, iface.MACAddr, iface.Flags, len(iface.Addrs),
		)
	}

	t.Run("names are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, iface := range ifaces {
			require.NotEmpty(t, iface.Name)
			require.False(t, seen[iface.Name], "interface %q appears twice", iface.Name)
			seen[iface.Name] = true
		}
	})

	t.Run("broadcast is consistent with ip and netmask", func(t *testing.T) {
		for _, iface := range ifaces {
			for _, addr := range iface.Addrs {
				v4, ok := addr.(IfAddrV4)
				if !ok || !v4.Broadcast.IsValid() || !v4.Netmask.IsValid() {
					continue
				}
				require.Equal(t, broadcastFor(v4.IP, v4.Netmask), v4.Broadcast,
					"interface %s address %s", iface.Name, v4.IP)
			}
		}
	})

	t.Run("address families match variants", func(t *testing.T) {
		for _, iface := range ifaces {
			for _, addr := range iface.Addrs {
				switch a := addr.(type) {
				case IfAddrV4:
					require.True(t, a.IP.Is4())
				case IfAddrV6:
					require.True(t, a.IP.Is6())
				}
			}
		}
	})
}

func TestLoopbackInterfaceShape(t *testing.T) {
	ifaces, err := NetworkInterfaces()
	require.NoError(t, err)

	var loopback *NetworkInterface
	for i := range ifaces {
		if ifaces[i].Flags.Loopback {
			loopback = &ifaces[i]

			break
		}
	}
	if loopback == nil {
		t.Skip("host has no loopback interface")
	}

	require.True(t, loopback.Flags.Up)
	require.Empty(t, loopback.MACAddr, "loopback is not a hardware interface")

	for _, addr := range loopback.Addrs {
		switch a := addr.(type) {
		case IfAddrV4:
			require.True(t, a.IP.IsLoopback(), "unexpected IPv4 %s on loopback", a.IP)
			require.False(t, a.Broadcast.IsValid(), "loopback must not carry a broadcast address")
		case IfAddrV6:
			require.True(t, a.IP.IsLoopback() || a.IP.IsLinkLocalUnicast(),
				"unexpected IPv6 %s on loopback", a.IP)
		}
	}
}

func TestLocalAddressesMatchInterfaces(t *testing.T) {
	ifaces, err := NetworkInterfaces()
	require.NoError(t, err)

	gotV4, err := LocalIPv4Addresses()
	require.NoError(t, err)
	gotV6, err := LocalIPv6Addresses()
	require.NoError(t, err)

	var wantV4, wantV6 []netip.Addr
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			switch a := addr.(type) {
			case IfAddrV4:
				wantV4 = append(wantV4, a.IP)
			case IfAddrV6:
				wantV6 = append(wantV6, a.IP)
			}
		}
	}

	require.Equal(t, wantV4, gotV4)
	require.Equal(t, wantV6, gotV6)
}

func TestHostname(t *testing.T) {
	name, err := Hostname()
	require.NoError(t, err)
	require.NotEmpty(t, name)

	again, err := Hostname()
	require.NoError(t, err)
	require.Equal(t, name, again, "hostname read must be idempotent")
}

func TestNewQuerier(t *testing.T) {
	require.NotNil(t, NewQuerier(nil))

	querier := NewQuerier(&QuerierConfig{LoggerFactory: logging.NewDefaultLoggerFactory()})
	ifaces, err := querier.NetworkInterfaces()
	require.NoError(t, err)
	t.Logf("querier found %d interfaces", len(ifaces))
}
