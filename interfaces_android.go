// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build android
// +build android

package netinfo

import (
	"net"

	"github.com/wlynxg/anet"
)

// Android restricts netlink enumeration for apps targeting recent API
// levels, so interfaces come from anet, which reproduces the stdlib
// behavior without RTM_GETLINK. The route dump for the default gateway
// still goes through netlink and surfaces a native-call failure where
// the platform denies it.
func queryInterfaces() ([]NetworkInterface, error) {
	sysIfaces, err := anet.Interfaces()
	if err != nil {
		return nil, newNativeErr("anet interfaces", err)
	}

	ifaces := make([]NetworkInterface, 0, len(sysIfaces))
	for i := range sysIfaces {
		sysIface := &sysIfaces[i]
		iface := NetworkInterface{
			Index:   uint32(sysIface.Index), // nolint:gosec // kernel indexes are positive
			Name:    sysIface.Name,
			MACAddr: hwAddrString(sysIface.HardwareAddr),
			Flags:   flagsFromNet(sysIface.Flags),
		}

		addrs, err := anet.InterfaceAddrsByInterface(sysIface)
		if err != nil {
			return nil, newNativeErr("anet interface addrs", err)
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			iface.Addrs = append(iface.Addrs, addrFromIPNet(ipnet, iface.Flags.Broadcast))
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, nil
}

// flagsFromNet maps stdlib interface flags onto Flags.
func flagsFromNet(f net.Flags) Flags {
	return Flags{
		Up:        f&net.FlagUp != 0,
		Loopback:  f&net.FlagLoopback != 0,
		Running:   f&net.FlagRunning != 0,
		Multicast: f&net.FlagMulticast != 0,
		Broadcast: f&net.FlagBroadcast != 0,
	}
}
