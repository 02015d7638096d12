// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build windows
// +build windows

package netinfo

import (
	"github.com/pion/logging"
	"golang.org/x/sys/windows"
)

// queryDefaultGateway walks the per-adapter gateway chains reported by
// GetAdaptersAddresses. The adapter dump carries the interface names
// itself, so no separate enumeration is needed here.
func queryDefaultGateway(_ logging.LeveledLogger) (Gateways, error) {
	aas, err := adapterAddresses(windows.GAA_FLAG_INCLUDE_GATEWAYS)
	if err != nil {
		return Gateways{}, newNativeErr("getadaptersaddresses", err)
	}

	var gws Gateways
	for _, aa := range aas {
		if aa.OperStatus != windows.IfOperStatusUp {
			continue
		}
		if aa.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK {
			continue
		}

		name := windows.UTF16PtrToString(aa.FriendlyName)
		for ga := aa.FirstGatewayAddress; ga != nil; ga = ga.Next {
			ip := sockaddrIP(ga.Address.Sockaddr)
			entry := Gateway{IP: ip, Interface: name}
			switch {
			case ip.Is4():
				gws.V4 = appendUniqueGateway(gws.V4, entry)
			case ip.Is6():
				gws.V6 = appendUniqueGateway(gws.V6, entry)
			}
		}
	}

	return gws, nil
}
