// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build windows
// +build windows

package netinfo

import (
	"net/netip"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The adapter Flags bit signalling a multicast-incapable interface.
// GetAdaptersAddresses documents it as IP_ADAPTER_NO_MULTICAST.
const ipAdapterNoMulticast = 0x00000010

// adapterAddresses calls GetAdaptersAddresses with the documented
// grow-and-retry buffer loop and returns the parsed adapter chain. The
// chain points into the returned process-owned buffer, so callers copy
// every field of interest before letting it go out of scope.
func adapterAddresses(flags uint32) ([]*windows.IpAdapterAddresses, error) {
	var buf []byte
	size := uint32(15000) // initial size recommended by the API docs

	for {
		buf = make([]byte, size)
		err := windows.GetAdaptersAddresses(
			windows.AF_UNSPEC, flags, 0,
			(*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0])), &size,
		)
		if err == nil {
			break
		}
		if adapterDumpEmpty(err) {
			return nil, nil
		}
		if err != windows.ERROR_BUFFER_OVERFLOW || size <= uint32(len(buf)) {
			return nil, err
		}
	}
	if size == 0 {
		return nil, nil
	}

	var aas []*windows.IpAdapterAddresses
	for aa := (*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0])); aa != nil; aa = aa.Next {
		aas = append(aas, aa)
	}

	return aas, nil
}

// adapterDumpEmpty reports whether the enumeration error just means the
// host has no adapters at all, which is an empty result, not a failure.
func adapterDumpEmpty(err error) bool {
	return err == windows.ERROR_NO_DATA
}

// queryInterfaces enumerates adapters and their unicast address chains,
// one NetworkInterface per adapter in native enumeration order. Adapters
// without addresses are included.
func queryInterfaces() ([]NetworkInterface, error) {
	aas, err := adapterAddresses(windows.GAA_FLAG_INCLUDE_PREFIX)
	if err != nil {
		return nil, newNativeErr("getadaptersaddresses", err)
	}

	ifaces := make([]NetworkInterface, 0, len(aas))
	for _, aa := range aas {
		index := aa.IfIndex
		if index == 0 {
			index = aa.Ipv6IfIndex // IPv6-only adapter
		}

		flags := adapterFlags(aa)
		iface := NetworkInterface{
			Index:   index,
			Name:    windows.UTF16PtrToString(aa.FriendlyName),
			MACAddr: hwAddrString(aa.PhysicalAddress[:aa.PhysicalAddressLength]),
			Flags:   flags,
		}

		for ua := aa.FirstUnicastAddress; ua != nil; ua = ua.Next {
			ip := sockaddrIP(ua.Address.Sockaddr)
			switch {
			case ip.Is4():
				addr := IfAddrV4{IP: ip, Netmask: maskFromPrefix(int(ua.OnLinkPrefixLength), 4)}
				if flags.Broadcast {
					// The API reports no broadcast address; derive it.
					addr.Broadcast = broadcastFor(ip, addr.Netmask)
				}
				iface.Addrs = append(iface.Addrs, addr)
			case ip.Is6():
				iface.Addrs = append(iface.Addrs, IfAddrV6{
					IP:      ip,
					Netmask: maskFromPrefix(int(ua.OnLinkPrefixLength), 16),
				})
			}
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, nil
}

// adapterFlags maps adapter type, operational status and flag bits onto
// the portable Flags set.
func adapterFlags(aa *windows.IpAdapterAddresses) Flags {
	flags := Flags{
		Loopback: aa.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK,
	}
	if aa.OperStatus == windows.IfOperStatusUp {
		flags.Up = true
		flags.Running = true
	}
	if aa.Flags&ipAdapterNoMulticast == 0 {
		flags.Multicast = true
	}
	if !flags.Loopback && aa.IfType != windows.IF_TYPE_PPP && aa.IfType != windows.IF_TYPE_TUNNEL {
		flags.Broadcast = true
	}

	return flags
}

// sockaddrIP copies the address out of a raw sockaddr into an owned
// netip.Addr.
func sockaddrIP(sa *syscall.RawSockaddrAny) netip.Addr {
	if sa == nil {
		return netip.Addr{}
	}
	switch sa.Addr.Family {
	case windows.AF_INET:
		// nolint:gosec // fixed-layout sockaddr parsing
		sa4 := (*syscall.RawSockaddrInet4)(unsafe.Pointer(sa))

		return netip.AddrFrom4(sa4.Addr)
	case windows.AF_INET6:
		// nolint:gosec // fixed-layout sockaddr parsing
		sa6 := (*syscall.RawSockaddrInet6)(unsafe.Pointer(sa))

		return netip.AddrFrom16(sa6.Addr)
	}

	return netip.Addr{}
}
