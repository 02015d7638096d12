// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build windows
// +build windows

package netinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestAdapterDumpEmpty(t *testing.T) {
	require.True(t, adapterDumpEmpty(windows.ERROR_NO_DATA),
		"a host with zero adapters yields an empty list, not an error")
	require.False(t, adapterDumpEmpty(windows.ERROR_BUFFER_OVERFLOW))
	require.False(t, adapterDumpEmpty(nil))
}

func TestAdapterFlags(t *testing.T) {
	loopback := adapterFlags(&windows.IpAdapterAddresses{
		IfType:     windows.IF_TYPE_SOFTWARE_LOOPBACK,
		OperStatus: windows.IfOperStatusUp,
	})
	require.True(t, loopback.Loopback)
	require.True(t, loopback.Up)
	require.True(t, loopback.Running)
	require.False(t, loopback.Broadcast, "loopback carries no broadcast address")

	ethernet := adapterFlags(&windows.IpAdapterAddresses{
		IfType:     windows.IF_TYPE_ETHERNET_CSMACD,
		OperStatus: windows.IfOperStatusUp,
	})
	require.True(t, ethernet.Broadcast)
	require.True(t, ethernet.Multicast)

	down := adapterFlags(&windows.IpAdapterAddresses{
		IfType:     windows.IF_TYPE_ETHERNET_CSMACD,
		OperStatus: windows.IfOperStatusDown,
		Flags:      ipAdapterNoMulticast,
	})
	require.False(t, down.Up)
	require.False(t, down.Multicast)
}
