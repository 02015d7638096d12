// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build windows
// +build windows

package netinfo

import (
	"github.com/pion/logging"
	"golang.org/x/sys/windows"
)

// queryHostname asks for the physical DNS hostname. When the buffer is
// too small the call reports the required size and is retried exactly
// once before a truncation error is surfaced.
func queryHostname(log logging.LeveledLogger) (string, error) {
	size := uint32(256)
	for attempt := 0; attempt < 2; attempt++ {
		buf := make([]uint16, size)
		err := windows.GetComputerNameEx(windows.ComputerNamePhysicalDnsHostname, &buf[0], &size)
		if err == nil {
			return windows.UTF16ToString(buf[:size]), nil
		}
		if err != windows.ERROR_MORE_DATA {
			return "", newNativeErr("getcomputernameex", err)
		}
		log.Warnf("hostname buffer too small, retrying with %d", size)
	}

	return "", newTruncationErr("getcomputernameex")
}
