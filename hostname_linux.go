// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package netinfo

import (
	"os"
	"strings"

	"github.com/pion/logging"
	"golang.org/x/sys/unix"
)

// queryHostname reads the node name from uname. The utsname buffer is
// fixed-size; when it comes back full with no terminator the kernel's
// complete hostname record serves as the single larger-buffer retry.
func queryHostname(log logging.LeveledLogger) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", newNativeErr("uname", err)
	}

	name, truncated := nodename(uts.Nodename[:])
	if !truncated {
		return name, nil
	}

	log.Warnf("uname nodename buffer exhausted, retrying through the kernel hostname record")
	full, err := os.ReadFile("/proc/sys/kernel/hostname")
	if err != nil {
		return "", newTruncationErr("uname nodename")
	}

	return strings.TrimRight(string(full), "\n\x00"), nil
}

// nodename copies the NUL-terminated name out of a utsname field and
// reports whether the buffer was exhausted without a terminator.
func nodename(buf []byte) (string, bool) {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i]), false
		}
	}

	return string(buf), true
}
