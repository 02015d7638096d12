// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package netinfo

import (
	"github.com/pion/logging"
	"golang.org/x/sys/unix"
)

// queryHostname reads the kernel hostname record. The sysctl wrapper
// sizes its buffer from the kernel before copying, so no truncation
// retry is needed on this family.
func queryHostname(_ logging.LeveledLogger) (string, error) {
	name, err := unix.Sysctl("kern.hostname")
	if err != nil {
		return "", newNativeErr("sysctl kern.hostname", err)
	}

	return name, nil
}
