// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !windows && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd
// +build !linux,!windows,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd

package netinfo

import "github.com/pion/logging"

// No backend is compiled for this target; every query fails with the
// unsupported-platform kind before doing any work.

func queryInterfaces() ([]NetworkInterface, error) {
	return nil, newUnsupportedErr("interface enumeration")
}

func queryHostname(_ logging.LeveledLogger) (string, error) {
	return "", newUnsupportedErr("hostname")
}

func queryDefaultGateway(_ logging.LeveledLogger) (Gateways, error) {
	return Gateways{}, newUnsupportedErr("default gateway")
}
