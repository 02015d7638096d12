// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package netinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodename(t *testing.T) {
	name, truncated := nodename([]byte{'p', 'c', 0, 0, 0})
	require.Equal(t, "pc", name)
	require.False(t, truncated)

	name, truncated = nodename([]byte{'a', 'b', 'c'})
	require.Equal(t, "abc", name)
	require.True(t, truncated, "a buffer with no terminator was exhausted")

	name, truncated = nodename([]byte{0})
	require.Empty(t, name)
	require.False(t, truncated)
}
