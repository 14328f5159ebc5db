// SPDX-License-Identifier: MIT
package hostinfo_test

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/katalvlaran/mmbench/internal/hostinfo"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	info := hostinfo.Collect()
	require.Equal(t, runtime.GOOS, info.GOOS)
	require.Equal(t, runtime.GOARCH, info.GOARCH)
	require.Positive(t, info.NumCPU)
	require.Positive(t, info.GOMAXPROCS)
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("start", "host", hostinfo.Collect())
	require.Contains(t, buf.String(), "host.arch="+runtime.GOARCH)
	require.Contains(t, buf.String(), "host.cpus=")
}
