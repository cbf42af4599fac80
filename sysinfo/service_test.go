package sysinfo

import (
	"fmt"
	"net"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerInfo_ReportsProcessFacts(t *testing.T) {
	svc := NewService(3000)

	info, err := svc.GetServerInfo()
	require.NoError(t, err)

	assert.NotEmpty(t, info.Hostname)
	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Architecture)
	assert.Equal(t, 3000, info.Port)
	assert.NotEmpty(t, info.Timestamp)
	assert.GreaterOrEqual(t, info.Uptime, 0.0)
}

func TestGetServerInfo_URLComposition(t *testing.T) {
	svc := NewService(8080)

	info, err := svc.GetServerInfo()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", info.URLs.Local)
	if info.PrimaryIP == "localhost" {
		assert.Equal(t, info.URLs.Local, info.URLs.Network)
	} else {
		assert.Equal(t, fmt.Sprintf("http://%s:8080", info.PrimaryIP), info.URLs.Network)
	}
}

func TestGetServerInfo_InterfacesAreIPv4NonLoopback(t *testing.T) {
	svc := NewService(3000)

	info, err := svc.GetServerInfo()
	require.NoError(t, err)

	for _, iface := range info.NetworkInterfaces {
		ip := net.ParseIP(iface.Address)
		require.NotNil(t, ip, "address %q must parse", iface.Address)
		assert.NotNil(t, ip.To4(), "address %q must be IPv4", iface.Address)
		assert.False(t, ip.IsLoopback())
		assert.False(t, strings.Contains(iface.Address, ":"))
	}
}

func TestGetServerInfo_PrimaryIPMatchesFirstInterface(t *testing.T) {
	svc := NewService(3000)

	info, err := svc.GetServerInfo()
	require.NoError(t, err)

	if len(info.NetworkInterfaces) > 0 {
		assert.Equal(t, info.NetworkInterfaces[0].Address, info.PrimaryIP)
	} else {
		assert.Equal(t, "localhost", info.PrimaryIP)
	}
}

func TestGetServerInfo_StableAcrossCalls(t *testing.T) {
	svc := NewService(3000)

	first, err := svc.GetServerInfo()
	require.NoError(t, err)
	second, err := svc.GetServerInfo()
	require.NoError(t, err)

	assert.Equal(t, first.Hostname, second.Hostname)
	assert.Equal(t, first.NetworkInterfaces, second.NetworkInterfaces)
	assert.Equal(t, first.PrimaryIP, second.PrimaryIP)
	assert.GreaterOrEqual(t, second.Uptime, first.Uptime)
}

func TestGetServerInfo_EnumerationFailure(t *testing.T) {
	svc := &Service{
		port:      3000,
		startedAt: time.Now(),
		listIfs: func() ([]net.Interface, error) {
			return nil, fmt.Errorf("netlink unavailable")
		},
	}

	_, err := svc.GetServerInfo()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network interfaces")
}

func TestUptime_Monotonic(t *testing.T) {
	svc := NewService(3000)

	first := svc.Uptime()
	time.Sleep(10 * time.Millisecond)
	second := svc.Uptime()
	assert.Greater(t, second, first)
}

func TestHealth(t *testing.T) {
	svc := NewService(3000)

	status := svc.Health()
	assert.GreaterOrEqual(t, status.Uptime, 0.0)
	assert.NotEmpty(t, status.Timestamp)
}
