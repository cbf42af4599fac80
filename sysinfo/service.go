package sysinfo

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"time"
)

// interfaceLister abstracts OS interface enumeration for testing.
type interfaceLister func() ([]net.Interface, error)

type Service struct {
	port      int
	startedAt time.Time
	listIfs   interfaceLister
}

// NewService creates a service reporting on the given listen port.
// Uptime counts from the moment of construction.
func NewService(port int) *Service {
	return &Service{port: port, startedAt: time.Now(), listIfs: net.Interfaces}
}

// GetServerInfo enumerates live OS state. It never caches; two calls
// differ only in uptime and timestamp unless the network changed.
func (s *Service) GetServerInfo() (*ServerInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to read hostname: %w", err)
	}

	ifaces, err := s.networkInterfaces()
	if err != nil {
		return nil, err
	}

	primaryIP := "localhost"
	if len(ifaces) > 0 {
		primaryIP = ifaces[0].Address
	}

	localURL := fmt.Sprintf("http://localhost:%d", s.port)
	networkURL := localURL
	if primaryIP != "localhost" {
		networkURL = fmt.Sprintf("http://%s:%d", primaryIP, s.port)
	}

	return &ServerInfo{
		Hostname:          hostname,
		Platform:          runtime.GOOS,
		Architecture:      runtime.GOARCH,
		Port:              s.port,
		NetworkInterfaces: ifaces,
		PrimaryIP:         primaryIP,
		URLs:              URLSet{Local: localURL, Network: networkURL},
		Uptime:            s.Uptime(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Health reports process liveness.
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Uptime:    s.Uptime(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Uptime is wall-clock seconds since process start.
func (s *Service) Uptime() float64 {
	return time.Since(s.startedAt).Seconds()
}

// networkInterfaces retains IPv4, non-loopback addresses only,
// preserving OS enumeration order.
func (s *Service) networkInterfaces() ([]NetworkInterface, error) {
	osIfaces, err := s.listIfs()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate network interfaces: %w", err)
	}

	result := make([]NetworkInterface, 0)
	for _, iface := range osIfaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipnet.IP.To4()
			if ip4 == nil || ip4.IsLoopback() {
				continue
			}
			result = append(result, NetworkInterface{
				Interface: iface.Name,
				Address:   ip4.String(),
				Netmask:   net.IP(ipnet.Mask).String(),
			})
		}
	}
	return result, nil
}
