package sysinfo

// NetworkInterface describes one retained IPv4, non-loopback address.
type NetworkInterface struct {
	Interface string `json:"interface"`
	Address   string `json:"address"`
	Netmask   string `json:"netmask"`
}

// URLSet holds the composed access URLs.
type URLSet struct {
	Local   string `json:"local"`
	Network string `json:"network"`
}

// ServerInfo is computed fresh on every request from live OS state.
type ServerInfo struct {
	Hostname          string             `json:"hostname"`
	Platform          string             `json:"platform"`
	Architecture      string             `json:"architecture"`
	Port              int                `json:"port"`
	NetworkInterfaces []NetworkInterface `json:"networkInterfaces"`
	PrimaryIP         string             `json:"primaryIP"`
	URLs              URLSet             `json:"urls"`
	Uptime            float64            `json:"uptime"`
	Timestamp         string             `json:"timestamp"`
}

// HealthStatus is the GET /api/health data payload.
type HealthStatus struct {
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}
