package server

import (
	"log/slog"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/mdns"

	"github.com/tailora-app/tailora/internal/config"
	"github.com/tailora-app/tailora/internal/version"
)

func startMDNSAdvertiser(cfg config.File, serverAddr string) func() {
	if strings.TrimSpace(envOrDefault("TAILORA_MDNS_ENABLE", "true")) == "false" || !cfg.MDNSEnabled() {
		return func() {}
	}

	port := listenPortFromAddr(serverAddr)
	if port == "" {
		return func() {}
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return func() {}
	}

	host, _ := os.Hostname()
	if strings.TrimSpace(host) == "" {
		host = "tailora"
	}
	fallback := strings.TrimSpace(cfg.Server.MDNSInstance)
	if fallback == "" {
		fallback = "tailora-" + host
	}
	instance := strings.TrimSpace(envOrDefault("TAILORA_MDNS_INSTANCE", fallback))
	if instance == "" {
		instance = "tailora"
	}

	meta := []string{
		"name=tailora",
		"api_version=1",
		"version=" + version.Current(),
	}
	ips := discoverAdvertiseIPs()
	service, err := mdns.NewMDNSService(instance, "_tailora._tcp", "", "", portNum, ips, meta)
	if err != nil {
		slog.Error("mdns advertise service setup failed", "error", err)
		return func() {}
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		slog.Error("mdns advertise start failed", "error", err)
		return func() {}
	}
	slog.Info("mdns advertising enabled", "service", "_tailora._tcp", "instance", instance, "port", port)

	return func() {
		server.Shutdown()
	}
}

func discoverAdvertiseIPs() []net.IP {
	ifAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	return filterAdvertiseIPs(ifAddrs)
}

// filterAdvertiseIPs keeps only addresses worth publishing over mDNS:
// no loopback, no unspecified, no link-local, no duplicates. IPv4
// addresses sort first so clients that ignore AAAA still resolve.
func filterAdvertiseIPs(addrs []net.Addr) []net.IP {
	var out []net.IP
	seen := map[string]bool{}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet == nil {
			continue
		}
		ip := ipNet.IP.To16()
		if ip == nil || !advertisableIP(ip) || seen[ip.String()] {
			continue
		}
		seen[ip.String()] = true
		out = append(out, ip)
	}
	sort.Slice(out, func(i, j int) bool {
		if vi, vj := ipSortRank(out[i]), ipSortRank(out[j]); vi != vj {
			return vi < vj
		}
		return out[i].String() < out[j].String()
	})
	return out
}

func advertisableIP(ip net.IP) bool {
	return !ip.IsLoopback() && !ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() && !ip.IsLinkLocalMulticast()
}

func ipSortRank(ip net.IP) int {
	if ip.To4() != nil {
		return 0
	}
	return 1
}

func listenPortFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	switch {
	case addr == "":
		return strings.TrimPrefix(config.DefaultListenAddr, ":")
	case !strings.Contains(addr, ":"):
		return addr
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return port
}
