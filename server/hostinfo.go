package server

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/shirou/gopsutil/v3/host"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// hostInfo is the subset of host identity shown on the status page.
type hostInfo struct {
	Hostname string
	Platform string
	Uptime   string
}

// collectHostInfo gathers host identity for the diagnostic page. Failures degrade to
// empty fields; the page must render even when host probing is unavailable.
func collectHostInfo(l hclog.Logger) hostInfo {
	hi, err := host.Info()
	if err != nil {
		l.Debug("host info unavailable", "error", err)
		return hostInfo{}
	}
	return hostInfo{
		Hostname: hi.Hostname,
		Platform: fmt.Sprintf("%s (%s %s)", hi.Platform, hi.OS, hi.KernelArch),
		Uptime:   (time.Duration(hi.Uptime) * time.Second).String(),
	}
}

// hostIPv4s lists the non-loopback IPv4 addresses assigned to the host's interfaces,
// for the "try accessing" startup hints.
func hostIPv4s(l hclog.Logger) []string {
	ifaces, err := gopsnet.Interfaces()
	if err != nil {
		l.Debug("interface listing unavailable", "error", err)
		return nil
	}
	var ips []string
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			// Interface addresses arrive in CIDR notation.
			ipStr := addr.Addr
			if i := strings.IndexByte(ipStr, '/'); i >= 0 {
				ipStr = ipStr[:i]
			}
			ip := net.ParseIP(ipStr)
			if ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			ips = append(ips, ip.String())
		}
	}
	return ips
}
