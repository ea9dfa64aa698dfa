// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"net"
	"os"
	"strings"
)

// AirGapStatus is the result of the advisory air-gap environment check.
// It is a best-effort heuristic, never a security guarantee: a clean result
// does not prove isolation, and warnings do not prove compromise.
type AirGapStatus struct {
	Score       float64 // 0.0 (clearly connected) .. 1.0 (no signals found)
	IsAirGapped bool
	Warnings    []string
}

// CheckAirGap inspects the local environment for obvious signs that the
// machine is not air-gapped: active non-loopback network interfaces, an X11
// socket, and virtual-machine DMI strings. Purely informational.
func CheckAirGap() AirGapStatus {
	status := AirGapStatus{Score: 1.0}

	if n := activeInterfaces(); n > 0 {
		status.Warnings = append(status.Warnings,
			"network interfaces are up - disconnect them for air-gapped operation")
		status.Score *= 0.7
	}

	if _, err := os.Stat("/tmp/.X11-unix"); err == nil {
		status.Warnings = append(status.Warnings,
			"X11 server detected - be cautious of screen capture")
		status.Score *= 0.9
	}

	if vm := vmProductName(); vm != "" {
		status.Warnings = append(status.Warnings,
			"virtual machine detected ("+vm+") - ensure the hypervisor host is isolated")
		status.Score *= 0.8
	}

	status.IsAirGapped = status.Score > 0.8 && len(status.Warnings) == 0
	return status
}

// activeInterfaces counts non-loopback interfaces that are administratively
// up. Errors are treated as "nothing found"; the check is advisory.
func activeInterfaces() int {
	ifaces, err := net.Interfaces()
	if err != nil {
		return 0
	}
	active := 0
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp != 0 {
			active++
		}
	}
	return active
}

// vmProductName returns the DMI product name when it looks like a
// virtualized platform, or "" otherwise. Linux only; other platforms
// silently skip this signal.
func vmProductName() string {
	data, err := os.ReadFile("/sys/class/dmi/id/product_name")
	if err != nil {
		return ""
	}
	product := strings.TrimSpace(string(data))
	lower := strings.ToLower(product)
	for _, marker := range []string{"virtual", "vmware", "kvm", "qemu", "xen"} {
		if strings.Contains(lower, marker) {
			return product
		}
	}
	return ""
}
