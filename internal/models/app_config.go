package models

import (
	"strconv"
	"strings"
)

type VersionCheck struct {
	MinVersion         string `json:"min_version"`
	LatestVersion      string `json:"latest_version"`
	UpdateURL          string `json:"update_url"`
	ForceUpdate        bool   `json:"force_update"`
	IsMaintenance      bool   `json:"is_maintenance"`
	MaintenanceMessage string `json:"maintenance_message"`
}

// NeedsUpdate reports whether current is older than the minimum supported version.
func (v VersionCheck) NeedsUpdate(current string) bool {
	if v.MinVersion == "" {
		return false
	}
	return CompareVersion(current, v.MinVersion) < 0
}

// CompareVersion compares dotted numeric versions. Missing or non-numeric parts count as zero.
func CompareVersion(a, b string) int {
	pa := strings.Split(strings.TrimPrefix(a, "v"), ".")
	pb := strings.Split(strings.TrimPrefix(b, "v"), ".")
	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}
	for i := 0; i < n; i++ {
		x, y := versionPart(pa, i), versionPart(pb, i)
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	return 0
}

func versionPart(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
