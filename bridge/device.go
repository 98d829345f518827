package bridge

import (
	"encoding/json"
	"os"
	"runtime"
)

// DeviceSnapshot is the fixed bundle of non-sensitive device and app metadata
// exposed to the document. The credential must never appear here.
type DeviceSnapshot struct {
	Device         string `json:"device"`
	OS             string `json:"os"`
	Arch           string `json:"arch"`
	NumCPU         int    `json:"num_cpu"`
	RuntimeVersion string `json:"runtime_version"`
	AppVersion     string `json:"app_version"`
}

// GetDeviceInfo returns the snapshot JSON-encoded for the document. Encoding
// problems degrade to an empty object, never an error.
func (b *Bridge) GetDeviceInfo() string {
	hostname, _ := os.Hostname()
	snapshot := DeviceSnapshot{
		Device:         hostname,
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		NumCPU:         runtime.NumCPU(),
		RuntimeVersion: runtime.Version(),
		AppVersion:     b.info.AppVersion,
	}
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
