package config

import (
	"encoding/json"
	"os"

	"github.com/quantumio/qtask/internal/flagx"
	"github.com/quantumio/qtask/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Durations accept either
// strings like "300ms" or integer nanoseconds via timex.Duration. Pointer
// fields distinguish "absent" from zero values.
type JsonConfig struct {
	APIEndpointAddr  *string         `json:"api_endpoint_addr"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	PageSize         *int            `json:"page_size"`
	StorageDSN       *string         `json:"storage_dsn"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Absent file means no changes; read or unmarshal errors
// panic, matching the fail-fast startup of the other loaders.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpointAddr != nil {
		cfg.APIEndpointAddr = *jc.APIEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.StorageDSN != nil {
		cfg.StorageDSN = *jc.StorageDSN
	}
}
