package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/edutube/internal/flagx"
	"github.com/dmitrijs2005/edutube/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL           string         `json:"server_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Keys missing from the file keep their current values. Read or
// unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		ServerURL:           cfg.ServerURL,
		RequestTimeout:      timex.Duration{Duration: cfg.RequestTimeout},
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerURL = jc.ServerURL
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
}
