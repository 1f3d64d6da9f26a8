package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/vaccinehub/internal/flagx"
)

type JsonConfig struct {
	ServerEndpointAddr    string `json:"server_endpoint_addr"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
}
