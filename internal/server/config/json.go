package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vaccinehub/internal/flagx"
)

// JsonConfig mirrors Config for unmarshalling. Fields left out of the file
// keep their current values.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	StorageType      string `json:"storage_type"`
	BcryptWorkFactor int    `json:"bcrypt_work_factor"`
	LogLevel         string `json:"log_level"`
	LogFormat        string `json:"log_format"`
}

// parseJson overlays config with the JSON file named by -c/-config in args.
// Nothing happens when no file is given. An unreadable file or invalid JSON
// panics: the server must not start on a half-read configuration.
func parseJson(config *Config, args []string) {

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

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.StorageType, c.StorageType)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	if c.BcryptWorkFactor != 0 {
		config.BcryptWorkFactor = c.BcryptWorkFactor
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
