package utils

import "os"

type ServerConfig struct {
	Addr string
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("SCHEMAFORGE_ADDR")
	if addr == "" {
		// dev default
		addr = ":8080"
	}

	return ServerConfig{Addr: addr}
}
