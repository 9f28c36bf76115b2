package env

import (
	"os"
)

// PodName example: nftexplorer-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// ConfigFile overrides the default config path
func ConfigFile() string {
	if f := os.Getenv("NFTEXPLORER_CONFIG"); len(f) > 0 {
		return f
	}
	return "infra/configs/config.yaml"
}
