// Moving with pre-reserved capacity: a move hands over the allocation
// itself, so capacity reserved before the transfer is still there after it.
// If SaveVersion copied or reallocated, the assertion on cap would fail.
package main

import (
	"os"

	"github.com/txbm/blog-posts/internal/config"
	"github.com/txbm/blog-posts/internal/log"
)

const nginxPath = "/etc/nginx/nginx.conf"

func main() {
	log.Setup("INFO")
	logger := log.WithExample("reserve")

	cfg := config.Config{
		Path:     nginxPath,
		Reserved: make([]string, 0, config.ReserveCapacity),
	}

	// cfg moves into SaveVersion; this binding must not be used below.
	version1 := config.SaveVersion(cfg)

	if version1.Version != 1 {
		logger.Error("unexpected version", "version", version1.Version)
		os.Exit(1)
	}
	if version1.Obj.Path != nginxPath {
		logger.Error("path did not survive the move", "path", version1.Obj.Path)
		os.Exit(1)
	}
	if got := cap(version1.Obj.Reserved); got != config.ReserveCapacity {
		logger.Error("reserved capacity was not preserved",
			"capacity", got, "want", config.ReserveCapacity)
		os.Exit(1)
	}

	logger.Info("snapshot captured with reserve intact",
		"version", version1.Version, "capacity", cap(version1.Obj.Reserved))
}
