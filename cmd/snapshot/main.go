// Moving: the configuration record is handed to SaveVersion outright. The
// snapshot must stay intact even if a caller changed its record afterward,
// so the transform takes ownership rather than borrowing.
package main

import (
	"os"

	"github.com/txbm/blog-posts/internal/config"
	"github.com/txbm/blog-posts/internal/log"
	"github.com/txbm/blog-posts/internal/own"
)

const nginxPath = "/etc/nginx/nginx.conf"

func main() {
	log.Setup("INFO")
	logger := log.WithExample("snapshot")

	// cfg starts under exclusive ownership of main.
	cfg := own.New("config", config.Config{Path: nginxPath})

	// Take moves the record into SaveVersion. The cfg cell is moved-from
	// afterward; touching it again panics.
	version1 := config.SaveVersion(cfg.Take())

	if version1.Version != 1 {
		logger.Error("unexpected version", "version", version1.Version)
		os.Exit(1)
	}
	if version1.Obj.Path != nginxPath {
		logger.Error("path did not survive the move", "path", version1.Obj.Path)
		os.Exit(1)
	}
	if !cfg.Moved() {
		logger.Error("config cell should be moved-from")
		os.Exit(1)
	}

	logger.Info("snapshot captured", "version", version1.Version, "path", version1.Obj.Path)
}
