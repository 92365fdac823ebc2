// Cloning before transfer: main needs its record after the snapshot is
// taken, so it hands SaveVersion an explicit deep copy and keeps the
// original. The copy step is a named, visible call because its cost is
// proportional to the record's size.
package main

import (
	"os"

	"github.com/txbm/blog-posts/internal/config"
	"github.com/txbm/blog-posts/internal/log"
)

const nginxPath = "/etc/nginx/nginx.conf"

func main() {
	log.Setup("INFO")
	logger := log.WithExample("clone")

	cfg := config.Config{
		Path:    nginxPath,
		Include: []string{"conf.d/default.conf"},
	}

	// The clone moves into SaveVersion; cfg itself stays with main.
	version1 := config.SaveVersion(cfg.Clone())

	if version1.Version != 1 {
		logger.Error("unexpected version", "version", version1.Version)
		os.Exit(1)
	}
	if version1.Obj.Path != nginxPath {
		logger.Error("path did not survive the transfer", "path", version1.Obj.Path)
		os.Exit(1)
	}

	// main still owns cfg: same content as the snapshot, independent memory.
	original, err := cfg.Fingerprint()
	if err != nil {
		logger.Error("fingerprint failed", "error", err)
		os.Exit(1)
	}
	snapshot, err := version1.Obj.Fingerprint()
	if err != nil {
		logger.Error("fingerprint failed", "error", err)
		os.Exit(1)
	}
	if original != snapshot {
		logger.Error("clone diverged from original", "original", original, "snapshot", snapshot)
		os.Exit(1)
	}

	logger.Info("snapshot captured from clone", "fingerprint", original, "path", cfg.Path)
}
