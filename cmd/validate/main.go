// Borrowing: checking a configuration record requires neither a copy nor
// exclusive control of it, so the predicate takes a read-only reference and
// main keeps ownership for the whole run.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/txbm/blog-posts/internal/config"
	"github.com/txbm/blog-posts/internal/log"
)

func main() {
	log.Setup("INFO")
	logger := log.WithExample("validate")

	// main owns cfg from here to process exit.
	cfg := config.Config{Path: "/etc/nginx/nginx.conf"}

	if !config.IsValid(&cfg) {
		color.Red("Invalid config")
		logger.Error("expected a valid config", "path", cfg.Path)
		os.Exit(1)
	}
	color.Green("Valid config")

	// The borrow ended when IsValid returned; cfg is still fully usable.
	logger.Info("done", "path", cfg.Path)
}
