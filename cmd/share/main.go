// Sharing: the record is too large to clone per worker, so it goes behind a
// refcounted read-only handle. A hundred workers then cost a hundred
// refcount increments against one heap allocation.
package main

import (
	"os"

	"github.com/txbm/blog-posts/internal/config"
	"github.com/txbm/blog-posts/internal/log"
	"github.com/txbm/blog-posts/internal/share"
)

const workerCount = 100

func main() {
	log.Setup("INFO")
	logger := log.WithExample("share")

	cfg := config.Config{
		Path:     "/etc/nginx/nginx.conf",
		Reserved: make([]string, 0, config.ReserveCapacity),
	}

	// Share consumes cfg; from here the handle is the only access path.
	handle := share.Share(cfg)

	workers := share.SpawnWorkers(handle, workerCount)

	if got := handle.Refs(); got != workerCount+1 {
		logger.Error("unexpected reference count", "refs", got, "want", workerCount+1)
		os.Exit(1)
	}

	// One allocation behind every worker: identical capacity metadata and
	// pairwise equal contents.
	first, second := workers[0].Config.Value(), workers[1].Config.Value()
	if cap(first.Reserved) != cap(second.Reserved) {
		logger.Error("workers disagree on capacity",
			"first", cap(first.Reserved), "second", cap(second.Reserved))
		os.Exit(1)
	}
	if !config.Equal(first, second) {
		logger.Error("workers disagree on config contents")
		os.Exit(1)
	}
	if first != second {
		logger.Error("workers hold separate allocations; sharing deep-copied")
		os.Exit(1)
	}

	logger.Info("workers sharing one config",
		"workers", len(workers), "refs", handle.Refs(), "capacity", cap(first.Reserved))
}
