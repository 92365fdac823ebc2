// Moving into a task: the HTTP client is consumed by the spawned unit of
// work at submission. The submitting context keeps only the task handle;
// the client binding is dead the moment the task is created.
package main

import (
	"context"
	"os"

	"github.com/txbm/blog-posts/internal/fetch"
	"github.com/txbm/blog-posts/internal/log"
	"github.com/txbm/blog-posts/internal/own"
	"github.com/txbm/blog-posts/internal/task"
)

func main() {
	log.Setup("INFO")
	logger := log.WithExample("fetch")
	ctx := context.Background()

	cell := own.New("client", fetch.New())

	// The client moves out of the cell and into the closure. Any later use
	// of cell panics with a moved-from diagnostic.
	client := cell.Take()
	probe := task.Go(ctx, func(ctx context.Context) (int, error) {
		return client.Get(ctx, fetch.DefaultURL)
	})

	// Suspend until the task completes. A network failure is fatal; there
	// is no retry path.
	status, err := probe.Await(ctx)
	if err != nil {
		logger.Error("probe failed", "url", fetch.DefaultURL, "error", err)
		os.Exit(1)
	}

	logger.Info("probe complete", "url", fetch.DefaultURL, "status", status)
}
