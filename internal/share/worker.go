package share

import (
	"github.com/google/uuid"

	"github.com/txbm/blog-posts/internal/config"
)

// Worker holds a read-only, refcounted view of the service configuration.
// Any number of workers alias the same underlying record.
type Worker struct {
	ID     string
	Config *Handle[config.Config]
}

// SpawnWorkers builds n workers, each retaining its own handle to the one
// configuration allocation. Cost per worker is a uuid and one refcount
// increment; the record itself is never duplicated.
func SpawnWorkers(h *Handle[config.Config], n int) []Worker {
	workers := make([]Worker, 0, n)
	for i := 0; i < n; i++ {
		workers = append(workers, Worker{
			ID:     uuid.NewString(),
			Config: h.Retain(),
		})
	}
	return workers
}
