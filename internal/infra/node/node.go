package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Node identifies the running server instance in logs, traces and health checks.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

// Version and CommitHash are set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     Node
	currentOnce sync.Once
)

func GetNodeInfo() Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		current = Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			Version:    Version,
			CommitHash: CommitHash,
			StartedAt:  time.Now().UTC(),
		}
	})
	return current
}

func (n Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}
