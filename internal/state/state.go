package state

import (
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
)

// State is what the services and route mounts share at runtime.
type State struct {
	DB     db.DB
	Config config.Configuration
}
