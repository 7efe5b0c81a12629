package core

import (
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/service"
	"github.com/sidereusnuntius/commune/internal/state"
)

const BcryptCost = 10

type AppService struct {
	Config config.Configuration
	DB     db.DB
}

func New(state state.State) service.Service {
	return &AppService{
		Config: state.Config,
		DB:     state.DB,
	}
}
