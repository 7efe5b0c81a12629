package web

import (
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/gateway"
	"github.com/sidereusnuntius/commune/internal/service"
)

const (
	SharedInboxRoute = "/inbox"
	RequestIDHeader  = "X-Request-Id"
)

type Handler struct {
	Config  *config.Configuration
	service service.Service
	gateway gateway.FedGateway
}

func New(config *config.Configuration, service service.Service, gateway gateway.FedGateway) Handler {
	return Handler{
		Config:  config,
		service: service,
		gateway: gateway,
	}
}
