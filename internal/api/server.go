package api

import (
	"viralgenix/internal/config"
	"viralgenix/internal/database"
	"viralgenix/internal/generator"
	"viralgenix/internal/websocket"
)

type Server struct {
	config     *config.Config
	store      *database.PostgresStore
	genService *generator.Service
	wsHub      *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.PostgresStore, genService *generator.Service, wsHub *websocket.Hub) *Server {
	return &Server{
		config:     cfg,
		store:      store,
		genService: genService,
		wsHub:      wsHub,
	}
}
