package handler

import (
	"givego/backend/internal/chathub"
	"givego/backend/internal/config"
	"givego/backend/internal/ledger"
	"givego/backend/internal/storage"
)

// Handler wires the HTTP surface to the relay, the ledger and storage.
type Handler struct {
	Relay   *chathub.Relay
	Ledger  *ledger.Service
	Storage storage.Storage
	Cfg     *config.Config
}

func NewHandler(relay *chathub.Relay, l *ledger.Service, s storage.Storage, cfg *config.Config) *Handler {
	return &Handler{Relay: relay, Ledger: l, Storage: s, Cfg: cfg}
}
