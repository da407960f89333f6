package api

import (
	"context"
	"encoding/json"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/wss"
)

type Api struct {
	Config  *configuration.Configuration
	Bus     *events.Bus
	Hub     *wss.Hub
	Backend *backend.Handler
	Version string
	ctx     context.Context
}

type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Error            bool
	Success          bool
	Data             json.RawMessage
}

type Health struct {
	Links   int  `json:"links"`
	Loading bool `json:"loading"`
}
