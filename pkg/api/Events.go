package api

import (
	"github.com/gin-gonic/gin"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/wss"
	"go.uber.org/zap"
)

// Events upgrades the request into an event link that forwards completion events to the peer
// and delivers the peer's requests to the backend bus.
func (a *Api) Events(c *gin.Context) {
	link, err := wss.Accept(c.Writer, c.Request, a.Bus, backend.Outbound)

	if err != nil {
		logger.Log.Error("failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	a.Hub.Add(link)
	defer a.Hub.Remove(link)

	err = link.Run(a.ctx)

	if err != nil {
		logger.Log.Warn("event link ended", zap.String("link", link.ID), zap.Error(err))
	}
}
