package api

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/kre8/kre8/pkg/static"
	"net/http"
)

func (a *Api) Health(c *gin.Context) {
	health := Health{
		Links: a.Hub.Count(),
	}

	if a.Backend != nil {
		health.Loading = a.Backend.Loading().IsOpen()
	}

	data, _ := json.Marshal(health)

	c.JSON(http.StatusOK, &Response{
		HttpStatus:       http.StatusOK,
		Explanation:      static.RESPONSE_HEALTHY,
		ErrorExplanation: "",
		Error:            false,
		Success:          true,
		Data:             data,
	})
}

func (a *Api) DisplayVersion(c *gin.Context) {
	data, _ := json.Marshal(map[string]string{"version": a.Version})

	c.JSON(http.StatusOK, &Response{
		HttpStatus: http.StatusOK,
		Success:    true,
		Data:       data,
	})
}
