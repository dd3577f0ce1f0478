package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/recipes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/recipes/:id", "404")
	before := testutil.ToFloat64(counter)

	serve(r, http.MethodGet, "/api/recipes/1", nil)
	serve(r, http.MethodGet, "/api/recipes/2", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(httpRequestsInFlight))
}
