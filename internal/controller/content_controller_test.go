package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewContentController()
	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/events", ctrl.GetEvents)
	api.GET("/blog", ctrl.GetPosts)
	api.GET("/blog/:slug", ctrl.GetPost)
	api.GET("/members", ctrl.GetMembers)
	api.GET("/testimonials", ctrl.GetTestimonials)
	api.GET("/stats", ctrl.GetStats)
	return r
}

func TestGetEventsFiltered(t *testing.T) {
	r := newContentRouter()

	w := getJSON(t, r, "/api/v1/events?featured=true")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	events := resp.Data.([]any)
	assert.Len(t, events, 3)

	w = getJSON(t, r, "/api/v1/events?type=hackathon")
	resp = decodeEnvelope(t, w)
	events = resp.Data.([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "Spring Hackathon 2024", events[0].(map[string]any)["title"])
}

func TestGetPostBySlugEndpoint(t *testing.T) {
	r := newContentRouter()

	w := getJSON(t, r, "/api/v1/blog/python-pandas-data-analysis-guide")
	require.Equal(t, http.StatusOK, w.Code)
	post := dataAsMap(t, w)
	assert.Equal(t, "Jane Smith", post["authorName"])

	w = getJSON(t, r, "/api/v1/blog/missing-post")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStatsEndpoint(t *testing.T) {
	r := newContentRouter()
	w := getJSON(t, r, "/api/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)
	stats := dataAsMap(t, w)
	assert.Equal(t, float64(1247), stats["totalMembers"])
}
