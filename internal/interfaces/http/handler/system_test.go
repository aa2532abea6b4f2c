package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/interfaces/http/dto"
)

func newSystemTestServer() *gin.Engine {
	h := NewSystemHandler()
	r := gin.New()
	r.GET("/system/info", h.GetSystemInfo)
	r.GET("/system/ping", h.Ping)
	return r
}

func TestSystemHandler(t *testing.T) {
	server := newSystemTestServer()

	tests := []struct {
		name   string
		path   string
		verify func(t *testing.T, data map[string]interface{})
	}{
		{
			name: "info reports service identity and uptime",
			path: "/system/info",
			verify: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, "Farm Management API", data["name"])
				assert.Equal(t, "1.0.0", data["version"])
				assert.Contains(t, data["go_version"], "go")
				assert.NotEmpty(t, data["uptime"])
			},
		},
		{
			name: "ping answers pong with a parseable timestamp",
			path: "/system/ping",
			verify: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, "pong", data["message"])
				ts, ok := data["timestamp"].(string)
				require.True(t, ok)
				_, err := time.Parse(time.RFC3339, ts)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.True(t, resp.Success)

			data, ok := resp.Data.(map[string]interface{})
			require.True(t, ok)
			tt.verify(t, data)
		})
	}
}
