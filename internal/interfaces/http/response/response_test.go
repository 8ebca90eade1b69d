package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			write:      OK,
			wantStatus: http.StatusOK,
			wantBody:   `{"code":0,"message":"success","data":"ok"}`,
		},
		{
			name:       "成功带数据",
			write:      func(c *gin.Context) { Success(c, gin.H{"ships": 2}) },
			wantStatus: http.StatusOK,
			wantBody:   `{"code":0,"message":"success","data":{"ships":2}}`,
		},
		{
			name:       "错误",
			write:      func(c *gin.Context) { Error(c, http.StatusNotFound, CodeNotFound, "Ship (A) not found") },
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":100002,"message":"Ship (A) not found"}`,
		},
		{
			name: "错误带详情",
			write: func(c *gin.Context) {
				ErrorWithDetail(c, http.StatusBadRequest, CodeInvalidParam, "invalid heartbeat", "max_offline")
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":100001,"message":"invalid heartbeat","detail":"max_offline"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
