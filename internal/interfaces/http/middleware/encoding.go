package middleware

import (
	"bytes"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// MaxBodyBytes 请求体上限，心跳请求只有几十字节
const MaxBodyBytes = 64 << 10

// EnsureUTF8Body 读取请求体并保证其为 UTF-8
// 船只主机名可能来自 GBK 终端（例如 Windows 下的 curl），无法按 UTF-8 解析时尝试按 GBK 转换
// 超过 MaxBodyBytes 的请求直接返回 413
func EnsureUTF8Body() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodyBytes+1))
		_ = c.Request.Body.Close()
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		if len(body) > MaxBodyBytes {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}

		body = normalizeUTF8(body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Request.ContentLength = int64(len(body))

		c.Next()
	}
}

// normalizeUTF8 返回 UTF-8 形式的请求体，转换失败时原样返回
func normalizeUTF8(body []byte) []byte {
	if utf8.Valid(body) {
		return body
	}
	converted, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), simplifiedchinese.GBK.NewDecoder()))
	if err != nil || !utf8.Valid(converted) {
		return body
	}
	return converted
}
