package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setNoCacheHeaders は h にキャッシュ抑止ヘッダーを設定する
func setNoCacheHeaders(h http.Header) {
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// noCacheWriter はステータス書き込みの直前にキャッシュ抑止ヘッダーを設定し直すResponseWriter
// net/httpのFileServerはエラー応答を書く前にCache-Controlを削除するため、
// 事前設定だけでは404などの応答からヘッダーが失われる
type noCacheWriter struct {
	gin.ResponseWriter
}

// WriteHeader はキャッシュ抑止ヘッダーを設定してからステータスを書き込む
func (w *noCacheWriter) WriteHeader(code int) {
	setNoCacheHeaders(w.Header())
	w.ResponseWriter.WriteHeader(code)
}

// noCache は全レスポンスにキャッシュ抑止ヘッダーを付与するミドルウェア
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的なステータス書き込みを経ない応答のため、事前にも設定しておく
		setNoCacheHeaders(c.Writer.Header())
		c.Writer = &noCacheWriter{ResponseWriter: c.Writer}

		c.Next()
	}
}

// requestLogger はリクエストログを出力するミドルウェア
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf("%s %s %s %d %s",
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start))
	}
}
