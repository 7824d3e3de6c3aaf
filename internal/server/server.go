package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"engawa/internal/browser"
	"engawa/internal/config"
	"engawa/internal/static"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
	opener     browser.Opener
	root       string
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config, opener browser.Opener) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	return &Server{
		config: cfg,
		engine: engine,
		opener: opener,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	// 全レスポンス共通のミドルウェア
	s.engine.Use(requestLogger(), gin.Recovery(), noCache())

	// 未登録パスはすべて静的ファイルハンドラーに委譲する
	fileServer := static.Handler(s.root)
	s.engine.NoRoute(func(c *gin.Context) {
		// ginはNoRouteで404を事前設定するため、既定の200に戻してから委譲する
		c.Status(http.StatusOK)
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// printBanner は起動時の案内をログに出力する
// バインド成功後に呼び、接続できないURLを案内しないようにする
func (s *Server) printBanner() {
	log.Printf("配信ディレクトリ: %s", s.root)
	log.Printf("サーバーURL: http://localhost:%d/", s.config.Server.Port)
	log.Printf("アプリケーション: http://localhost:%d/index.html", s.config.Server.Port)
	log.Printf("動作確認用ページ: http://localhost:%d/test.html", s.config.Server.Port)
	log.Printf("デバッグ用ページ: http://localhost:%d/debug.html", s.config.Server.Port)
	log.Println("Ctrl+C でサーバーを停止します")
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// 配信ディレクトリを解決し、作業ディレクトリを移動する
	root, err := static.Resolve(s.config.Static.Root)
	if err != nil {
		return err
	}
	if err := static.ChangeTo(root); err != nil {
		return err
	}
	s.root = root

	// ルートを設定
	s.setupRoutes()

	log.Printf("HTTPサーバーを起動しています: %s", s.config.ServerAddress())

	// 先にバインドし、ポートが使用中の場合は即座に失敗させる
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("サーバーの起動に失敗: %w", err)
	}

	// 起動時の案内を表示
	s.printBanner()

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの稼働に失敗: %w", err)
		}
	}()

	// バインド成功後にブラウザを起動する。失敗は無視し、サーバーには影響させない
	if s.config.Browser.Open {
		go func() {
			_ = s.opener.Open(s.config.BrowserURL())
		}()
	}

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
