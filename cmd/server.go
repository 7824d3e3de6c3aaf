// Package main はEngawaサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"engawa/internal/browser"
	"engawa/internal/config"
	"engawa/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host      = flag.String("host", "", "サーバーのホスト (デフォルト: すべてのインターフェース)")
		port      = flag.Int("port", 0, "サーバーのポート (デフォルト: 8000)")
		dir       = flag.String("dir", "", "配信ディレクトリ (デフォルト: 実行ファイルのディレクトリ)")
		noBrowser = flag.Bool("no-browser", false, "ブラウザの自動起動を無効化")
		help      = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Engawa - 開発用静的ファイルサーバー")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dir != "" {
		cfg.Static.Root = *dir
	}
	if *noBrowser {
		cfg.Browser.Open = false
	}

	// サーバーを作成
	srv := server.New(cfg, browser.NewDefaultOpener())

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("Engawa サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
