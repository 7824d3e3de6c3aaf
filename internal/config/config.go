package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Static  StaticConfig  `yaml:"static"`
	Browser BrowserConfig `yaml:"browser"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト（空文字列は全インターフェース）
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	// 配信ルートディレクトリ
	// 空の場合は実行ファイルの置かれているディレクトリを配信する
	Root string `yaml:"root"`
}

// BrowserConfig は起動時のブラウザ自動起動の設定
type BrowserConfig struct {
	Open bool   `yaml:"open"` // 起動時にブラウザを開くかどうか
	Path string `yaml:"path"` // ブラウザで開くパス（例: /index.html）
}

// Load は設定を読み込む
// デフォルト値を環境変数で上書きできるシンプルな実装
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", ""),
			Port:         getEnvAsIntOrDefault("SERVER_PORT", 8000),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // 大きなファイルの配信のためタイムアウト無効化
		},
		Static: StaticConfig{
			Root: getEnvOrDefault("SERVE_ROOT", ""),
		},
		Browser: BrowserConfig{
			Open: getEnvAsBoolOrDefault("OPEN_BROWSER", true),
			Path: getEnvOrDefault("BROWSER_PATH", "/index.html"),
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// ブラウザ設定の検証
	if !strings.HasPrefix(c.Browser.Path, "/") {
		return fmt.Errorf("無効なブラウザパス: %s", c.Browser.Path)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BrowserURL は起動時にブラウザで開くURLを返す
// リッスンホストに関わらずループバック経由のURLを使う
func (c *Config) BrowserURL() string {
	return fmt.Sprintf("http://localhost:%d%s", c.Server.Port, c.Browser.Path)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault は環境変数を真偽値として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
