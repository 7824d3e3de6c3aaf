package static

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// Resolve は配信ルートディレクトリを決定する
// root が空文字列の場合、実行ファイルの置かれているディレクトリを返す
func Resolve(root string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("配信ディレクトリの解決に失敗: %w", err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("配信ディレクトリが利用できません: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("配信ディレクトリではありません: %s", abs)
		}

		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("実行ファイルのパス取得に失敗: %w", err)
	}

	// シンボリックリンク経由の起動でも実体の場所を配信する
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// ChangeTo は作業ディレクトリを dir に変更する
// 相対パスでのファイル解決が起動場所に依存しないようにするための処理
func ChangeTo(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("作業ディレクトリの変更に失敗: %w", err)
	}
	return nil
}

// Handler は dir 以下のファイルを配信するハンドラを返す
// ステータスコード・MIMEタイプ・ディレクトリ一覧は net/http の既定動作に従う
func Handler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
