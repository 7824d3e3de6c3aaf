package static

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// TestResolveExplicitRoot は明示的に指定したルートの解決をテストする
func TestResolveExplicitRoot(t *testing.T) {
	dir := t.TempDir()

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("ルートの解決に失敗しました: %v", err)
	}

	if !filepath.IsAbs(resolved) {
		t.Errorf("解決されたルートが絶対パスではありません: %s", resolved)
	}

	// 同じディレクトリを指しているか確認
	wantInfo, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Statに失敗しました: %v", err)
	}
	gotInfo, err := os.Stat(resolved)
	if err != nil {
		t.Fatalf("Statに失敗しました: %v", err)
	}
	if !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("解決されたルートが指定ディレクトリと一致しません: got %s, want %s", resolved, dir)
	}
}

// TestResolveErrors はルート解決の異常系をテストする
func TestResolveErrors(t *testing.T) {
	// 存在しないディレクトリ
	if _, err := Resolve(filepath.Join(t.TempDir(), "no-such-dir")); err == nil {
		t.Error("存在しないディレクトリでエラーが期待されました")
	}

	// ディレクトリではなくファイル
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}
	if _, err := Resolve(file); err == nil {
		t.Error("通常ファイルの指定でエラーが期待されました")
	}
}

// TestResolveDefault はルート未指定時に実行ファイルのディレクトリが返ることをテストする
func TestResolveDefault(t *testing.T) {
	resolved, err := Resolve("")
	if err != nil {
		t.Fatalf("ルートの解決に失敗しました: %v", err)
	}

	if !filepath.IsAbs(resolved) {
		t.Errorf("解決されたルートが絶対パスではありません: %s", resolved)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		t.Fatalf("解決されたルートが参照できません: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("解決されたルートがディレクトリではありません: %s", resolved)
	}
}

// TestChangeTo は作業ディレクトリの変更をテストする
func TestChangeTo(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("現在の作業ディレクトリの取得に失敗しました: %v", err)
	}
	defer func() {
		_ = os.Chdir(orig)
	}()

	dir := t.TempDir()
	if err := ChangeTo(dir); err != nil {
		t.Fatalf("作業ディレクトリの変更に失敗しました: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("作業ディレクトリの取得に失敗しました: %v", err)
	}

	// シンボリックリンクを考慮して同一ディレクトリか確認
	wdInfo, err := os.Stat(wd)
	if err != nil {
		t.Fatalf("Statに失敗しました: %v", err)
	}
	dirInfo, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Statに失敗しました: %v", err)
	}
	if !os.SameFile(wdInfo, dirInfo) {
		t.Errorf("作業ディレクトリが一致しません: got %s, want %s", wd, dir)
	}

	// 存在しないディレクトリへの変更はエラー
	if err := ChangeTo(filepath.Join(dir, "missing")); err == nil {
		t.Error("存在しないディレクトリへの変更でエラーが期待されました")
	}
}

// TestHandler はファイル配信ハンドラが net/http の既定動作で応答することをテストする
func TestHandler(t *testing.T) {
	dir := t.TempDir()
	content := []byte("<html><body>hello</body></html>")
	if err := os.WriteFile(filepath.Join(dir, "page.html"), content, 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	h := Handler(dir)

	// 存在するファイル
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page.html", nil))

	resp := w.Result()
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("予期しないステータスコード: got %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("レスポンスボディの読み込みに失敗しました: %v", err)
	}
	if string(body) != string(content) {
		t.Errorf("レスポンスボディがファイル内容と一致しません: got %q", body)
	}

	// 存在しないファイルは404
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing.html", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("予期しないステータスコード: got %d, want %d", w.Code, http.StatusNotFound)
	}
}
