package browser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMockOpener はモックOpenerの記録動作をテストする
func TestMockOpener(t *testing.T) {
	opener := NewMockOpener()

	if err := opener.Open("http://localhost:8000/index.html"); err != nil {
		t.Fatalf("予期しないエラーが発生しました: %v", err)
	}
	if err := opener.Open("http://localhost:8000/test.html"); err != nil {
		t.Fatalf("予期しないエラーが発生しました: %v", err)
	}

	want := []string{
		"http://localhost:8000/index.html",
		"http://localhost:8000/test.html",
	}
	if diff := cmp.Diff(want, opener.OpenedURLs()); diff != "" {
		t.Errorf("記録されたURLが一致しません (-want +got):\n%s", diff)
	}
}

// TestMockOpenerError はモックOpenerのエラー注入をテストする
func TestMockOpenerError(t *testing.T) {
	opener := NewMockOpener()
	opener.SetError(errors.New("ブラウザが見つかりません"))

	if err := opener.Open("http://localhost:8000/"); err == nil {
		t.Error("エラーが期待されましたが、エラーが発生しませんでした")
	}

	// エラーでも呼び出しは記録される
	if len(opener.OpenedURLs()) != 1 {
		t.Errorf("呼び出しが記録されていません: got %d, want 1", len(opener.OpenedURLs()))
	}
}

// TestNewDefaultOpener はデフォルトOpenerの生成をテストする
// 実際のブラウザ起動は環境依存のためここでは行わない
func TestNewDefaultOpener(t *testing.T) {
	if opener := NewDefaultOpener(); opener == nil {
		t.Fatal("Openerがnilです")
	}
}
