// Package browser は既定ブラウザの起動を担う
//
// 起動はベストエフォートであり、呼び出し側は失敗を無視してよい。
// サーバーの起動・稼働には一切影響させない。
package browser

import (
	"io"
	"sync"

	pkgbrowser "github.com/pkg/browser"
)

// Opener はURLを既定ブラウザで開くインターフェース
type Opener interface {
	// Open は url を既定ブラウザで開く
	Open(url string) error
}

// defaultOpener は pkg/browser を使うOpenerの実装
type defaultOpener struct{}

// NewDefaultOpener は新しいdefaultOpenerを作成する
func NewDefaultOpener() Opener {
	// 起動失敗は黙って無視する仕様のため、起動コマンドの出力も表示しない
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return &defaultOpener{}
}

// Open は url を既定ブラウザで開く
func (o *defaultOpener) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}

// MockOpener はテスト用のモックOpener実装
type MockOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

// NewMockOpener は新しいMockOpenerを作成する
func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

// Open は開いたURLを記録する
func (m *MockOpener) Open(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opened = append(m.opened, url)
	return m.err
}

// OpenedURLs は記録されたURL一覧を返す
func (m *MockOpener) OpenedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	// コピーを返す
	result := make([]string, len(m.opened))
	copy(result, m.opened)
	return result
}

// SetError はテスト用にOpenの戻り値となるエラーを設定する
func (m *MockOpener) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}
