// Package static 静的ファイル配信の基盤を担う
//
// # 責務
// - 配信ルートディレクトリの決定（実行ファイルの所在ディレクトリ基準）
// - 作業ディレクトリの切り替え
// - net/http 標準のファイルサーバーの提供
//
// # 使い分け
// このパッケージは以下の場合に使用する：
// - 実行ファイルと同じ場所のファイルを配信したい
// - 起動場所に依存しない相対パス解決が必要
//
// # 仕様
// - パス解決・MIMEタイプ判定・ディレクトリ一覧・404応答は net/http の既定動作に委ねる
// - ルート未指定時は実行ファイルの置かれているディレクトリを配信する
// - シンボリックリンク経由で起動された場合はリンク先の実体の場所を使う
package static
