// Package server は、静的ファイル配信用HTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、配信ルートの解決、
// キャッシュ抑止ヘッダーの付与、ブラウザの自動起動を担当します。
//
// 責務:
//   - HTTPサーバーのライフサイクル管理
//   - 配信ディレクトリ配下の静的ファイルの配信
//   - 全レスポンスへのキャッシュ抑止ヘッダーの付与
//   - リクエストログの出力
//   - 起動時の案内表示とブラウザの自動起動
//
// 仕様:
//   - ルーティングはginを使用し、未登録パスはすべて静的ファイルハンドラーに委譲
//   - ファイルの解決・MIMEタイプ・ディレクトリ一覧はnet/httpのFileServerに従う
//   - SIGINT/SIGTERM受信時にグレースフルシャットダウンを行う
//   - ポートが使用中の場合、起動はエラーとして失敗する
package server
