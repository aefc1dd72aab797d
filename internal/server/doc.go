// Package server は、3DオブジェクトプレイグラウンドのページとAPIを配信します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 埋め込みテンプレートからのページ生成、シーン構築APIを担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - GET / でのページ（マークアップ + スクリプト）の配信
//   - シーン構築結果のJSON配信
//   - OpenAPI定義によるリクエスト検証
//
// 仕様:
//   - ルーティングは gin を使用
//   - ページはテンプレートから起動時に1度だけ生成する
//   - グレースフルシャットダウンに対応
//   - リクエスト毎に新しいコントローラを作るため、リクエスト間で状態を共有しない
package server
