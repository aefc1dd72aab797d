// Package scene は3Dオブジェクトプレイグラウンドのシーンモデルを提供する
//
// # 責務
// - 形状種別（ShapeKind）とシーンパラメータ（Params）の定義
// - パラメータからメッシュまたはグループを構築する純粋関数 Build
// - 現在のオブジェクトを1つだけ保持するコントローラ（Controller）
// - フレーム毎の回転の加算
//
// # 使い分け
// ブラウザ側のスクリプトと同じ構築規則をGoで表現したもの。
// レンダリング面を持たないため、構築結果をそのまま検証できる。
// HTTP APIはこのパッケージで構築した結果をJSONで返す。
//
// # 仕様
//   - 形状は13種類。未知の種別は立方体にフォールバックする
//   - 入れ子形状（3種類）は2つの子を持つグループになる
//   - 回転はフレーム毎に X, Y 軸へ rotationSpeed * 0.01 ずつ加算
//   - Controller はスレッドセーフではない（単一スレッドでの利用を前提）
package scene
