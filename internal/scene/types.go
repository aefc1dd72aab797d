package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ShapeKind はドロップダウンで選択する形状の種別
type ShapeKind string

const (
	KindCube             ShapeKind = "cube"
	KindSphere           ShapeKind = "sphere"
	KindCylinder         ShapeKind = "cylinder"
	KindCone             ShapeKind = "cone"
	KindTorus            ShapeKind = "torus"
	KindTetrahedron      ShapeKind = "tetrahedron"
	KindOctahedron       ShapeKind = "octahedron"
	KindDodecahedron     ShapeKind = "dodecahedron"
	KindIcosahedron      ShapeKind = "icosahedron"
	KindTorusKnot        ShapeKind = "torusknot"
	KindNestedSphereCube ShapeKind = "nested_sphere_cube"
	KindNestedTetraOcta  ShapeKind = "nested_tetra_octa"
	KindNestedCutout     ShapeKind = "nested_cutout"
)

// kindLabels はドロップダウンの表示順とラベル
var kindLabels = []struct {
	kind  ShapeKind
	label string
}{
	{KindCube, "Cube"},
	{KindSphere, "Sphere"},
	{KindCylinder, "Cylinder"},
	{KindCone, "Cone"},
	{KindTorus, "Torus"},
	{KindTetrahedron, "Tetrahedron"},
	{KindOctahedron, "Octahedron"},
	{KindDodecahedron, "Dodecahedron"},
	{KindIcosahedron, "Icosahedron"},
	{KindTorusKnot, "Torus Knot"},
	{KindNestedSphereCube, "Nested Sphere in Cube"},
	{KindNestedTetraOcta, "Nested Tetrahedron in Octahedron"},
	{KindNestedCutout, "Cut-out Sphere in Cube"},
}

// Kinds は全ての形状種別を表示順で返す
func Kinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, len(kindLabels))
	for _, kl := range kindLabels {
		kinds = append(kinds, kl.kind)
	}
	return kinds
}

// Label は表示用のラベルを返す。未知の種別は種別名をそのまま返す
func (k ShapeKind) Label() string {
	for _, kl := range kindLabels {
		if kl.kind == k {
			return kl.label
		}
	}
	return string(k)
}

// Known は定義済みの種別かどうかを返す
func (k ShapeKind) Known() bool {
	for _, kl := range kindLabels {
		if kl.kind == k {
			return true
		}
	}
	return false
}

// Nested は2つの形状からなるグループ種別かどうかを返す
func (k ShapeKind) Nested() bool {
	switch k {
	case KindNestedSphereCube, KindNestedTetraOcta, KindNestedCutout:
		return true
	default:
		return false
	}
}

// Color はRGBカラー
type Color struct {
	R, G, B uint8
}

// ParseColor は "#rrggbb" または "#rgb" 形式の文字列を解析する
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("無効なカラー形式: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("無効なカラー形式: %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseColor はParseColorの失敗時にpanicする
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex は "#rrggbb" 形式の文字列を返す
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String は fmt.Stringer の実装
func (c Color) String() string {
	return c.Hex()
}

// MarshalText は encoding.TextMarshaler の実装
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText は encoding.TextUnmarshaler の実装
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// パラメータの範囲（UIのスライダーと同じ）
const (
	MinSize          = 0.5
	MaxSize          = 5
	MinRotationSpeed = 0
	MaxRotationSpeed = 5
	MinScale         = 0.5
	MaxScale         = 3
	MinOpacity       = 0.1
	MaxOpacity       = 1

	// RotationStep は rotationSpeed 1 あたりのフレーム毎回転量（ラジアン）
	RotationStep = 0.01
)

// Params はUIコントロールの現在値。変更時は常に丸ごと置き換える
type Params struct {
	Shape         ShapeKind `json:"shape" yaml:"shape"`
	Size          float32   `json:"size" yaml:"size"`
	RotationSpeed float32   `json:"rotationSpeed" yaml:"rotation_speed"`
	Scale         float32   `json:"scale" yaml:"scale"`
	Opacity       float32   `json:"opacity" yaml:"opacity"`
	Wireframe     bool      `json:"wireframe" yaml:"wireframe"`
	Color         Color     `json:"color" yaml:"color"`
}

// DefaultParams はページ読み込み時の初期値を返す
func DefaultParams() Params {
	return Params{
		Shape:         KindCube,
		Size:          1,
		RotationSpeed: 1,
		Scale:         1,
		Opacity:       1,
		Wireframe:     false,
		Color:         Color{R: 0xff, G: 0xa5, B: 0x00},
	}
}

// Validate はパラメータがUIの範囲内にあるか検証する。
// Build はこの検証を行わない
func (p Params) Validate() error {
	var errs []error
	if !p.Shape.Known() {
		errs = append(errs, fmt.Errorf("未知の形状種別: %q", p.Shape))
	}
	if p.Size < MinSize || p.Size > MaxSize {
		errs = append(errs, fmt.Errorf("サイズが範囲外です: %g", p.Size))
	}
	if p.RotationSpeed < MinRotationSpeed || p.RotationSpeed > MaxRotationSpeed {
		errs = append(errs, fmt.Errorf("回転速度が範囲外です: %g", p.RotationSpeed))
	}
	if p.Scale < MinScale || p.Scale > MaxScale {
		errs = append(errs, fmt.Errorf("スケールが範囲外です: %g", p.Scale))
	}
	if p.Opacity < MinOpacity || p.Opacity > MaxOpacity {
		errs = append(errs, fmt.Errorf("不透明度が範囲外です: %g", p.Opacity))
	}
	return errors.Join(errs...)
}
