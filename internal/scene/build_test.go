package scene

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

// TestBuildAllKinds は全種別で正しい形のオブジェクトが構築されることをテストする
func TestBuildAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := DefaultParams()
			p.Shape = kind
			p.Size = 2

			n := Build(p)
			if n == nil {
				t.Fatal("オブジェクトがnilです")
			}

			if kind.Nested() {
				if n.Type != NodeGroup {
					t.Fatalf("グループが期待されました: got %s", n.Type)
				}
				if got := len(n.Children()); got != 2 {
					t.Fatalf("子の数が一致しません: got %d, want 2", got)
				}
				return
			}

			if n.Type != NodeMesh {
				t.Fatalf("メッシュが期待されました: got %s", n.Type)
			}
			if n.Geometry == nil {
				t.Fatal("ジオメトリがnilです")
			}
			if len(n.Children()) != 0 {
				t.Error("メッシュに子があります")
			}
		})
	}
}

// TestBuildDispatchIsExhaustive は全種別がちょうど1つの生成表に登録されていることをテストする
func TestBuildDispatchIsExhaustive(t *testing.T) {
	for _, kind := range Kinds() {
		_, single := geometryFactories[kind]
		_, group := groupFactories[kind]
		if single == group {
			t.Errorf("種別 %s の登録が不正です (single=%v, group=%v)", kind, single, group)
		}
		if group != kind.Nested() {
			t.Errorf("種別 %s の Nested() と生成表が一致しません", kind)
		}
	}
	if got := len(geometryFactories) + len(groupFactories); got != len(Kinds()) {
		t.Errorf("生成表の件数が一致しません: got %d, want %d", got, len(Kinds()))
	}
}

// TestBuildGeometry は種別毎のジオメトリ寸法をテストする
func TestBuildGeometry(t *testing.T) {
	const size = 1.5

	testCases := []struct {
		kind     ShapeKind
		wantType string
		check    func(t *testing.T, g Geometry)
	}{
		{KindCube, "BoxGeometry", func(t *testing.T, g Geometry) {
			b := g.(BoxGeometry)
			if b.Width != size || b.Height != size || b.Depth != size {
				t.Errorf("辺の長さが不正です: %+v", b)
			}
		}},
		{KindSphere, "SphereGeometry", func(t *testing.T, g Geometry) {
			s := g.(SphereGeometry)
			if s.Radius != size || s.WidthSegments != 32 || s.HeightSegments != 32 {
				t.Errorf("球のパラメータが不正です: %+v", s)
			}
		}},
		{KindCylinder, "CylinderGeometry", func(t *testing.T, g Geometry) {
			c := g.(CylinderGeometry)
			if c.RadiusTop != size || c.RadiusBottom != size || c.Height != size*2 {
				t.Errorf("円柱のパラメータが不正です: %+v", c)
			}
		}},
		{KindCone, "ConeGeometry", func(t *testing.T, g Geometry) {
			c := g.(ConeGeometry)
			if c.Radius != size || c.Height != size*2 {
				t.Errorf("円錐のパラメータが不正です: %+v", c)
			}
		}},
		{KindTetrahedron, "TetrahedronGeometry", nil},
		{KindOctahedron, "OctahedronGeometry", nil},
		{KindDodecahedron, "DodecahedronGeometry", nil},
		{KindIcosahedron, "IcosahedronGeometry", nil},
		{KindTorusKnot, "TorusKnotGeometry", func(t *testing.T, g Geometry) {
			k := g.(TorusKnotGeometry)
			if k.Radius != size || !approxEqual(k.Tube, size/4) {
				t.Errorf("トーラス結び目のパラメータが不正です: %+v", k)
			}
		}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			n := Build(Params{Shape: tc.kind, Size: size, Scale: 1, Opacity: 1})
			if got := n.Geometry.Type(); got != tc.wantType {
				t.Fatalf("ジオメトリ種別が一致しません: got %s, want %s", got, tc.wantType)
			}
			if got := CharacteristicSize(n.Geometry); got != size {
				t.Errorf("代表寸法が一致しません: got %g, want %g", got, size)
			}
			if tc.check != nil {
				tc.check(t, n.Geometry)
			}
		})
	}
}

// TestBuildTorus はサイズ2のトーラスの寸法をテストする
func TestBuildTorus(t *testing.T) {
	p := DefaultParams()
	p.Shape = KindTorus
	p.Size = 2

	n := Build(p)
	torus, ok := n.Geometry.(TorusGeometry)
	if !ok {
		t.Fatalf("トーラスが期待されました: got %T", n.Geometry)
	}
	if torus.Radius != 2 {
		t.Errorf("リング半径が一致しません: got %g, want 2", torus.Radius)
	}
	if !approxEqual(torus.Tube, 0.6667) {
		t.Errorf("チューブ半径が一致しません: got %g, want 0.667", torus.Tube)
	}
	if torus.RadialSegments != 16 || torus.TubularSegments != 100 {
		t.Errorf("分割数が一致しません: %+v", torus)
	}
}

// TestBuildUnknownKindFallsBackToCube は未知の種別が立方体になることをテストする
func TestBuildUnknownKindFallsBackToCube(t *testing.T) {
	for _, kind := range []ShapeKind{"", "pyramid", "CUBE"} {
		n := Build(Params{Shape: kind, Size: 3, Scale: 1, Opacity: 1})
		box, ok := n.Geometry.(BoxGeometry)
		if !ok {
			t.Fatalf("%q: 立方体が期待されました: got %T", kind, n.Geometry)
		}
		if box.Width != 3 {
			t.Errorf("%q: 辺の長さが一致しません: got %g", kind, box.Width)
		}
	}
}

// TestBuildNested は入れ子形状の内側の寸法とマテリアルをテストする
func TestBuildNested(t *testing.T) {
	const size = 3

	testCases := []struct {
		name       string
		kind       ShapeKind
		outerType  string
		innerType  string
		innerSize  float32
		sharedMtl  bool
		innerWire  bool
		innerBasic bool
	}{
		{"球入り立方体", KindNestedSphereCube, "BoxGeometry", "SphereGeometry", size / 2.0, true, false, false},
		{"八面体入り四面体", KindNestedTetraOcta, "TetrahedronGeometry", "OctahedronGeometry", size / 2.0, true, false, false},
		{"切り抜き風", KindNestedCutout, "BoxGeometry", "SphereGeometry", size / 1.5, false, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			p.Shape = tc.kind
			p.Size = size

			g := Build(p)
			children := g.Children()
			if len(children) != 2 {
				t.Fatalf("子の数が一致しません: got %d", len(children))
			}
			outer, inner := children[0], children[1]

			if got := outer.Geometry.Type(); got != tc.outerType {
				t.Errorf("外側の種別が一致しません: got %s, want %s", got, tc.outerType)
			}
			if got := inner.Geometry.Type(); got != tc.innerType {
				t.Errorf("内側の種別が一致しません: got %s, want %s", got, tc.innerType)
			}
			if got := CharacteristicSize(outer.Geometry); got != size {
				t.Errorf("外側の寸法が一致しません: got %g, want %d", got, size)
			}
			if got := CharacteristicSize(inner.Geometry); !approxEqual(got, tc.innerSize) {
				t.Errorf("内側の寸法が一致しません: got %g, want %g", got, tc.innerSize)
			}
			if got := outer.Material == inner.Material; got != tc.sharedMtl {
				t.Errorf("マテリアル共有が一致しません: got %v, want %v", got, tc.sharedMtl)
			}
			if inner.Material.Wireframe != tc.innerWire {
				t.Errorf("内側のワイヤーフレームが一致しません: got %v", inner.Material.Wireframe)
			}
			if got := inner.Material.Type == MaterialBasic; got != tc.innerBasic {
				t.Errorf("内側のマテリアル種別が不正です: %s", inner.Material.Type)
			}
			if outer.Parent() != g || inner.Parent() != g {
				t.Error("子の親がグループではありません")
			}
		})
	}
}

// TestBuildCutoutInnerIsBlack は切り抜き風の内側が黒い線で描かれることをテストする
func TestBuildCutoutInnerIsBlack(t *testing.T) {
	p := DefaultParams()
	p.Shape = KindNestedCutout
	p.Color = MustParseColor("#123456")
	p.Wireframe = false

	inner := Build(p).Children()[1]
	if inner.Material.Color != (Color{}) {
		t.Errorf("内側の色が黒ではありません: %s", inner.Material.Color)
	}
}

// TestBuildMaterialMirrorsParams はマテリアルがパラメータをそのまま反映することをテストする
func TestBuildMaterialMirrorsParams(t *testing.T) {
	for _, kind := range Kinds() {
		for _, wire := range []bool{false, true} {
			p := DefaultParams()
			p.Shape = kind
			p.Opacity = 0.3
			p.Wireframe = wire
			p.Color = MustParseColor("#00ff7f")

			n := Build(p)
			mesh := n
			if n.Type == NodeGroup {
				mesh = n.Children()[0]
			}
			m := mesh.Material
			if m.Opacity != 0.3 || m.Wireframe != wire || m.Color != p.Color || !m.Transparent {
				t.Errorf("%s: マテリアルが一致しません: %+v", kind, *m)
			}
			if m.Type != MaterialPhong {
				t.Errorf("%s: マテリアル種別が一致しません: %s", kind, m.Type)
			}
		}
	}
}

// TestBuildLeavesTransformAtDefault はBuildが変換を既定値のままにすることをテストする
func TestBuildLeavesTransformAtDefault(t *testing.T) {
	p := DefaultParams()
	p.Scale = 2.5

	n := Build(p)
	if n.Scale.X() != 1 || n.Scale.Y() != 1 || n.Scale.Z() != 1 {
		t.Errorf("スケールが既定値ではありません: %v", n.Scale)
	}
	if n.Rotation.Len() != 0 {
		t.Errorf("回転が既定値ではありません: %v", n.Rotation)
	}
}
