package scene

// geometryFactories は単一メッシュになる種別のジオメトリ生成関数
var geometryFactories = map[ShapeKind]func(size float32) Geometry{
	KindCube:         newBox,
	KindSphere:       newSphere,
	KindCylinder:     newCylinder,
	KindCone:         newCone,
	KindTorus:        newTorus,
	KindTetrahedron:  newPolyhedron(Tetrahedron),
	KindOctahedron:   newPolyhedron(Octahedron),
	KindDodecahedron: newPolyhedron(Dodecahedron),
	KindIcosahedron:  newPolyhedron(Icosahedron),
	KindTorusKnot:    newTorusKnot,
}

// groupFactories は2つのメッシュからなるグループになる種別
var groupFactories = map[ShapeKind]func(size float32, m *Material) *Node{
	KindNestedSphereCube: buildNestedSphereCube,
	KindNestedTetraOcta:  buildNestedTetraOcta,
	KindNestedCutout:     buildNestedCutout,
}

// cutoutColor は切り抜き風の内側球の線の色
var cutoutColor = Color{}

// NewMaterial はパラメータから共有マテリアルを作成する
func NewMaterial(p Params) *Material {
	return &Material{
		Type:        MaterialPhong,
		Color:       p.Color,
		Opacity:     p.Opacity,
		Transparent: true,
		Wireframe:   p.Wireframe,
	}
}

// Build はパラメータから新しいトップレベルオブジェクトを構築する。
// 未知の種別は立方体になる。スケールと回転は既定値のまま
func Build(p Params) *Node {
	m := NewMaterial(p)

	if build, ok := groupFactories[p.Shape]; ok {
		return build(p.Size, m)
	}

	factory, ok := geometryFactories[p.Shape]
	if !ok {
		factory = newBox
	}
	return NewMesh(factory(p.Size), m)
}

func buildNestedSphereCube(size float32, m *Material) *Node {
	return NewGroup(
		NewMesh(newBox(size), m),
		NewMesh(newSphere(size/2), m),
	)
}

func buildNestedTetraOcta(size float32, m *Material) *Node {
	return NewGroup(
		NewMesh(newPolyhedron(Tetrahedron)(size), m),
		NewMesh(newPolyhedron(Octahedron)(size/2), m),
	)
}

// buildNestedCutout は切り抜きに見せるだけの重ね合わせで、ブーリアン演算はしない
func buildNestedCutout(size float32, m *Material) *Node {
	inner := &Material{
		Type:      MaterialBasic,
		Color:     cutoutColor,
		Opacity:   1,
		Wireframe: true,
	}
	return NewGroup(
		NewMesh(newBox(size), m),
		NewMesh(newSphere(size/1.5), inner),
	)
}
