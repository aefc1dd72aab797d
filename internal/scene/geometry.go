package scene

import "math"

// Geometry は形状の頂点・トポロジ記述。パラメータの意味は three.js r128 に合わせる
type Geometry interface {
	// Type は three.js のジオメトリ名を返す（例: "BoxGeometry"）
	Type() string
	// BoundingRadius は原点中心の外接球の半径を返す
	BoundingRadius() float32
}

// BoxGeometry は直方体
type BoxGeometry struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Depth  float32 `json:"depth"`
}

func (g BoxGeometry) Type() string { return "BoxGeometry" }

func (g BoxGeometry) BoundingRadius() float32 {
	return float32(math.Sqrt(float64(g.Width*g.Width+g.Height*g.Height+g.Depth*g.Depth))) / 2
}

// SphereGeometry は球
type SphereGeometry struct {
	Radius         float32 `json:"radius"`
	WidthSegments  int     `json:"widthSegments"`
	HeightSegments int     `json:"heightSegments"`
}

func (g SphereGeometry) Type() string { return "SphereGeometry" }

func (g SphereGeometry) BoundingRadius() float32 { return g.Radius }

// CylinderGeometry は円柱
type CylinderGeometry struct {
	RadiusTop      float32 `json:"radiusTop"`
	RadiusBottom   float32 `json:"radiusBottom"`
	Height         float32 `json:"height"`
	RadialSegments int     `json:"radialSegments"`
}

func (g CylinderGeometry) Type() string { return "CylinderGeometry" }

func (g CylinderGeometry) BoundingRadius() float32 {
	r := max(g.RadiusTop, g.RadiusBottom)
	h := g.Height / 2
	return float32(math.Sqrt(float64(r*r + h*h)))
}

// ConeGeometry は円錐
type ConeGeometry struct {
	Radius         float32 `json:"radius"`
	Height         float32 `json:"height"`
	RadialSegments int     `json:"radialSegments"`
}

func (g ConeGeometry) Type() string { return "ConeGeometry" }

func (g ConeGeometry) BoundingRadius() float32 {
	h := g.Height / 2
	return float32(math.Sqrt(float64(g.Radius*g.Radius + h*h)))
}

// TorusGeometry はトーラス。Radius は中心からチューブ中心までの距離
type TorusGeometry struct {
	Radius          float32 `json:"radius"`
	Tube            float32 `json:"tube"`
	RadialSegments  int     `json:"radialSegments"`
	TubularSegments int     `json:"tubularSegments"`
}

func (g TorusGeometry) Type() string { return "TorusGeometry" }

func (g TorusGeometry) BoundingRadius() float32 { return g.Radius + g.Tube }

// TorusKnotGeometry はトーラス結び目（p=2, q=3）
type TorusKnotGeometry struct {
	Radius          float32 `json:"radius"`
	Tube            float32 `json:"tube"`
	TubularSegments int     `json:"tubularSegments"`
	RadialSegments  int     `json:"radialSegments"`
}

func (g TorusKnotGeometry) Type() string { return "TorusKnotGeometry" }

func (g TorusKnotGeometry) BoundingRadius() float32 { return g.Radius + g.Tube }

// PolyhedronKind は正多面体の種類
type PolyhedronKind string

const (
	Tetrahedron  PolyhedronKind = "Tetrahedron"
	Octahedron   PolyhedronKind = "Octahedron"
	Dodecahedron PolyhedronKind = "Dodecahedron"
	Icosahedron  PolyhedronKind = "Icosahedron"
)

// PolyhedronGeometry は外接球半径で指定する正多面体
type PolyhedronGeometry struct {
	Kind   PolyhedronKind `json:"kind"`
	Radius float32        `json:"radius"`
	Detail int            `json:"detail"`
}

func (g PolyhedronGeometry) Type() string { return string(g.Kind) + "Geometry" }

func (g PolyhedronGeometry) BoundingRadius() float32 { return g.Radius }

// Faces は detail 0 での面数を返す
func (g PolyhedronGeometry) Faces() int {
	switch g.Kind {
	case Tetrahedron:
		return 4
	case Octahedron:
		return 8
	case Dodecahedron:
		return 12
	case Icosahedron:
		return 20
	default:
		return 0
	}
}

// CharacteristicSize は形状の代表寸法（立方体は辺の長さ、それ以外は半径）を返す
func CharacteristicSize(g Geometry) float32 {
	switch g := g.(type) {
	case BoxGeometry:
		return g.Width
	case SphereGeometry:
		return g.Radius
	case CylinderGeometry:
		return g.RadiusBottom
	case ConeGeometry:
		return g.Radius
	case TorusGeometry:
		return g.Radius
	case TorusKnotGeometry:
		return g.Radius
	case PolyhedronGeometry:
		return g.Radius
	default:
		return 0
	}
}

// 分割数は元のページと同じ
const (
	sphereSegments      = 32
	cylinderSegments    = 32
	torusRadialSegments = 16
	torusTubularSegs    = 100
	knotTubularSegments = 100
	knotRadialSegments  = 16
)

func newBox(size float32) Geometry {
	return BoxGeometry{Width: size, Height: size, Depth: size}
}

func newSphere(radius float32) Geometry {
	return SphereGeometry{Radius: radius, WidthSegments: sphereSegments, HeightSegments: sphereSegments}
}

func newCylinder(size float32) Geometry {
	return CylinderGeometry{RadiusTop: size, RadiusBottom: size, Height: size * 2, RadialSegments: cylinderSegments}
}

func newCone(size float32) Geometry {
	return ConeGeometry{Radius: size, Height: size * 2, RadialSegments: cylinderSegments}
}

func newTorus(size float32) Geometry {
	return TorusGeometry{Radius: size, Tube: size / 3, RadialSegments: torusRadialSegments, TubularSegments: torusTubularSegs}
}

func newTorusKnot(size float32) Geometry {
	return TorusKnotGeometry{Radius: size, Tube: size / 4, TubularSegments: knotTubularSegments, RadialSegments: knotRadialSegments}
}

func newPolyhedron(kind PolyhedronKind) func(float32) Geometry {
	return func(radius float32) Geometry {
		return PolyhedronGeometry{Kind: kind, Radius: radius, Detail: 0}
	}
}
