package scene

import "github.com/go-gl/mathgl/mgl32"

// LightType は光源の種類
type LightType string

const (
	LightAmbient LightType = "AmbientLight"
	LightPoint   LightType = "PointLight"
)

// Light は光源。オブジェクトとしては数えない
type Light struct {
	Type      LightType  `json:"type"`
	Color     Color      `json:"color"`
	Intensity float32    `json:"intensity"`
	Distance  float32    `json:"distance,omitempty"` // PointLight のみ
	Position  mgl32.Vec3 `json:"position"`
}

// Camera は透視投影カメラ
type Camera struct {
	FOV      float32    `json:"fov"` // 垂直画角（度）
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
	Position mgl32.Vec3 `json:"position"`
}

// Projection はアスペクト比を指定して投影行列を返す
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// View はカメラから原点を見るビュー行列を返す
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Scene はシーングラフのルート。カメラと光源は固定
type Scene struct {
	Camera Camera
	Lights []Light

	root *Node
}

// New はページと同じカメラと光源を持つ空のシーンを作成する
func New() *Scene {
	return &Scene{
		Camera: Camera{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: mgl32.Vec3{0, 0, 10},
		},
		Lights: []Light{
			{Type: LightAmbient, Color: Color{R: 0x60, G: 0x60, B: 0x60}, Intensity: 0.8},
			{Type: LightPoint, Color: Color{R: 0xff, G: 0xff, B: 0xff}, Intensity: 1, Distance: 100, Position: mgl32.Vec3{5, 5, 5}},
		},
		root: newNode(NodeGroup),
	}
}

// Add はトップレベルのオブジェクトを追加する
func (s *Scene) Add(n *Node) {
	s.root.Add(n)
}

// Remove はトップレベルのオブジェクトを外す
func (s *Scene) Remove(n *Node) bool {
	return s.root.Remove(n)
}

// Contains はオブジェクトがトップレベルに存在するか返す
func (s *Scene) Contains(n *Node) bool {
	for _, c := range s.root.children {
		if c == n {
			return true
		}
	}
	return false
}

// Objects はトップレベルのオブジェクト一覧を返す
func (s *Scene) Objects() []*Node {
	return s.root.Children()
}
