package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// NodeType はシーンノードの種類
type NodeType string

const (
	NodeMesh  NodeType = "mesh"
	NodeGroup NodeType = "group"
)

// MaterialType はマテリアルの種類
type MaterialType string

const (
	MaterialPhong MaterialType = "MeshPhongMaterial" // 光源の影響を受ける
	MaterialBasic MaterialType = "MeshBasicMaterial" // 光源の影響を受けない
)

// Material はメッシュの見た目
type Material struct {
	Type        MaterialType `json:"type"`
	Color       Color        `json:"color"`
	Opacity     float32      `json:"opacity"`
	Transparent bool         `json:"transparent"`
	Wireframe   bool         `json:"wireframe"`
}

// Node はメッシュまたはグループ。グループは子ノードをまとめて変換する
type Node struct {
	ID       uuid.UUID
	Type     NodeType
	Geometry Geometry  // メッシュのみ
	Material *Material // メッシュのみ。入れ子形状では子同士で共有する

	Position mgl32.Vec3
	Rotation mgl32.Vec3 // XYZ順のオイラー角（ラジアン）
	Scale    mgl32.Vec3

	parent   *Node
	children []*Node
}

func newNode(t NodeType) *Node {
	return &Node{
		ID:    uuid.New(),
		Type:  t,
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// NewMesh はメッシュノードを作成する
func NewMesh(g Geometry, m *Material) *Node {
	n := newNode(NodeMesh)
	n.Geometry = g
	n.Material = m
	return n
}

// NewGroup は子ノードを持つグループを作成する
func NewGroup(children ...*Node) *Node {
	n := newNode(NodeGroup)
	for _, c := range children {
		n.Add(c)
	}
	return n
}

// Add は子ノードを追加する。既に親がある場合は先に外す
func (n *Node) Add(c *Node) {
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// Remove は子ノードを外す。子でなければ false を返す
func (n *Node) Remove(c *Node) bool {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Detach は親から自身を外す
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// Parent は親ノードを返す
func (n *Node) Parent() *Node {
	return n.parent
}

// Children は子ノードのコピーを返す
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetScale は全軸に同じスケールを設定する
func (n *Node) SetScale(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// Rotate はX軸とY軸に同じ量の回転を加える
func (n *Node) Rotate(delta float32) {
	n.Rotation[0] += delta
	n.Rotation[1] += delta
}

// Matrix はローカル変換行列（平行移動 * 回転 * スケール）を返す
func (n *Node) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl32.AnglesToQuat(n.Rotation.X(), n.Rotation.Y(), n.Rotation.Z(), mgl32.XYZ).Mat4()
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix は親をたどったワールド変換行列を返す
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Matrix().Mul4(m)
	}
	return m
}

// Walk は自身と子孫を深さ優先で訪問する
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
