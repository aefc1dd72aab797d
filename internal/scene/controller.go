package scene

// RebuildFunc は再構築のたびに呼ばれる。prev は外されたオブジェクト
type RebuildFunc func(prev, next *Node)

// Controller は現在のオブジェクトを1つだけ保持し、UIの変更とフレームを処理する。
// 並行利用には対応しない
type Controller struct {
	scene     *Scene
	params    Params
	current   *Node
	observers []RebuildFunc
}

// NewController は初期パラメータで最初のオブジェクトを同期的に構築する
func NewController(s *Scene, initial Params) *Controller {
	c := &Controller{scene: s}
	c.Apply(initial)
	return c
}

// OnRebuild は再構築時のコールバックを登録する
func (c *Controller) OnRebuild(fn RebuildFunc) {
	c.observers = append(c.observers, fn)
}

// Apply はパラメータを丸ごと置き換えてオブジェクトを再構築する。
// 古いオブジェクトは新しいものを追加する前にシーンから外す
func (c *Controller) Apply(p Params) *Node {
	prev := c.current
	if prev != nil {
		c.scene.Remove(prev)
	}

	next := Build(p)
	next.SetScale(p.Scale)
	c.scene.Add(next)

	c.params = p
	c.current = next

	for _, fn := range c.observers {
		fn(prev, next)
	}
	return next
}

// Tick は1フレーム分の回転を加える。オブジェクトがなければ何もしない
func (c *Controller) Tick() {
	if c.current == nil {
		return
	}
	c.current.Rotate(c.params.RotationSpeed * RotationStep)
}

// Advance は n フレーム進める
func (c *Controller) Advance(n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

// Current は現在のオブジェクトを返す
func (c *Controller) Current() *Node {
	return c.current
}

// Params は現在のパラメータを返す
func (c *Controller) Params() Params {
	return c.params
}

// Scene は管理対象のシーンを返す
func (c *Controller) Scene() *Scene {
	return c.scene
}
