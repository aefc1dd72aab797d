package server

import (
	"net/http"
	"time"

	"playground/internal/config"
	"playground/internal/scene"

	"github.com/gin-gonic/gin"
	"github.com/go-gl/mathgl/mgl32"
)

// PlaygroundHandler はページとAPIのハンドラ
type PlaygroundHandler struct {
	config *config.Config
	page   []byte
}

// ErrorResponse はエラー応答
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Details   *string   `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse はヘルスチェック応答
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ServerInfo はサーバーのリッスン情報
type ServerInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// StatusResponse はシステム状態応答
type StatusResponse struct {
	Status    string     `json:"status"`
	Server    ServerInfo `json:"server"`
	Shapes    int        `json:"shapes"`
	Timestamp time.Time  `json:"timestamp"`
}

// ShapeInfo は形状種別の情報
type ShapeInfo struct {
	Kind   scene.ShapeKind `json:"kind"`
	Label  string          `json:"label"`
	Nested bool            `json:"nested"`
}

// ShapesResponse は形状種別一覧の応答
type ShapesResponse struct {
	Shapes []ShapeInfo `json:"shapes"`
}

// SceneRequest はシーン構築リクエスト。省略した項目は設定の初期値を使う
type SceneRequest struct {
	Shape         *string  `json:"shape"`
	Size          *float32 `json:"size" binding:"omitempty,min=0.5,max=5"`
	RotationSpeed *float32 `json:"rotationSpeed" binding:"omitempty,min=0,max=5"`
	Scale         *float32 `json:"scale" binding:"omitempty,min=0.5,max=3"`
	Opacity       *float32 `json:"opacity" binding:"omitempty,min=0.1,max=1"`
	Wireframe     *bool    `json:"wireframe"`
	Color         *string  `json:"color" binding:"omitempty,hexcolor"`
}

// SceneQuery はシーン構築のクエリパラメータ
type SceneQuery struct {
	Frames int `form:"frames" binding:"min=0,max=10000"`
}

// GeometryResponse はジオメトリの種別とパラメータ
type GeometryResponse struct {
	Type   string         `json:"type"`
	Params scene.Geometry `json:"params"`
}

// ObjectResponse はシーンノードのJSON表現
type ObjectResponse struct {
	ID             string            `json:"id"`
	Type           scene.NodeType    `json:"type"`
	Geometry       *GeometryResponse `json:"geometry,omitempty"`
	Material       *scene.Material   `json:"material,omitempty"`
	Position       mgl32.Vec3        `json:"position"`
	Rotation       mgl32.Vec3        `json:"rotation"`
	Scale          mgl32.Vec3        `json:"scale"`
	BoundingRadius float32           `json:"boundingRadius"`
	Children       []ObjectResponse  `json:"children,omitempty"`
}

// SceneResponse はシーン構築の応答
type SceneResponse struct {
	Params scene.Params   `json:"params"`
	Object ObjectResponse `json:"object"`
	Camera scene.Camera   `json:"camera"`
	Lights []scene.Light  `json:"lights"`
}

// Index はページを返す
func (h *PlaygroundHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

// HealthCheck はヘルスチェックエンドポイントの実装
func (h *PlaygroundHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// GetStatus はシステム状態取得エンドポイントの実装
func (h *PlaygroundHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status: "running",
		Server: ServerInfo{
			Host: h.config.Server.Host,
			Port: h.config.Server.Port,
		},
		Shapes:    len(scene.Kinds()),
		Timestamp: time.Now(),
	})
}

// GetShapes は形状種別一覧エンドポイントの実装
func (h *PlaygroundHandler) GetShapes(c *gin.Context) {
	kinds := scene.Kinds()
	shapes := make([]ShapeInfo, 0, len(kinds))
	for _, kind := range kinds {
		shapes = append(shapes, ShapeInfo{
			Kind:   kind,
			Label:  kind.Label(),
			Nested: kind.Nested(),
		})
	}
	c.JSON(http.StatusOK, ShapesResponse{Shapes: shapes})
}

// GetOpenAPISpec はOpenAPI定義を返す
func (h *PlaygroundHandler) GetOpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", getOpenAPISpec())
}

// BuildScene はパラメータからオブジェクトを構築して返す
func (h *PlaygroundHandler) BuildScene(c *gin.Context) {
	var query SceneQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "invalid_query", "クエリパラメータが不正です", err)
		return
	}

	var req SceneRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_params", "シーンパラメータが不正です", err)
			return
		}
	}

	params, err := req.merge(h.config.Scene)
	if err != nil {
		badRequest(c, "invalid_params", "シーンパラメータが不正です", err)
		return
	}

	// リクエスト毎に新しいシーンとコントローラを作る
	sc := scene.New()
	ctrl := scene.NewController(sc, params)
	ctrl.Advance(query.Frames)

	c.JSON(http.StatusOK, SceneResponse{
		Params: ctrl.Params(),
		Object: newObjectResponse(ctrl.Current()),
		Camera: sc.Camera,
		Lights: sc.Lights,
	})
}

// ヘルパー関数

// merge はリクエストの値で初期値を上書きする
func (r SceneRequest) merge(base scene.Params) (scene.Params, error) {
	p := base
	if r.Shape != nil {
		p.Shape = scene.ShapeKind(*r.Shape)
	}
	if r.Size != nil {
		p.Size = *r.Size
	}
	if r.RotationSpeed != nil {
		p.RotationSpeed = *r.RotationSpeed
	}
	if r.Scale != nil {
		p.Scale = *r.Scale
	}
	if r.Opacity != nil {
		p.Opacity = *r.Opacity
	}
	if r.Wireframe != nil {
		p.Wireframe = *r.Wireframe
	}
	if r.Color != nil {
		color, err := scene.ParseColor(*r.Color)
		if err != nil {
			return scene.Params{}, err
		}
		p.Color = color
	}

	// 未知の種別は立方体として扱うため、範囲だけを検証する
	check := p
	if !check.Shape.Known() {
		check.Shape = scene.KindCube
	}
	if err := check.Validate(); err != nil {
		return scene.Params{}, err
	}
	return p, nil
}

// newObjectResponse はシーンノードをJSON表現に変換する
func newObjectResponse(n *scene.Node) ObjectResponse {
	resp := ObjectResponse{
		ID:       n.ID.String(),
		Type:     n.Type,
		Material: n.Material,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
	}
	if n.Geometry != nil {
		resp.Geometry = &GeometryResponse{
			Type:   n.Geometry.Type(),
			Params: n.Geometry,
		}
		resp.BoundingRadius = n.Geometry.BoundingRadius() * n.Scale.X()
	}
	for _, child := range n.Children() {
		cr := newObjectResponse(child)
		resp.Children = append(resp.Children, cr)
		resp.BoundingRadius = max(resp.BoundingRadius, cr.BoundingRadius*n.Scale.X())
	}
	return resp
}

// badRequest は400エラーを返す
func badRequest(c *gin.Context, code, message string, err error) {
	details := err.Error()
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     code,
		Message:   message,
		Details:   &details,
		Timestamp: time.Now(),
	})
}
