package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playground/internal/config"
	"playground/internal/scene"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
	handler    *PlaygroundHandler
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	// ページは起動時に1度だけ生成する
	page, err := renderIndex(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("ページの生成に失敗: %w", err)
	}

	validator, err := newOpenAPIValidator(getOpenAPISpec())
	if err != nil {
		return nil, fmt.Errorf("OpenAPI定義の読み込みに失敗: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		config: cfg,
		engine: engine,
		handler: &PlaygroundHandler{
			config: cfg,
			page:   page,
		},
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
	s.setupRoutes(validator)

	return s, nil
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes(validator gin.HandlerFunc) {
	h := s.handler

	// ページ
	s.engine.GET("/", h.Index)

	// ヘルスチェックエンドポイント
	s.engine.GET("/health", h.HealthCheck)

	// APIエンドポイント
	api := s.engine.Group("/api", validator)
	api.GET("/status", h.GetStatus)
	api.GET("/shapes", h.GetShapes)
	api.POST("/scene", h.BuildScene)
	api.GET("/openapi.yaml", h.GetOpenAPISpec)
}

// Handler はルーティング済みのhttp.Handlerを返す
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: %s", s.config.ServerAddress())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}

// shapeOption はドロップダウンの選択肢
type shapeOption struct {
	Kind     scene.ShapeKind
	Label    string
	Selected bool
}

// pageData はページテンプレートに渡す値
type pageData struct {
	Shapes       []shapeOption
	Params       scene.Params
	Ranges       pageRanges
	RotationStep float64
}

type pageRanges struct {
	MinSize, MaxSize                   float64
	MinRotationSpeed, MaxRotationSpeed float64
	MinScale, MaxScale                 float64
	MinOpacity, MaxOpacity             float64
}

// renderIndex はコントロール初期値を埋め込んだページを生成する
func renderIndex(initial scene.Params) ([]byte, error) {
	data := pageData{
		Params: initial,
		Ranges: pageRanges{
			MinSize: scene.MinSize, MaxSize: scene.MaxSize,
			MinRotationSpeed: scene.MinRotationSpeed, MaxRotationSpeed: scene.MaxRotationSpeed,
			MinScale: scene.MinScale, MaxScale: scene.MaxScale,
			MinOpacity: scene.MinOpacity, MaxOpacity: scene.MaxOpacity,
		},
		RotationStep: scene.RotationStep,
	}
	for _, kind := range scene.Kinds() {
		data.Shapes = append(data.Shapes, shapeOption{
			Kind:     kind,
			Label:    kind.Label(),
			Selected: kind == initial.Shape,
		})
	}

	var buf bytes.Buffer
	if err := parseTemplates().ExecuteTemplate(&buf, indexTemplateName, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
