// Package main はAPIサーバーのエントリーポイントです。
package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/gatekeeper/internal/auth"
	"github.com/yourusername/gatekeeper/internal/config"
	"github.com/yourusername/gatekeeper/internal/users"
	"github.com/yourusername/gatekeeper/internal/web"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ginのモードを設定
	gin.SetMode(cfg.GinMode)

	// Ginルーターの初期化（デフォルトミドルウェア: Logger, Recovery）
	router := gin.Default()

	// ビューテンプレートの登録
	router.SetHTMLTemplate(web.Templates())

	// セッションストアの設定（クッキー署名鍵は必須）
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   auth.SessionMaxAgeSeconds(),
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(auth.SessionCookieName, store))

	// CORSミドルウェアの設定
	corsConfig := cors.DefaultConfig()
	// CORS許可オリジンを設定（カンマ区切りの文字列を配列に変換）
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true

	router.Use(cors.New(corsConfig))

	// ルーティングの設定
	setupRoutes(router, cfg)

	// サーバーの起動。HTMLフォームから DELETE /logout を発行できるよう、
	// メソッド書き換えラッパーをルーターの外側にかぶせる
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s (mode: %s)", addr, cfg.GinMode)
	if err := http.ListenAndServe(addr, auth.MethodOverride(router)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// handleHealth はヘルスチェックエンドポイントのハンドラーです。
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gatekeeper",
		"version": "0.1.0",
	})
}

// handleHome は認証必須のホームページを描画します。
func handleHome(c *gin.Context) {
	user := c.MustGet(auth.ContextUserKey).(*users.User)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"name": user.Name,
	})
}

// setupRoutes はルートとガードの配線を行います。
func setupRoutes(router *gin.Engine, cfg *config.Config) {
	// まずは誰でも叩けるヘルスチェックを登録
	router.GET("/health", handleHealth)

	// ユーザーディレクトリはプロセス内メモリのみ（再起動で消える）
	directory := users.NewMemoryStore()
	authManager := auth.NewManager(cfg, directory)

	router.GET("/", authManager.RequireAuth(), handleHome)

	router.GET("/login", authManager.RequireGuest(), authManager.ShowLogin)
	router.POST("/login", authManager.RequireGuest(), authManager.Login)

	router.GET("/register", authManager.RequireGuest(), authManager.ShowRegister)
	router.POST("/register", authManager.RequireGuest(), authManager.RegisterUser)

	router.DELETE("/logout", authManager.Logout)
}
