package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth は認証済みリクエストのみを通すミドルウェアを返します。
// 未認証の場合は /login へリダイレクトします。認証済みの場合は
// コンテキストにユーザーを格納して後続ハンドラーへ渡します。
func (m *Manager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := m.CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireGuest はログイン済みユーザーをホームへ戻すミドルウェアを返します。
// ログイン・登録ページへの再入場を防ぎます。
func (m *Manager) RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.CurrentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// MethodOverride は HTML フォームから DELETE 等を発行するための
// メソッド書き換えラッパーです。POST リクエストのクエリまたはフォームの
// _method フィールドを見て、ルーティング前にメソッドを差し替えます。
//
// gin のルーターはメソッド込みでマッチするため、エンジンの外側で
// ラップする必要があります。
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if override := overrideMethod(r); override != "" {
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	value := r.URL.Query().Get("_method")
	if value == "" {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		value = r.PostForm.Get("_method")
	}
	switch strings.ToUpper(value) {
	case http.MethodDelete, http.MethodPut, http.MethodPatch:
		return strings.ToUpper(value)
	default:
		return ""
	}
}
