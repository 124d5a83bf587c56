package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// genericAuthFailure は内部エラー時に表示するメッセージです。
// 資格情報の誤りと区別がつく文言（Password Incorrect 等）は使いません。
const genericAuthFailure = "Authentication failed. Please try again."

type loginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLogin は GET /login のハンドラーです。保留中のフラッシュメッセージを
// 取り出してログインフォームを描画します。
func (m *Manager) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		// Flashes は読み出しでメッセージを消費するため保存が必要
		if err := session.Save(); err != nil {
			log.Printf("failed to save session after reading flashes: %v", err)
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": flashes,
	})
}

// Login は POST /login のハンドラーです。
// 成功時はセッションを確立して / へ、失敗時はフラッシュメッセージ付きで
// /login へリダイレクトします。
func (m *Manager) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		m.failLogin(c, genericAuthFailure)
		return
	}

	user, err := m.Verify(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnknownEmail) || errors.Is(err, ErrPasswordIncorrect) {
			m.failLogin(c, err.Error())
			return
		}
		// 比較時の内部障害。資格情報エラーとしては表示しない
		log.Printf("credential verification error: %v", err)
		m.failLogin(c, genericAuthFailure)
		return
	}

	if err := m.SignIn(c, user); err != nil {
		log.Printf("failed to establish session: %v", err)
		m.failLogin(c, genericAuthFailure)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowRegister は GET /register のハンドラーです。
func (m *Manager) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// RegisterUser は POST /register のハンドラーです。
// 成功時は /login へ、いかなる失敗時も /register へリダイレクトします
// （メッセージなし・詳細は漏らさない）。
func (m *Manager) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := m.Register(req.Name, req.Email, req.Password); err != nil {
		log.Printf("registration failed: %v", err)
		c.Redirect(http.StatusFound, "/register")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Logout は DELETE /logout のハンドラーです。セッションを破棄して /login へ
// リダイレクトします。未認証状態で呼ばれても冪等に動作します。
func (m *Manager) Logout(c *gin.Context) {
	if err := m.SignOut(c); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

func (m *Manager) failLogin(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Printf("failed to save flash message: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
