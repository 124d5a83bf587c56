// Package auth は認証・セッション管理機能を提供します。
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/gatekeeper/internal/config"
	"github.com/yourusername/gatekeeper/internal/users"
)

const (
	SessionCookieName = "gk_session"
	sessionKeyUserID  = "user_id"
)

var maxSessionLifetime = 12 * time.Hour

// SessionMaxAgeSeconds はクッキーの MaxAge に利用する秒数を返します。
func SessionMaxAgeSeconds() int {
	return int(maxSessionLifetime.Seconds())
}

// ContextUserKey は、ハンドラー間でログイン済みユーザーを共有するためのキーです。
const ContextUserKey = "auth.user"

var (
	// ErrUnknownEmail はメールアドレスに一致するユーザーがいない場合に返されます。
	ErrUnknownEmail = errors.New("No user with that email")
	// ErrPasswordIncorrect はパスワードがハッシュと一致しない場合に返されます。
	ErrPasswordIncorrect = errors.New("Password Incorrect")
)

// Manager は認証処理と依存をまとめた構造体です。
type Manager struct {
	cfg   *config.Config
	users users.Repository
}

// NewManager は認証マネージャーを作成します。
func NewManager(cfg *config.Config, repo users.Repository) *Manager {
	return &Manager{
		cfg:   cfg,
		users: repo,
	}
}

// Verify はメールアドレスと平文パスワードを検証します。
//
// 結果は三通りです:
//   - 成功: 一致したユーザーを返す
//   - 失敗: ErrUnknownEmail または ErrPasswordIncorrect
//   - 内部エラー: ハッシュ不正などの比較時障害。上記二つとは区別して
//     ラップしたエラーを返す（呼び出し側は資格情報の誤りとして扱わないこと）
//
// ハッシュ比較は bcrypt の定数時間比較を使用し、生ハッシュの等価比較は
// 行いません。
func (m *Manager) Verify(email, password string) (*users.User, error) {
	user, ok := m.users.FindByEmail(email)
	if !ok {
		return nil, ErrUnknownEmail
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return nil, ErrPasswordIncorrect
	default:
		return nil, fmt.Errorf("password comparison failed: %w", err)
	}
}

// Register は新規ユーザーを作成してディレクトリに追加します。
//
// 既存レコードとのメールアドレス重複チェックは行いません。重複登録時の
// 検索は先に登録されたレコードが優先されます（既知の制限）。
// ハッシュ化または保存に失敗した場合、レコードは一切追加されません。
func (m *Manager) Register(name, email, password string) (*users.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := m.users.Insert(user); err != nil {
		return nil, fmt.Errorf("user insert failed: %w", err)
	}
	return user, nil
}

// SignIn は認証済みユーザーの識別子のみをセッションに保存します。
func (m *Manager) SignIn(c *gin.Context, user *users.User) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	return session.Save()
}

// SignOut はセッションを破棄します。未認証の状態で呼んでもエラーにはなりません。
func (m *Manager) SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// CurrentUser はセッションに保存された識別子をディレクトリで解決します。
// 識別子が無い、またはディレクトリに存在しない場合は nil を返します
// （フェイルクローズ: 未認証として扱う）。
func (m *Manager) CurrentUser(c *gin.Context) *users.User {
	session := sessions.Default(c)
	id, ok := session.Get(sessionKeyUserID).(string)
	if !ok || id == "" {
		return nil
	}
	user, ok := m.users.FindByID(id)
	if !ok {
		return nil
	}
	return user
}
