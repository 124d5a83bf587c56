// Package users はユーザーディレクトリ（インメモリのユーザー台帳）を提供します。
package users

// User は登録済みユーザーを表す構造体です。
// レコードは登録時に一度だけ作成され、以降は変更・削除されません。
type User struct {
	ID           string `json:"id"`    // 登録時に割り当てられる不変の識別子
	Name         string `json:"name"`  // 表示名
	Email        string `json:"email"` // 認証時の検索キー（一意性は保証されない）
	PasswordHash string `json:"-"`     // bcryptハッシュ。平文パスワードは保持しない
}

// Repository はユーザーディレクトリへのアクセスを抽象化します。
// インメモリ実装を永続ストアに差し替えられるよう、検証ロジックは
// このインターフェースにのみ依存します。
type Repository interface {
	// FindByEmail はメールアドレスが一致する最初のレコードを返します。
	// 同一メールアドレスのレコードが複数ある場合、挿入順で最初のものが返ります。
	FindByEmail(email string) (*User, bool)
	// FindByID は識別子が一致するレコードを返します。
	FindByID(id string) (*User, bool)
	// Insert はレコードをディレクトリ末尾に追加します。
	Insert(user *User) error
}
