package users

import "sync"

// MemoryStore は Repository のインメモリ実装です。
// プロセス終了時にすべてのレコードが破棄されます。
//
// 追記専用のスライスで挿入順を保持するため、重複メールアドレスの
// 検索結果は常に先に登録されたレコードになります。登録時の一意性
// チェックは行いません（既知の制限）。
type MemoryStore struct {
	mu      sync.RWMutex
	records []*User
	byID    map[string]*User
}

// NewMemoryStore は空の MemoryStore を作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*User),
	}
}

// FindByEmail は挿入順で最初にメールアドレスが一致したレコードを返します。
func (s *MemoryStore) FindByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.records {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// FindByID は識別子が一致するレコードを返します。
// 見つからない場合はエラーにせず ok=false を返します。
func (s *MemoryStore) FindByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	return u, ok
}

// Insert はレコードを末尾に追加します。インメモリ実装では失敗しません。
func (s *MemoryStore) Insert(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, user)
	s.byID[user.ID] = user
	return nil
}

// Len は登録済みレコード数を返します。
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
