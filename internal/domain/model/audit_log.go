package model

import "time"

// ログイン、会員登録など。
type AuthAuditAction string

const (
	AuthAuditActionLogin  AuthAuditAction = "LOGIN"
	AuthAuditActionSignUp AuthAuditAction = "SIGN_UP"
)

// 認証操作の監査ログ。
// パスワードとトークンは保存しない。
type AuthAuditLog struct {
	//IDは監査ログの主キー（UUID）
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	Action AuthAuditAction `gorm:"type:varchar(20);not null;index" json:"action"`

	//入力されたユーザー名
	Username string `gorm:"type:varchar(255);not null;index" json:"username"`

	Succeeded bool `gorm:"not null" json:"succeeded"`

	//リモートが返したHTTPステータス。通信失敗は0。
	StatusCode int `gorm:"not null" json:"status_code"`

	//作成時刻
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (AuthAuditLog) TableName() string {
	return "auth_audit_logs"
}
