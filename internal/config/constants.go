// internal/config/constants.go
package config

import "strings"

// アプリケーション情報
const (
	AppName    = "LessonNotes"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "sqlite"
	DefaultDatabaseURL    = "file:lesson_notes.db?_foreign_keys=on"
	DefaultParentKey      = "parent_root"
)

// server.port -> APP_SERVER_PORT
var envKeyReplacer = strings.NewReplacer(".", "_")
