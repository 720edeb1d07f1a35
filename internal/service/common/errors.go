package common

// エラーメッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
)

// エラーメッセージフォーマット定数
const (
	// 一覧取得エラー
	ListErrorFormat = "%s %s一覧の取得に失敗: %w"

	// リソース操作エラー
	StartErrorFormat = "%s %s の起動に失敗: %w"
	StopErrorFormat  = "%s %s の停止に失敗: %w"

	// 成功メッセージ
	StartSuccessFormat = "%s %s を起動しました"
	StopSuccessFormat  = "%s %s を停止しました"
)
