package account

// HTTPヘッダ名
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// Account APIのパス
const (
	PathLogin    = "/api/v1/login"
	PathLogout   = "/api/v1/logout"
	PathDeposit  = "/api/v1/deposit"
	PathWithdraw = "/api/v1/withdraw"
	PathBalance  = "/api/v1/balance"
)
