package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed ops authentication"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Ops server starting"
	LogMsgServerStopping   = "Ops server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgSummaryFailed    = "Summary computation failed"
)

// Route paths
const (
	PathHealthz      = "/healthz"
	PathReadyz       = "/readyz"
	PathMetrics      = "/metrics"
	PathVersion      = "/version"
	PathDebug        = "/debug"
	PathDebugCache   = "/cache"
	PathDebugSummary = "/summary"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Probe response statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgDBUnreachable  = "database connection failed"
	MsgDBNotReady     = "database not initialized"
)

// Limits and timeouts
const (
	MaxRequestBytes     = 1 << 16
	ReadinessTimeout    = 2 * time.Second
	ReadHeaderTimeout   = 5 * time.Second
	RateWindow          = 5 * time.Minute
	MaxRequestsPerIP    = 1000
	FailedAuthAlertMark = 5
	HighRateLogEvery    = 100
)

// Paths that bypass request logging
var QuietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
