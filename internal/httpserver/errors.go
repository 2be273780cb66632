package httpserver

const (
	ErrDependency  = "dependency error"
	ErrRateLimited = "rate limited"
	ErrBadForm     = "bad form"
	ErrRender      = "render error"
	ErrNotReady    = "not ready"
)
