package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Backend
	RecordStore       RecordStore
	StatsRepository   StatsRepository
	CommentRepository CommentRepository
	ContactRepository ContactMessageRepository

	// Caching & analytics
	CacheInspector CacheInspector
	MetricsReader  MetricsReader
	ViewsLedger    UniqueEventLedger

	// Communication (optional)
	EmailProvider   EmailProvider
	CaptchaVerifier CaptchaVerifier

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	HealthCheckers map[string]HealthChecker
}
