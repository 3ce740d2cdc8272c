package settings

const (
	IP       = "ip"
	Port     = "port"
	LogLevel = "logLevel"

	EnableMetrics = "enableMetrics"

	HistoryMaxStack = "history.maxStack"
	HistoryDelay    = "history.delay"

	DocumentsMaxLength = "documents.maxLength"

	APIBodyLimit = "api.bodyLimit"
)
