package useragent

// Config holds parser settings loaded from the environment.
type Config struct {
	// KeywordsFile overrides the packaged keyword table. Read once at startup.
	KeywordsFile string `env:"UA_KEYWORDS_FILE"`
	// MaxLength truncates longer inputs; zero scans everything.
	MaxLength int `env:"UA_MAX_LENGTH"`
}
