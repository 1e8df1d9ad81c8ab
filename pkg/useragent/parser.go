package useragent

import (
	"embed"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/viewkit/pkg/logger"
)

const defaultTablePath = "keywords.txt"

//go:embed keywords.txt
var resources embed.FS

// DefaultTable returns the keyword table packaged with the module. It is
// loaded once; a defect in the packaged resource is fatal.
var DefaultTable = sync.OnceValue(func() *Table {
	t, err := LoadTableFS(resources, defaultTablePath)
	if err != nil {
		panic(err)
	}
	return t
})

// Parser classifies User-Agent strings against an immutable keyword table.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	table     *Table
	logger    *slog.Logger
	maxLength int
	// tokenHook, when set, sees every token before it is resolved.
	tokenHook func(Token)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report recovered failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxLength truncates inputs longer than n bytes before tokenizing. Zero
// or less, the default, scans the whole input. A limit trades accuracy for
// bounded work: tokens past the cut, crawler names included, are not seen.
func WithMaxLength(n int) Option {
	return func(p *Parser) { p.maxLength = n }
}

// New returns a Parser over table. A nil table selects DefaultTable.
func New(table *Table, opts ...Option) *Parser {
	if table == nil {
		table = DefaultTable()
	}
	p := &Parser{
		table:  table,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig builds a Parser from cfg, loading the keyword file when one
// is configured.
func NewFromConfig(cfg Config, opts ...Option) (*Parser, error) {
	var table *Table
	if cfg.KeywordsFile != "" {
		t, err := LoadTableFile(cfg.KeywordsFile)
		if err != nil {
			return nil, err
		}
		table = t
	}
	return New(table, append([]Option{WithMaxLength(cfg.MaxLength)}, opts...)...), nil
}

// Table returns the keyword table the parser classifies with.
func (p *Parser) Table() *Table { return p.table }

// Parse classifies ua. It never panics: internal failures are logged and
// reported as Unparsed().
func (p *Parser) Parse(ua string) (result UserAgent) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Warn("user agent classification failed",
				slog.Any("panic", rec),
				logger.UserAgent(ua),
			)
			result = Unparsed()
		}
	}()

	if p.maxLength > 0 && len(ua) > p.maxLength {
		ua = ua[:p.maxLength]
	}

	r := resolver{table: p.table}
	for tok := range Tokens(ua) {
		if p.tokenHook != nil {
			p.tokenHook(tok)
		}
		r.feed(tok)
	}
	return r.normalize()
}

var defaultParser = sync.OnceValue(func() *Parser { return New(nil) })

// Parse classifies ua with the packaged keyword table.
func Parse(ua string) UserAgent {
	return defaultParser().Parse(ua)
}
