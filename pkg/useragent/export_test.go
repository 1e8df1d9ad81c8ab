package useragent

// WithTokenHook installs a callback run for every token before resolution.
func WithTokenHook(fn func(Token)) Option {
	return func(p *Parser) { p.tokenHook = fn }
}
