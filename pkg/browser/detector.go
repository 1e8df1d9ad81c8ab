package browser

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

// maxCachedLength keeps pathological headers out of the cache. Longer inputs
// are still classified, just not memoized.
const maxCachedLength = 512

// Observer is notified after every detection. hit reports whether the result
// came from the cache.
type Observer func(info Info, hit bool)

// Detector classifies User-Agent strings and memoizes recent results.
// It is safe for concurrent use.
type Detector struct {
	parser   *useragent.Parser
	cache    *lru.Cache[string, useragent.UserAgent]
	observer Observer
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithParser replaces the parser built on the packaged keyword table.
func WithParser(p *useragent.Parser) DetectorOption {
	return func(d *Detector) {
		if p != nil {
			d.parser = p
		}
	}
}

// WithObserver registers a callback invoked after every Detect call.
func WithObserver(fn Observer) DetectorOption {
	return func(d *Detector) { d.observer = fn }
}

// NewDetector creates a detector that remembers up to cacheSize distinct
// headers. A zero size disables memoization.
func NewDetector(cacheSize int, opts ...DetectorOption) (*Detector, error) {
	if cacheSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cacheSize)
	}
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	if d.parser == nil {
		d.parser = useragent.New(nil)
	}
	if cacheSize > 0 {
		c, err := lru.New[string, useragent.UserAgent](cacheSize)
		if err != nil {
			return nil, err
		}
		d.cache = c
	}
	return d, nil
}

// NewFromConfig builds a detector from cfg.
func NewFromConfig(cfg Config, opts ...DetectorOption) (*Detector, error) {
	return NewDetector(cfg.CacheSize, opts...)
}

// Detect classifies ua.
func (d *Detector) Detect(ua string) Info {
	cacheable := d.cache != nil && len(ua) <= maxCachedLength
	if cacheable {
		if res, ok := d.cache.Get(ua); ok {
			info := Info{UserAgent: res}
			d.notify(info, true)
			return info
		}
	}

	res := d.parser.Parse(ua)
	if cacheable {
		d.cache.Add(ua, res)
	}
	info := Info{UserAgent: res}
	d.notify(info, false)
	return info
}

// Len returns the number of memoized entries.
func (d *Detector) Len() int {
	if d.cache == nil {
		return 0
	}
	return d.cache.Len()
}

// Purge empties the cache.
func (d *Detector) Purge() {
	if d.cache != nil {
		d.cache.Purge()
	}
}

func (d *Detector) notify(info Info, hit bool) {
	if d.observer != nil {
		d.observer(info, hit)
	}
}
