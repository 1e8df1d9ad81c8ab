package useragent

import "strings"

// pendingMerge buffers a word that probably continues with the next token,
// e.g. "Windows" in "Windows NT 10.0". target is KindBrowser or KindOS for
// candidates that fall back to a standalone entity, KindNone for plain
// concatenation.
type pendingMerge struct {
	buf    string
	target Kind
}

// resolver accumulates one classification. It lives on the stack of a single
// Parse call and is never shared.
type resolver struct {
	table *Table
	ua    UserAgent

	pending *pendingMerge

	browserLocked bool
	osLocked      bool
	// browserSure/osSure are set once a non-"maybe" rule assigned the field.
	browserSure bool
	osSure      bool
	maybeRobot  bool

	// versionHint keeps a "Version/x.y" seen before the Safari token it belongs to.
	versionHint Entity
}

func (r *resolver) feed(tok Token) {
	if p := r.pending; p != nil {
		r.pending = nil
		merged := p.buf + " " + tok.Name
		switch {
		case p.target == KindNone:
			tok.Name = merged
		case r.mergeFits(p.target, merged):
			tok.Name = merged
		default:
			r.commit(p.target, named(p.buf))
		}
	}

	lower := strings.ToLower(tok.Name)
	rule, ok := r.table.Lookup(lower)
	if !ok && tok.HasVersion() {
		// Multi-word names ending in a number, e.g. "Series 60".
		if rule, ok = r.table.Lookup(lower + " " + tok.Major); ok {
			tok.Name += " " + tok.Major
			tok.Major, tok.Minor = "", ""
			lower = strings.ToLower(tok.Name)
		}
	}
	if !ok {
		r.guess(lower)
		return
	}

	r.promote(rule.Device)
	r.dispatch(rule.Kind, tok, lower)
}

func (r *resolver) mergeFits(target Kind, merged string) bool {
	rule, ok := r.table.Lookup(strings.ToLower(merged))
	if !ok {
		return false
	}
	switch target {
	case KindBrowser:
		switch rule.Kind {
		case KindBrowser, KindForceBrowser, KindMaybeBrowser, KindMergeOrBrowser, KindBrowserAndOS:
			return true
		}
	case KindOS:
		switch rule.Kind {
		case KindOS, KindForceOS, KindMaybeOS, KindMergeOrOS, KindBrowserAndOS:
			return true
		}
	}
	return false
}

func (r *resolver) dispatch(kind Kind, tok Token, lower string) {
	ent := entityOf(tok)

	switch kind {
	case KindNone, KindIgnore:

	case KindBrowser:
		r.setBrowser(ent)

	case KindBrowserAndOS:
		r.setBrowser(ent)
		r.setOS(ent)

	case KindRenderingEngine:
		if lower == "khtml" && !ent.HasVersion && r.ua.Engine.HasVersion {
			return
		}
		r.ua.Engine = ent

	case KindForceBrowser:
		if !r.browserLocked {
			r.ua.Browser = ent
			r.browserLocked, r.browserSure = true, true
		}

	case KindForceOS:
		if !r.osLocked {
			r.ua.OS = ent
			r.osLocked, r.osSure = true, true
		}

	case KindMaybeBrowser:
		r.maybeBrowser(ent, lower)

	case KindMaybeOS:
		r.maybeOS(ent, lower)

	case KindMaybeRobot:
		r.maybeRobot = true

	case KindMerge:
		if !ent.HasVersion && !terminates(tok.Next) {
			r.pending = &pendingMerge{buf: tok.Name}
			return
		}
		r.mergeEffects(lower)

	case KindMergeOrBrowser:
		if ent.HasVersion || terminates(tok.Next) {
			r.setBrowser(ent)
			return
		}
		r.pending = &pendingMerge{buf: tok.Name, target: KindBrowser}

	case KindMergeOrOS:
		if ent.HasVersion || terminates(tok.Next) {
			r.setOS(ent)
			return
		}
		r.pending = &pendingMerge{buf: tok.Name, target: KindOS}

	case KindOS:
		r.setOS(ent)

	case KindRobot:
		r.ua.Device = DeviceRobot
		if !r.browserSure && !r.browserLocked {
			r.ua.Browser = ent
			r.browserSure = true
		}
	}
}

// commit assigns an aborted merge candidate as a standalone entity.
func (r *resolver) commit(target Kind, ent Entity) {
	switch target {
	case KindBrowser:
		r.setBrowser(ent)
	case KindOS:
		r.setOS(ent)
	}
}

// flush resolves a merge left open at the end of input.
func (r *resolver) flush() {
	if p := r.pending; p != nil {
		r.pending = nil
		r.commit(p.target, named(p.buf))
	}
}

func (r *resolver) setBrowser(ent Entity) {
	if r.browserLocked {
		return
	}
	r.ua.Browser = ent
	r.browserSure = true
}

func (r *resolver) setOS(ent Entity) {
	if r.osLocked {
		return
	}
	r.ua.OS = ent
	r.osSure = true
}

func (r *resolver) maybeBrowser(ent Entity, lower string) {
	switch lower {
	case "rv":
		if ent.HasVersion && strings.EqualFold(r.ua.Browser.Name, "mozilla") {
			r.ua.Browser = versioned(r.ua.Browser.Name, ent.Major, ent.Minor)
		}
		return
	case "version":
		if !ent.HasVersion {
			return
		}
		if name := r.ua.Browser.Name; takesVersionToken(name) {
			r.ua.Browser = versioned(name, ent.Major, ent.Minor)
			return
		}
		r.versionHint = ent
		return
	}

	if r.browserSure || r.browserLocked {
		return
	}
	if r.versionHint.HasVersion && strings.HasSuffix(lower, "safari") {
		ent = versioned(ent.Name, r.versionHint.Major, r.versionHint.Minor)
	}
	r.ua.Browser = ent
}

func (r *resolver) maybeOS(ent Entity, lower string) {
	if lower == "os" {
		// "CPU OS 14_4", "Windows Phone OS 7.5": the version belongs to the
		// system named earlier.
		if ent.HasVersion && r.ua.OS.Name != "" && !r.ua.OS.HasVersion {
			r.ua.OS = versioned(r.ua.OS.Name, ent.Major, ent.Minor)
		}
		return
	}
	if r.osSure || r.osLocked {
		return
	}
	r.ua.OS = ent
}

// mergeEffects applies token specific rules for merge words that stand alone.
func (r *resolver) mergeEffects(lower string) {
	switch lower {
	case "mobile":
		if r.osLocked {
			return
		}
		switch strings.ToLower(r.ua.OS.Name) {
		case "ubuntu":
			r.ua.OS.Name = "Ubuntu Mobile"
		case "linux":
			r.ua.OS = named("Android")
		}
	case "tablet":
		r.promote(DeviceTablet)
	}
}

// promote raises the device category; lower-ranked signals are ignored.
func (r *resolver) promote(d Device) {
	if d > r.ua.Device {
		r.ua.Device = d
	}
}

var (
	robotSuffixes  = []string{"bot", "crawler", "spider", "agent", "scraper"}
	tabletPrefixes = []string{"sm-t", "sm-p", "sm-x", "gt-p", "gt-n51", "gt-n80", "mediapad", "kftt", "kfjw", "kfth"}
	mobilePrefixes = []string{
		"sm-", "gt-", "sgh-", "sch-", "lg-", "htc", "sonyericsson", "nokia", "mot-", "moto",
		"redmi", "pixel", "lumia", "zte", "huawei", "oneplus", "cph", "rmx", "vivo", "oppo",
	}
)

// guess handles tokens missing from the table with a few prefix/suffix
// heuristics. It never touches locked or definitively assigned fields.
func (r *resolver) guess(lower string) {
	switch {
	case hasAnySuffix(lower, robotSuffixes):
		r.promote(DeviceRobot)
	case strings.HasPrefix(lower, "linux"):
		if !r.osSure && !r.osLocked && r.ua.OS.IsZero() {
			r.ua.OS = named("Linux")
		}
	case strings.HasPrefix(lower, "blackberry"):
		r.promote(DeviceMobile)
		if !r.osSure && !r.osLocked {
			r.ua.OS = named("BlackBerry")
		}
	case strings.HasPrefix(lower, "appletv"):
		r.promote(DeviceTV)
	case hasAnyPrefix(lower, tabletPrefixes):
		r.promote(DeviceTablet)
	case hasAnyPrefix(lower, mobilePrefixes):
		r.promote(DeviceMobile)
	}
}

func entityOf(tok Token) Entity {
	if mj, mn, ok := tok.version(); ok {
		return versioned(tok.Name, mj, mn)
	}
	return named(tok.Name)
}

// terminates reports whether c ends a product name, so the word before it
// cannot continue into the next token.
func terminates(c rune) bool {
	return c == ';' || c == '/' || c == ')'
}

func takesVersionToken(browser string) bool {
	lower := strings.ToLower(browser)
	return strings.HasPrefix(lower, "opera") || strings.HasSuffix(lower, "safari")
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, pre := range prefixes {
		if strings.HasPrefix(s, pre) {
			return true
		}
	}
	return false
}
