// Package useragent classifies HTTP User-Agent strings into a browser, a
// rendering engine, an operating system and a device category.
//
// Classification is a single left-to-right pass driven by a keyword table:
//
//	UA string ──▶ Tokens ──▶ resolver ──▶ normalize ──▶ UserAgent
//	                            ▲
//	                         *Table
//
// Tokens scans the header with one regular expression and yields every
// product word together with its optional major/minor version and the
// character that follows the word. The resolver looks each word up in the
// Table and applies the rule kind: plain assignments (BROWSER, OS), locking
// assignments (FORCE_*), tentative ones (MAYBE_*) and merge rules that glue
// multi-word names such as "Windows NT" or "Mac OS X" across tokens. Once the
// input is exhausted, normalize remaps known quirks (Windows release names,
// vendor tokens like "Edg" or "CriOS") and fills the gaps so that browser and
// OS names are never empty.
//
// # Keyword table
//
// The packaged table lives in keywords.txt and is loaded once by
// DefaultTable. Custom tables use the same line format:
//
//	# comment
//	chrome=BROWSER
//	windows phone=FORCE_OS,MOBILE
//	googletv=IGNORE,TV
//	hbbtv=,TV
//
// Any defect in a table is reported as a *LoadError carrying the path and the
// 1-based line number. Table.WriteTo produces the canonical form of a table.
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//	if ua.Device == useragent.DeviceRobot {
//		// skip session tracking
//	}
//
//	p := useragent.New(table, useragent.WithLogger(log))
//	ua = p.Parse(header)
//
// Parse never fails. Inputs the resolver cannot handle are logged and
// reported as Unparsed(); a version that does not fit in uint32 is dropped
// for that token only.
//
// # Concurrency
//
// Tables are immutable and parsers keep no state between calls, so both can
// be shared freely across goroutines.
package useragent
