// Package cli implements the uaparse command line tool.
//
// # Commands
//
//	uaparse parse [--format json|yaml] [--tokens] [--keywords FILE] [UA...]
//	uaparse keywords check FILE
//	uaparse keywords dump [--keywords FILE]
package cli
