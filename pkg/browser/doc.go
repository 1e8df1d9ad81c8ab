// Package browser is the request-facing side of useragent: a memoizing
// Detector, an Info value with predicates such as IsMobile or IsChrome, and
// net/http middleware that stores the classification in the request context.
//
//	d, err := browser.NewDetector(1024)
//	if err != nil {
//		return err
//	}
//	r.Use(browser.Middleware(d))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		info, _ := browser.FromContext(r.Context())
//		if info.IsRobot() {
//			// ...
//		}
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with the request context carries the classification.
package browser
