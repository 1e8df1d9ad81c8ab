package browser

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

// Info is a classified User-Agent with convenience predicates. The
// predicates only read the classification; they never look at the raw header.
type Info struct {
	useragent.UserAgent
}

var linuxFamily = []string{
	"linux", "ubuntu", "ubuntu mobile", "kubuntu", "debian", "fedora",
	"centos", "gentoo", "mandriva", "suse", "slackware",
}

func (i Info) browserIs(names ...string) bool {
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.EqualFold(i.Browser.Name, n)
	})
}

func (i Info) osIs(names ...string) bool {
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.EqualFold(i.OS.Name, n)
	})
}

// IsChrome returns true if the browser is Chrome or Chromium.
func (i Info) IsChrome() bool {
	return i.browserIs("Chrome", "Chromium")
}

// IsFirefox returns true if the browser is Firefox.
func (i Info) IsFirefox() bool {
	return i.browserIs("Firefox")
}

// IsSafari returns true if the browser is desktop or mobile Safari.
func (i Info) IsSafari() bool {
	return i.browserIs("Safari", "Mobile Safari")
}

// IsEdge returns true if the browser is Microsoft Edge.
func (i Info) IsEdge() bool {
	return i.browserIs("Edge")
}

// IsIE returns true if the browser is Internet Explorer, desktop or mobile.
func (i Info) IsIE() bool {
	return i.browserIs("MSIE", "IEMobile")
}

// IsOpera returns true for every Opera variant (Opera, Opera Mini, Opera Mobi...).
func (i Info) IsOpera() bool {
	return strings.HasPrefix(strings.ToLower(i.Browser.Name), "opera")
}

// IsAndroid returns true if the operating system is Android.
func (i Info) IsAndroid() bool {
	return i.osIs("Android")
}

// IsIOS returns true if the operating system is iOS.
func (i Info) IsIOS() bool {
	return i.osIs("iOS")
}

// IsMacOS returns true if the operating system is macOS.
func (i Info) IsMacOS() bool {
	return i.osIs("Mac OS X", "Mac OS", "macOS", "Macintosh")
}

// IsLinux returns true for desktop Linux and the common distributions.
func (i Info) IsLinux() bool {
	return i.osIs(linuxFamily...)
}

// IsWindows returns true for any Windows release, Windows Phone included.
func (i Info) IsWindows() bool {
	return strings.HasPrefix(strings.ToLower(i.OS.Name), "windows")
}

// IsDesktop returns true if the user agent is a desktop device.
func (i Info) IsDesktop() bool {
	return i.Device == useragent.DeviceDesktop
}

// IsMobile returns true if the user agent is a mobile device.
func (i Info) IsMobile() bool {
	return i.Device == useragent.DeviceMobile
}

// IsTablet returns true if the user agent is a tablet.
func (i Info) IsTablet() bool {
	return i.Device == useragent.DeviceTablet
}

// IsTV returns true if the user agent is a TV or game console.
func (i Info) IsTV() bool {
	return i.Device == useragent.DeviceTV
}

// IsRobot returns true if the user agent is a crawler or scripted client.
func (i Info) IsRobot() bool {
	return i.Device == useragent.DeviceRobot
}

// Summary renders a one-line human description, e.g.
// "Chrome 91.0 on Windows NT 10.0 (Desktop)".
func (i Info) Summary() string {
	device := i.Device.String()
	if i.Device == useragent.DeviceTV {
		device = "TV"
	} else {
		// Casers keep state between calls and cannot be shared.
		device = cases.Title(language.English).String(device)
	}
	return i.Browser.String() + " on " + i.OS.String() + " (" + device + ")"
}
