package useragent

import "strings"

// robotName is used for browser and OS when only a crawler was detected.
const robotName = "robot"

// windowsRelease remaps consumer release names reported as versions.
type windowsRelease struct {
	name  string
	major uint32
}

var windowsReleases = map[windowsRelease]Entity{
	{"windows", 95}:   versioned("Windows", 4, 0),
	{"windows", 98}:   versioned("Windows", 4, 10),
	{"windows", 2000}: versioned("Windows NT", 5, 0),
}

var windowsAliases = map[string]Entity{
	"win95":      versioned("Windows", 4, 0),
	"win98":      versioned("Windows", 4, 10),
	"windows me": versioned("Windows", 4, 90),
	"windows xp": versioned("Windows NT", 5, 1),
}

var browserNames = map[string]string{
	"edg":            "Edge",
	"edga":           "Edge",
	"edgios":         "Edge",
	"edge":           "Edge",
	"opr":            "Opera",
	"opios":          "Opera",
	"crios":          "Chrome",
	"fxios":          "Firefox",
	"yabrowser":      "Yandex",
	"samsungbrowser": "Samsung Internet",
	"ucbrowser":      "UC Browser",
	"miuibrowser":    "MIUI Browser",
	"huaweibrowser":  "Huawei Browser",
	"qqbrowser":      "QQ Browser",
	"silk":           "Silk",
}

var osNames = map[string]string{
	"iphone":     "iOS",
	"ipad":       "iOS",
	"ipod":       "iOS",
	"iphone os":  "iOS",
	"cros":       "Chrome OS",
	"winnt":      "Windows NT",
	"symbianos":  "Symbian",
	"symbian os": "Symbian",
	"web0s":      "webOS",
}

// normalize runs once the token stream is exhausted. It applies the known
// quirks and fills every field the tokens left empty.
func (r *resolver) normalize() UserAgent {
	r.flush()
	ua := r.ua

	ua.OS = normalizeOS(ua.OS)
	if name, ok := browserNames[strings.ToLower(ua.Browser.Name)]; ok {
		ua.Browser.Name = name
	}
	if strings.EqualFold(ua.Browser.Name, "mozilla") && strings.EqualFold(ua.Engine.Name, "trident") {
		ua.Browser.Name = "MSIE"
	}
	if ua.OS.Name == "Android" && strings.HasSuffix(strings.ToLower(ua.Browser.Name), "safari") {
		ua.Browser.Name = "Android Browser"
	}

	robot := ua.Device == DeviceRobot || r.maybeRobot
	if ua.Browser.IsZero() {
		switch {
		case robot:
			ua.Browser = versioned(robotName, 0, 0)
			ua.Device = DeviceRobot
		case ua.OS.Name == "Symbian":
			ua.Browser = Entity{Name: "Nokia", Major: ua.OS.Major, Minor: ua.OS.Minor, HasVersion: ua.OS.HasVersion}
		default:
			ua.Browser = versioned(Unknown, 0, 0)
		}
	}
	if ua.OS.IsZero() {
		if robot {
			ua.OS = versioned(robotName, 0, 0)
			ua.Device = DeviceRobot
		} else {
			ua.OS = versioned(Unknown, 0, 0)
		}
	}

	if ua.Device == DeviceUnknown {
		if ua.OS.Name == "Android" {
			ua.Device = DeviceMobile
		} else {
			ua.Device = DeviceDesktop
		}
	}
	return ua
}

func normalizeOS(os Entity) Entity {
	lower := strings.ToLower(os.Name)
	if os.HasVersion {
		if e, ok := windowsReleases[windowsRelease{lower, os.Major}]; ok {
			return e
		}
	}
	if e, ok := windowsAliases[lower]; ok {
		return e
	}
	if name, ok := osNames[lower]; ok {
		os.Name = name
	}
	return os
}
