package useragent

import (
	"fmt"
	"strconv"
	"strings"
)

// Device is the coarse category of the requesting client. Values are ordered
// by classification precedence: a later signal only replaces the current one
// when it ranks strictly higher.
type Device uint8

const (
	DeviceUnknown Device = iota
	DeviceDesktop
	DeviceMobile
	DeviceTablet
	DeviceTV
	DeviceRobot
)

var deviceNames = [...]string{
	DeviceUnknown: "unknown",
	DeviceDesktop: "desktop",
	DeviceMobile:  "mobile",
	DeviceTablet:  "tablet",
	DeviceTV:      "tv",
	DeviceRobot:   "robot",
}

// String returns the lower-case category name.
func (d Device) String() string {
	if int(d) < len(deviceNames) {
		return deviceNames[d]
	}
	return "device(" + strconv.Itoa(int(d)) + ")"
}

// ParseDevice resolves a category name, case-insensitively.
func ParseDevice(name string) (Device, error) {
	for i, n := range deviceNames {
		if strings.EqualFold(n, name) {
			return Device(i), nil
		}
	}
	return DeviceUnknown, fmt.Errorf("%w: %q", ErrUnknownDevice, name)
}

// MarshalText encodes the device by name.
func (d Device) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a device name, case-insensitively.
func (d *Device) UnmarshalText(b []byte) error {
	v, err := ParseDevice(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Kind tells the resolver how a matched token influences the result.
type Kind uint8

const (
	// KindNone marks device-only rules ("token=" or "token=,DEVICE").
	KindNone Kind = iota
	KindBrowser
	KindBrowserAndOS
	KindRenderingEngine
	KindForceBrowser
	KindForceOS
	KindIgnore
	KindMaybeBrowser
	KindMaybeOS
	KindMaybeRobot
	KindMerge
	KindMergeOrBrowser
	KindMergeOrOS
	KindOS
	KindRobot
)

var kindNames = [...]string{
	KindNone:            "",
	KindBrowser:         "BROWSER",
	KindBrowserAndOS:    "BROWSER_OS",
	KindRenderingEngine: "RENDERING_ENGINE",
	KindForceBrowser:    "FORCE_BROWSER",
	KindForceOS:         "FORCE_OS",
	KindIgnore:          "IGNORE",
	KindMaybeBrowser:    "MAYBE_BROWSER",
	KindMaybeOS:         "MAYBE_OS",
	KindMaybeRobot:      "MAYBE_ROBOT",
	KindMerge:           "MERGE",
	KindMergeOrBrowser:  "MERGE_OR_BROWSER",
	KindMergeOrOS:       "MERGE_OR_OS",
	KindOS:              "OS",
	KindRobot:           "ROBOT",
}

// String returns the keyword table spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "KIND(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind resolves an upper-case kind name. The empty string is KindNone.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText encodes the kind by its keyword table name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entity is a browser, rendering engine or operating system. Major and Minor
// are meaningful only when HasVersion is set, so the pair is always either
// fully present or fully absent.
type Entity struct {
	Name       string `json:"name" yaml:"name"`
	Major      uint32 `json:"major,omitempty" yaml:"major,omitempty"`
	Minor      uint32 `json:"minor,omitempty" yaml:"minor,omitempty"`
	HasVersion bool   `json:"has_version" yaml:"has_version"`
}

func named(name string) Entity { return Entity{Name: name} }

func versioned(name string, major, minor uint32) Entity {
	return Entity{Name: name, Major: major, Minor: minor, HasVersion: true}
}

// Version returns the major/minor pair and whether it is known.
func (e Entity) Version() (major, minor uint32, ok bool) {
	return e.Major, e.Minor, e.HasVersion
}

// IsZero reports whether the entity was never populated.
func (e Entity) IsZero() bool {
	return e.Name == ""
}

// String renders "Name major.minor", or just the name without a version.
func (e Entity) String() string {
	if !e.HasVersion {
		return e.Name
	}
	return e.Name + " " + strconv.FormatUint(uint64(e.Major), 10) + "." + strconv.FormatUint(uint64(e.Minor), 10)
}

// UserAgent is the structured classification of a User-Agent header. Values
// are returned by copy and never shared between calls.
type UserAgent struct {
	Device  Device `json:"device" yaml:"device"`
	Browser Entity `json:"browser" yaml:"browser"`
	// Engine is zero when no rendering engine token was seen.
	Engine Entity `json:"engine,omitzero" yaml:"engine,omitempty"`
	OS     Entity `json:"os" yaml:"os"`
}

// HasEngine reports whether a rendering engine was recognised.
func (ua UserAgent) HasEngine() bool {
	return !ua.Engine.IsZero()
}

// String renders "Browser on OS (device)".
func (ua UserAgent) String() string {
	return fmt.Sprintf("%s on %s (%s)", ua.Browser, ua.OS, ua.Device)
}

// Unknown is the literal used for browser and OS names when nothing better
// could be determined.
const Unknown = "unknown"

// Unparsed is the result returned when classification failed internally.
func Unparsed() UserAgent {
	return UserAgent{
		Device:  DeviceUnknown,
		Browser: named(Unknown),
		OS:      named(Unknown),
	}
}
