package useragent_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

func entity(name string, major, minor uint32) useragent.Entity {
	return useragent.Entity{Name: name, Major: major, Minor: minor, HasVersion: true}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		device  useragent.Device
		browser useragent.Entity
		os      useragent.Entity
	}{
		{
			name:    "chrome on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			device:  useragent.DeviceDesktop,
			browser: entity("Chrome", 91, 0),
			os:      entity("Windows NT", 10, 0),
		},
		{
			name:    "edge on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
			device:  useragent.DeviceDesktop,
			browser: entity("Edge", 91, 0),
			os:      entity("Windows NT", 10, 0),
		},
		{
			name:    "firefox on ubuntu",
			ua:      "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
			device:  useragent.DeviceDesktop,
			browser: entity("Firefox", 89, 0),
			os:      useragent.Entity{Name: "Ubuntu"},
		},
		{
			name:    "safari on mac",
			ua:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
			device:  useragent.DeviceDesktop,
			browser: entity("Safari", 14, 1),
			os:      entity("Mac OS X", 10, 15),
		},
		{
			name:    "safari on iphone",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			device:  useragent.DeviceMobile,
			browser: entity("Safari", 14, 0),
			os:      entity("iOS", 14, 4),
		},
		{
			name:    "safari on ipad",
			ua:      "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			device:  useragent.DeviceTablet,
			browser: entity("Safari", 14, 0),
			os:      entity("iOS", 14, 4),
		},
		{
			name:    "chrome on android phone",
			ua:      "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36",
			device:  useragent.DeviceMobile,
			browser: entity("Chrome", 91, 0),
			os:      entity("Android", 11, 0),
		},
		{
			name:    "chrome on android tablet",
			ua:      "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36",
			device:  useragent.DeviceTablet,
			browser: entity("Chrome", 91, 0),
			os:      entity("Android", 11, 0),
		},
		{
			name:    "samsung internet",
			ua:      "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36",
			device:  useragent.DeviceMobile,
			browser: entity("Samsung Internet", 14, 0),
			os:      entity("Android", 11, 0),
		},
		{
			name:    "stock android browser",
			ua:      "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us; GT-I9100 Build/IML74K) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30",
			device:  useragent.DeviceMobile,
			browser: entity("Android Browser", 4, 0),
			os:      entity("Android", 4, 0),
		},
		{
			name:    "internet explorer 11",
			ua:      "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
			device:  useragent.DeviceDesktop,
			browser: entity("MSIE", 11, 0),
			os:      entity("Windows NT", 10, 0),
		},
		{
			name:    "internet explorer 9",
			ua:      "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)",
			device:  useragent.DeviceDesktop,
			browser: entity("MSIE", 9, 0),
			os:      entity("Windows NT", 6, 1),
		},
		{
			name:    "windows 98 release name",
			ua:      "Mozilla/4.0 (compatible; MSIE 5.5; Windows 98; Win 9x 4.90)",
			device:  useragent.DeviceDesktop,
			browser: entity("MSIE", 5, 5),
			os:      entity("Windows", 4, 10),
		},
		{
			name:    "windows phone wins over android",
			ua:      "Mozilla/5.0 (Mobile; Windows Phone 8.1; Android 4.0; ARM; Trident/7.0; Touch; rv:11.0; IEMobile/11.0; NOKIA; Lumia 635) like iPhone OS 7_0_3 Mac OS X AppleWebKit/537 (KHTML, like Gecko) Mobile Safari/537",
			device:  useragent.DeviceMobile,
			browser: entity("IEMobile", 11, 0),
			os:      entity("Windows Phone", 8, 1),
		},
		{
			name:    "opera mini",
			ua:      "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54",
			device:  useragent.DeviceMobile,
			browser: entity("Opera Mini", 10, 54),
		},
		{
			name:    "symbian without browser token",
			ua:      "Nokia6600/1.0 (4.09.1) SymbianOS/7.0s Series60/2.0 Profile/MIDP-2.0 Configuration/CLDC-1.0",
			device:  useragent.DeviceMobile,
			browser: entity("Nokia", 7, 0),
			os:      entity("Symbian", 7, 0),
		},
		{
			name:    "googlebot",
			ua:      "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			device:  useragent.DeviceRobot,
			browser: entity("Googlebot", 2, 1),
			os:      entity("robot", 0, 0),
		},
		{
			name:    "curl",
			ua:      "curl/7.64.1",
			device:  useragent.DeviceRobot,
			browser: entity("robot", 0, 0),
			os:      entity("robot", 0, 0),
		},
		{
			name:    "empty",
			ua:      "",
			device:  useragent.DeviceDesktop,
			browser: entity(useragent.Unknown, 0, 0),
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "unknown products",
			ua:      "Foo/1.0 Bar/2.0",
			device:  useragent.DeviceDesktop,
			browser: entity(useragent.Unknown, 0, 0),
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "aborted merge keeps the bare name",
			ua:      "Opera Foo/1.0",
			device:  useragent.DeviceDesktop,
			browser: useragent.Entity{Name: "Opera"},
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "rv ignored for other browsers",
			ua:      "Safari/5.0 rv:11.0",
			device:  useragent.DeviceDesktop,
			browser: entity("Safari", 5, 0),
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "rv versions mozilla",
			ua:      "Mozilla/5.0 (X11; rv:11.0)",
			device:  useragent.DeviceDesktop,
			browser: entity("Mozilla", 11, 0),
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "mobile turns ubuntu into ubuntu mobile",
			ua:      "Mozilla/5.0 (X11; Ubuntu; Mobile) Firefox/30",
			device:  useragent.DeviceMobile,
			browser: entity("Firefox", 30, 0),
			os:      useragent.Entity{Name: "Ubuntu Mobile"},
		},
		{
			name:    "mobile turns linux into android",
			ua:      "Mozilla/5.0 (Linux; Mobile) Firefox/30",
			device:  useragent.DeviceMobile,
			browser: entity("Firefox", 30, 0),
			os:      useragent.Entity{Name: "Android"},
		},
		{
			name:    "maybe robot with browser and os",
			ua:      "curl/7.0 (Windows NT 10.0) Firefox/90.0",
			device:  useragent.DeviceDesktop,
			browser: entity("Firefox", 90, 0),
			os:      entity("Windows NT", 10, 0),
		},
		{
			name:    "maybe robot without os",
			ua:      "curl/7.0 Firefox/90.0",
			device:  useragent.DeviceRobot,
			browser: entity("Firefox", 90, 0),
			os:      entity("robot", 0, 0),
		},
		{
			name:    "force browser blocks later browser",
			ua:      "Edg/91.0 Chrome/92.0",
			device:  useragent.DeviceDesktop,
			browser: entity("Edge", 91, 0),
			os:      entity(useragent.Unknown, 0, 0),
		},
		{
			name:    "padding does not hide a crawler",
			ua:      strings.Repeat("x", 5000) + " Googlebot/2.1",
			device:  useragent.DeviceRobot,
			browser: entity("Googlebot", 2, 1),
			os:      entity("robot", 0, 0),
		},
		{
			name:    "version overflow drops version",
			ua:      "Chrome/99999999999.1 (Windows NT 10.0)",
			device:  useragent.DeviceDesktop,
			browser: useragent.Entity{Name: "Chrome"},
			os:      entity("Windows NT", 10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := useragent.Parse(tt.ua)
			assert.Equal(t, tt.device, got.Device, "device")
			assert.Equal(t, tt.browser, got.Browser, "browser")
			if tt.os.Name != "" {
				assert.Equal(t, tt.os, got.OS, "os")
			}
		})
	}
}

func TestParse_Engine(t *testing.T) {
	t.Parallel()

	got := useragent.Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	assert.True(t, got.HasEngine())
	assert.Equal(t, entity("AppleWebKit", 537, 36), got.Engine)

	got = useragent.Parse("curl/7.64.1")
	assert.False(t, got.HasEngine())
}

func TestParse_Invariants(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"Mozilla",
		"Mozilla/5.0 (",
		"))))((((;;;;////",
		"Windows",
		"Opera",
		"like like like like",
		"Mobile Mobile Mobile",
		"\xff\xfe\x00garbage\x80",
		"日本語のブラウザ/1.0",
		strings.Repeat("Mozilla/5.0 (Windows NT 10.0) ", 5000),
		strings.Repeat("a", 200_000),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := useragent.Parse(in)
			assert.NotEmpty(t, got.Browser.Name)
			assert.NotEmpty(t, got.OS.Name)
			assert.NotEqual(t, useragent.DeviceUnknown, got.Device)
			if !got.Browser.HasVersion {
				assert.Zero(t, got.Browser.Major)
				assert.Zero(t, got.Browser.Minor)
			}
			if !got.OS.HasVersion {
				assert.Zero(t, got.OS.Major)
				assert.Zero(t, got.OS.Minor)
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	const ua = "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
	want := useragent.Parse(ua)

	var wg sync.WaitGroup
	results := make([]useragent.UserAgent, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = useragent.Parse(ua)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParser_CustomTable(t *testing.T) {
	t.Parallel()

	table, err := useragent.LoadTable(strings.NewReader(`
acme=FORCE_BROWSER,TV
acmeos=OS
bot=IGNORE
`), "custom")
	require.NoError(t, err)

	p := useragent.New(table)
	assert.Same(t, table, p.Table())

	got := p.Parse("Acme/3.2 (AcmeOS 1.0) Chrome/91.0")
	assert.Equal(t, entity("Acme", 3, 2), got.Browser)
	assert.Equal(t, entity("AcmeOS", 1, 0), got.OS)
	assert.Equal(t, useragent.DeviceTV, got.Device)

	// Chrome is unknown to this table, so the default table's rules must not leak in.
	got = p.Parse("Chrome/91.0")
	assert.Equal(t, entity(useragent.Unknown, 0, 0), got.Browser)
}

func TestParser_MaxLength(t *testing.T) {
	t.Parallel()

	ua := "Mozilla/5.0 (Windows NT 10.0) Chrome/91.0"

	short := useragent.New(nil, useragent.WithMaxLength(12))
	got := short.Parse(ua)
	assert.Equal(t, entity("Mozilla", 5, 0), got.Browser)
	assert.Equal(t, entity(useragent.Unknown, 0, 0), got.OS)

	unlimited := useragent.New(nil, useragent.WithMaxLength(0))
	got = unlimited.Parse(ua)
	assert.Equal(t, entity("Chrome", 91, 0), got.Browser)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("packaged table", func(t *testing.T) {
		t.Parallel()
		p, err := useragent.NewFromConfig(useragent.Config{})
		require.NoError(t, err)
		assert.Same(t, useragent.DefaultTable(), p.Table())
	})

	t.Run("missing keywords file", func(t *testing.T) {
		t.Parallel()
		p, err := useragent.NewFromConfig(useragent.Config{KeywordsFile: "/does/not/exist.txt"})
		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, useragent.ErrResourceNotFound)
	})
}

func TestWithLogger_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	p := useragent.New(nil, useragent.WithLogger(log), useragent.WithLogger(nil))
	got := p.Parse("Mozilla/5.0 (Windows NT 10.0) Chrome/91.0")
	assert.Equal(t, "Chrome", got.Browser.Name)
	assert.Empty(t, buf.String(), "successful parses are not logged")
}

func TestUnparsed(t *testing.T) {
	t.Parallel()

	got := useragent.Unparsed()
	assert.Equal(t, useragent.DeviceUnknown, got.Device)
	assert.Equal(t, useragent.Entity{Name: useragent.Unknown}, got.Browser)
	assert.Equal(t, useragent.Entity{Name: useragent.Unknown}, got.OS)
	assert.False(t, got.HasEngine())
}

func TestParser_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	p := useragent.New(nil,
		useragent.WithLogger(log),
		useragent.WithTokenHook(func(tok useragent.Token) {
			if tok.Name == "Boom" {
				panic("resolver blew up")
			}
		}),
	)

	var got useragent.UserAgent
	require.NotPanics(t, func() { got = p.Parse("Mozilla/5.0 Boom/1.0") })
	assert.Equal(t, useragent.Unparsed(), got)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "user agent classification failed", entry["msg"])
	assert.Equal(t, "resolver blew up", entry["panic"])
	assert.Equal(t, "Mozilla/5.0 Boom/1.0", entry["user_agent"])

	buf.Reset()
	got = p.Parse("Mozilla/5.0 (Windows NT 10.0) Chrome/91.0")
	assert.Equal(t, "Chrome", got.Browser.Name, "parser stays usable after a failure")
	assert.Empty(t, buf.String())
}
