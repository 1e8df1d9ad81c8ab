package useragent_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

func TestDevice_Order(t *testing.T) {
	t.Parallel()

	ordered := []useragent.Device{
		useragent.DeviceUnknown,
		useragent.DeviceDesktop,
		useragent.DeviceMobile,
		useragent.DeviceTablet,
		useragent.DeviceTV,
		useragent.DeviceRobot,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestParseDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    useragent.Device
		wantErr bool
	}{
		{"desktop", useragent.DeviceDesktop, false},
		{"MOBILE", useragent.DeviceMobile, false},
		{"Tablet", useragent.DeviceTablet, false},
		{"tv", useragent.DeviceTV, false},
		{"ROBOT", useragent.DeviceRobot, false},
		{"watch", useragent.DeviceUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := useragent.ParseDevice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, useragent.ErrUnknownDevice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"BROWSER", "BROWSER_OS", "RENDERING_ENGINE", "FORCE_BROWSER", "FORCE_OS",
		"IGNORE", "MAYBE_BROWSER", "MAYBE_OS", "MAYBE_ROBOT", "MERGE",
		"MERGE_OR_BROWSER", "MERGE_OR_OS", "OS", "ROBOT",
	} {
		k, err := useragent.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, k.String())
	}

	k, err := useragent.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, useragent.KindNone, k)

	_, err = useragent.ParseKind("browser")
	assert.ErrorIs(t, err, useragent.ErrUnknownKind)
}

func TestUserAgent_JSON(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse("curl/7.64.1")
	data, err := json.Marshal(ua)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"device": "robot",
		"browser": {"name": "robot", "has_version": true},
		"os": {"name": "robot", "has_version": true}
	}`, string(data))

	var back struct {
		Device useragent.Device `json:"device"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, useragent.DeviceRobot, back.Device)
}

func TestEntity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Chrome 91.0", useragent.Entity{Name: "Chrome", Major: 91, HasVersion: true}.String())
	assert.Equal(t, "Chrome", useragent.Entity{Name: "Chrome"}.String())
	assert.True(t, useragent.Entity{}.IsZero())

	major, minor, ok := useragent.Entity{Name: "iOS", Major: 14, Minor: 4, HasVersion: true}.Version()
	assert.Equal(t, uint32(14), major)
	assert.Equal(t, uint32(4), minor)
	assert.True(t, ok)
}
