package player

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
	mprisPrefix      = "org.mpris.MediaPlayer2."
)

// Mpris queries playback state from any MPRIS-compatible player over the
// session bus. It is the fallback backend for players without a remote
// query command.
type Mpris struct {
	bus     *dbus.Conn
	service string
}

func NewMpris(bus *dbus.Conn, service string) (*Mpris, error) {
	if bus == nil {
		return nil, errors.New("nil dbus connection")
	}
	if service == "" {
		return nil, errors.New("empty mpris service name")
	}
	return &Mpris{bus: bus, service: service}, nil
}

func (m *Mpris) Name() string { return m.service }

func (m *Mpris) Status(ctx context.Context) (*Status, error) {
	obj := m.bus.Object(m.service, mprisPath)
	if obj == nil {
		return nil, errors.New("nil dbus object")
	}

	status := &Status{}

	metaProp, err := obj.GetProperty(mprisPlayerIface + ".Metadata")
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata property: %w", err)
	}

	metadata, ok := metaProp.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("unexpected metadata type %T", metaProp.Value())
	}

	status.SongPath = songPathFromMetadata(metadata)
	status.DurationSecs = extractDurationSeconds(metadata, "mpris:length")

	posProp, err := obj.GetProperty(mprisPlayerIface + ".Position")
	if err == nil {
		if micros, ok := posProp.Value().(int64); ok && micros > 0 {
			status.PositionSecs = micros / 1_000_000
		}
	}

	stateProp, err := obj.GetProperty(mprisPlayerIface + ".PlaybackStatus")
	if err == nil {
		if state, ok := stateProp.Value().(string); ok {
			status.Playing = state == "Playing"
			if state == "Stopped" {
				status.SongPath = ""
			}
		}
	}

	return status, nil
}

// ListServices returns the MPRIS service names currently on the bus.
func ListServices(bus *dbus.Conn) ([]string, error) {
	var names []string
	err := bus.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		return nil, fmt.Errorf("failed to list dbus names: %w", err)
	}

	var services []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			services = append(services, name)
		}
	}

	return services, nil
}

// songPathFromMetadata prefers the local file path behind xesam:url and
// falls back to the opaque track id.
func songPathFromMetadata(metadata map[string]dbus.Variant) string {
	rawURL := extractString(metadata, "xesam:url")
	if rawURL != "" {
		parsed, err := url.Parse(rawURL)
		if err == nil && parsed.Scheme == "file" {
			return parsed.Path
		}
		return rawURL
	}
	return extractString(metadata, "mpris:trackid")
}

func extractString(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}

	raw := variant.Value()
	if raw == nil {
		return ""
	}

	text, ok := raw.(string)
	if ok {
		return text
	}

	return ""
}

func extractDurationSeconds(metadata map[string]dbus.Variant, key string) int64 {
	variant, exists := metadata[key]
	if !exists {
		return 0
	}

	switch typed := variant.Value().(type) {
	case int64:
		if typed <= 0 {
			return 0
		}
		return typed / 1_000_000
	case uint64:
		if typed == 0 {
			return 0
		}
		return int64(typed / 1_000_000)
	default:
		return 0
	}
}
