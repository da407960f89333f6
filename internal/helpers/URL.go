package helpers

import (
	"fmt"
	"net/url"
	"strings"
)

// EnforceWebsocket turns host:port or an http(s) URL into a ws(s) URL ending in path.
func EnforceWebsocket(raw string, path string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "ws://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	switch parsed.Scheme {
	case "http", "ws":
		parsed.Scheme = "ws"
	case "https", "wss":
		parsed.Scheme = "wss"
	default:
		return nil, fmt.Errorf("unsupported scheme %s for the event link", parsed.Scheme)
	}

	if parsed.Path == "" || parsed.Path == "/" {
		parsed.Path = path
	}

	return parsed, nil
}
