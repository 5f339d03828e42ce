package legalquery

import (
	"net/url"
	"strings"
)

// DefaultEndpoint is used unless the page is served through an ngrok tunnel.
const DefaultEndpoint = "http://localhost:5000/api/chat"

// EndpointResolver turns the configured default endpoint into the one to use.
// It is evaluated once at startup.
type EndpointResolver func(defaultURL string) string

// PageResolver resolves the endpoint relative to the page the widget is
// served from. See ResolveEndpoint.
func PageResolver(pageURL string) EndpointResolver {
	return func(defaultURL string) string {
		return ResolveEndpoint(defaultURL, pageURL)
	}
}

// ResolveEndpoint returns <scheme>://<host>/api/chat when the host of
// pageURL contains "ngrok" and defaultURL otherwise. An empty defaultURL
// means DefaultEndpoint.
func ResolveEndpoint(defaultURL, pageURL string) string {
	if defaultURL == "" {
		defaultURL = DefaultEndpoint
	}
	if pageURL == "" {
		return defaultURL
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return defaultURL
	}
	if !strings.Contains(u.Hostname(), "ngrok") {
		return defaultURL
	}
	return u.Scheme + "://" + u.Host + "/api/chat"
}
