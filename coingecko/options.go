// Copyright (c) 2025 BVK Chaitanya

package coingecko

import "time"

var RestHostname = "api.coingecko.com"

type Options struct {
	// Hostname for the REST service endpoint.
	RestHostname string

	// URL scheme for the REST service endpoint. Tests override this to plain
	// "http".
	RestScheme string

	// Timeout to use for the HTTP requests.
	HttpClientTimeout time.Duration
}

func (v *Options) setDefaults() {
	if v.RestHostname == "" {
		v.RestHostname = RestHostname
	}
	if v.RestScheme == "" {
		v.RestScheme = "https"
	}
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 10 * time.Second
	}
}
