package service

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"myuserapp/domain"
)

// BuildTransport parses baseAddress and returns the transport that reaches it. The encoding is derived from the
// address alone: the local development address (domain.LocalDevAddress, compared with scheme and host case folded)
// uses the text encoding, every other address the binary encoding. No side effects; calling it twice with the same address yields equal transports.
//
// Parameter baseAddress - http(s) URL of the service, e.g. "http://localhost:8080"; surrounding spaces and one trailing "/" are ignored; a path, query, fragment or user info is rejected; the port defaults to 80 (http) or 443 (https).
//
// Returns: (domain.Transport, nil) on success; (domain.Transport{}, ClientError CodeInvalidAddress) when the address cannot be parsed as an http(s) endpoint.
//
// Called from ServiceBinding.Client (once per binding) and tests.
func BuildTransport(baseAddress string) (domain.Transport, error) {
	normalized := normalizeAddress(baseAddress)
	if normalized == "" {
		return domain.Transport{}, domain.NewInvalidAddressError("address is empty", nil)
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return domain.Transport{}, domain.NewInvalidAddressError("cannot parse "+strconv.Quote(baseAddress), err)
	}
	var defaultPort string
	switch u.Scheme {
	case "http":
		defaultPort = "80"
	case "https":
		defaultPort = "443"
	default:
		return domain.Transport{}, domain.NewInvalidAddressError("scheme must be http or https in "+strconv.Quote(baseAddress), nil)
	}
	if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return domain.Transport{}, domain.NewInvalidAddressError("address must be scheme://host[:port] in "+strconv.Quote(baseAddress), nil)
	}
	host := u.Hostname()
	if host == "" {
		return domain.Transport{}, domain.NewInvalidAddressError("host is empty in "+strconv.Quote(baseAddress), nil)
	}
	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return domain.Transport{}, domain.NewInvalidAddressError("port must be 1-65535 in "+strconv.Quote(baseAddress), err)
	}
	return domain.Transport{
		BaseAddress:     normalized,
		Target:          net.JoinHostPort(host, port),
		Secure:          u.Scheme == "https",
		UseBinaryFormat: u.Scheme+"://"+net.JoinHostPort(strings.ToLower(host), port) != domain.LocalDevAddress,
	}, nil
}

// normalizeAddress trims spaces and one trailing "/" so "http://localhost:8080/" selects the same encoding as "http://localhost:8080".
func normalizeAddress(address string) string {
	return strings.TrimSuffix(strings.TrimSpace(address), "/")
}
