package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "WEB"
	ClientMobile ClientType = "MOBILE"
)

// ResolveClientType prefers the explicit X-Client-Type header and otherwise
// sniffs the user agent. Unknown callers are treated as mobile so tokens are
// returned in the body rather than cookies.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case string(ClientWeb):
		return ClientWeb
	case string(ClientMobile):
		return ClientMobile
	}
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") && !strings.Contains(ua, "mobile") {
		return ClientWeb
	}
	return ClientMobile
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
