package profile

import "strings"

// TokenMarker is the header segment every Minecraft services access token starts with
const TokenMarker = "eyJraWQiOiIwNDkxODEiLCJhbGciOiJSUzI1NiJ9"

// ExtractToken returns the token part of a pasted credential.
// Users often paste the surrounding json or whitespace, everything before the
// marker is dropped. The rest is returned unchanged.
func ExtractToken(raw string) (string, error) {
	index := strings.Index(raw, TokenMarker)
	if index == -1 {
		return "", ErrInvalidCredential
	}
	return raw[index:], nil
}
