package profile

import "bytes"

var (
	payloadOpen  = []byte("<?xml version=")
	payloadClose = []byte("</plist>")
)

// ExtractPayload locates the plist document embedded in a signed
// mobileprovision envelope and returns the inclusive span from the first XML
// declaration to the last closing plist tag. The CMS signature and
// certificate material surrounding the payload is ignored.
//
// bytes.Index and bytes.LastIndex keep the scan linear; an install directory
// can hold hundreds of profiles of tens of kilobytes each.
func ExtractPayload(raw []byte) ([]byte, error) {
	start := bytes.Index(raw, payloadOpen)
	if start < 0 {
		return nil, ErrMalformedEnvelope
	}
	end := bytes.LastIndex(raw, payloadClose)
	if end < start {
		return nil, ErrMalformedEnvelope
	}
	return raw[start : end+len(payloadClose)], nil
}
