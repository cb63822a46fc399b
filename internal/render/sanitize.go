package render

import "regexp"

var protoRelAttr = regexp.MustCompile(`(src|href)=(['"])//`)

// FixProtocolRelative rewrites protocol-relative src/href references to
// https: so images resolve when a document is opened standalone. Without it
// papers render with broken images and no error at generation time.
func FixProtocolRelative(s string) string {
	return protoRelAttr.ReplaceAllString(s, `${1}=${2}https://`)
}
