package tallyxml

import (
	"bytes"
	"regexp"
)

var (
	// decimal references to C0 controls, except tab (9), LF (10) and CR (13)
	controlCharRef = regexp.MustCompile(`&#0*([0-8]|1[124-9]|2[0-9]|3[01]);`)
	hexCharRef     = regexp.MustCompile(`&#[xX][0-9a-fA-F]+;`)
)

// StripControlRefs is the first sanitizing pass. It drops decimal character references to
// control characters and raw C0 control bytes; every other byte is kept as is.
func StripControlRefs(body []byte) []byte {
	out := controlCharRef.ReplaceAll(body, nil)
	if bytes.IndexFunc(out, isControl) < 0 {
		return out
	}
	// byte-wise so that undecoded legacy charsets pass through untouched
	kept := out[:0]
	for _, b := range out {
		if !isControl(rune(b)) {
			kept = append(kept, b)
		}
	}
	return kept
}

func isControl(r rune) bool {
	return r < 0x20 && r != '\t' && r != '\n' && r != '\r'
}

// StripHexRefs is the second pass, for payloads that embed hexadecimal references.
func StripHexRefs(body []byte) []byte {
	return hexCharRef.ReplaceAll(body, nil)
}

// Sanitize applies both passes.
func Sanitize(body []byte) []byte {
	return StripHexRefs(StripControlRefs(body))
}
