// Package username converts usernames between their display form and the ASCII compatible form used on the
// wire (preferredUsername, WebFinger subjects and local actor paths).
package username

import "golang.org/x/net/idna"

// Usernames get the UTS #46 lookup mapping (case folding and normalization) without the host name rules,
// so underscores and leading or trailing hyphens survive.
var profile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// ToIDNA returns the ASCII compatible encoding of name. If name cannot be encoded it is returned unchanged.
func ToIDNA(name string) string {
	ascii, err := profile.ToASCII(name)
	if err != nil {
		return name
	}
	return ascii
}

// FromIDNA decodes an ASCII compatible username into its Unicode form. Labels that fail to decode are kept
// as they are.
func FromIDNA(name string) string {
	unicode, err := profile.ToUnicode(name)
	if err != nil {
		return name
	}
	return unicode
}

// Canonical returns the form of name that FromIDNA yields for its wire encoding. Local usernames are stored
// this way so that lookups by wire name find them.
func Canonical(name string) string {
	return FromIDNA(ToIDNA(name))
}
