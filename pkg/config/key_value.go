package config

import "strings"

// ParseKeyAlias splits a single alias=key pair. Both sides are trimmed and an alias
// without "=" maps to the empty key.
func ParseKeyAlias(input string) (alias, key string) {
	alias, key, _ = strings.Cut(input, "=")
	return strings.TrimSpace(alias), strings.TrimSpace(key)
}

// ParseKeyAliases parses a comma-separated list of alias=key pairs such as "H=B,Cis=C#".
// Empty pairs and pairs missing either side are ignored.
func ParseKeyAliases(input string) KeyAliases {
	result := KeyAliases{}
	for _, pair := range strings.Split(input, ",") {
		alias, key := ParseKeyAlias(pair)
		if alias == "" || key == "" {
			continue
		}
		result[alias] = key
	}
	return result
}

// KeyAliases maps alternative key spellings to names the transposer understands.
type KeyAliases map[string]string

// Resolve returns the aliased key name, or name itself when it has no alias.
func (a KeyAliases) Resolve(name string) string {
	if key, ok := a[strings.TrimSpace(name)]; ok {
		return key
	}
	return name
}
