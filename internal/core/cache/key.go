package cache

import (
	"fmt"
	"strings"
)

// KeySeparator joins the parts of a cache key.
const KeySeparator = ":"

// Key builds a deterministic cache key from ordered parts, e.g. Key("posts", "list", 2, 5)
// is "posts:list:2:5". Nil and empty parts are skipped.
func Key(parts ...interface{}) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		s := fmt.Sprint(p)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, KeySeparator)
}
