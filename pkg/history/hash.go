package history

import "strings"

// FragmentToPath reads a raw "#"-delimited fragment as a rooted path.
// The empty fragment reads as "/"; a fragment without a leading slash
// gets one, so "#users" and "#/users" route identically.
func FragmentToPath(fragment string) string {
	p := strings.TrimPrefix(fragment, "#")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// PathToFragment renders a rooted path as a "#"-delimited fragment.
func PathToFragment(path string) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "#" + path
}
