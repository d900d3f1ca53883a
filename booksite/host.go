package booksite

import "strings"

const DefaultThemeRoot = "r-forge.r-project.org/themes/rforge/"

// Host holds the strings derived from a request's Host header. None of them
// reach the rendered markup.
type Host struct {
	Name      string
	GroupName string
	Domain    string
	ThemeRoot string
}

// ParseHost splits host at its first period into group name and domain. A
// host without a period is all group name. Ports are left in place.
func ParseHost(host string) Host {
	h := Host{
		Name:      host,
		GroupName: host,
		ThemeRoot: DefaultThemeRoot,
	}

	if i := strings.IndexByte(host, '.'); i >= 0 {
		h.GroupName = host[:i]
		h.Domain = host[i+1:]
	}

	return h
}

func (h Host) WithThemeRoot(root string) Host {
	if root != "" {
		h.ThemeRoot = root
	}

	return h
}
