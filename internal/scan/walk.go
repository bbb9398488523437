package scan

import (
	"os"
	"path/filepath"
	"sort"
)

// DiscoverOrigins resolves the set of port origins (category/port,
// relative to portsdir) a scan should cover. If origins is non-empty,
// each is validated and the list is returned sorted; otherwise portsdir is walked
// two levels deep (category, then port) and every directory containing
// a Makefile is treated as an origin, mirroring the ports tree layout
// spec.md assumes throughout.
func DiscoverOrigins(portsdir string, origins []string) ([]string, error) {
	if len(origins) > 0 {
		out := make([]string, 0, len(origins))
		for _, o := range origins {
			if _, err := os.Stat(filepath.Join(portsdir, o, "Makefile")); err != nil {
				return nil, err
			}
			out = append(out, o)
		}
		sort.Strings(out)
		return out, nil
	}

	categories, err := os.ReadDir(portsdir)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, cat := range categories {
		if !cat.IsDir() || isHidden(cat.Name()) {
			continue
		}
		ports, err := os.ReadDir(filepath.Join(portsdir, cat.Name()))
		if err != nil {
			continue
		}
		for _, port := range ports {
			if !port.IsDir() || isHidden(port.Name()) {
				continue
			}
			origin := filepath.Join(cat.Name(), port.Name())
			if _, err := os.Stat(filepath.Join(portsdir, origin, "Makefile")); err != nil {
				continue
			}
			found = append(found, origin)
		}
	}

	sort.Strings(found)
	return found, nil
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
