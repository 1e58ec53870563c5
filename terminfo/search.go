package terminfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Find searches the terminfo database path for a compiled entry named
// term and parses it. The search order is: $TERMINFO; $HOME/.terminfo;
// each entry of $TERMINFO_DIRS (colon-separated; an empty entry becomes
// /usr/share/terminfo); then /etc/terminfo, /lib/terminfo,
// /usr/share/terminfo. Within a directory, both <dir>/<c>/<term> and
// <dir>/<hex>/<term> are tried, where <c> is term's first character and
// <hex> its lowercase hex code. Terminal names containing a path
// separator are rejected.
func Find(term string) (*Description, error) {
	data, err := readDatabase(term)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func readDatabase(term string) ([]byte, error) {
	if term == "" {
		return nil, nameError(term)
	}
	if filepath.Base(term) != term {
		return nil, nameError(term)
	}

	first := term[0:1]
	hex := fmt.Sprintf("%x", term[0])

	for _, dir := range searchDirs() {
		for _, sub := range [2]string{first, hex} {
			data, err := os.ReadFile(filepath.Join(dir, sub, term))
			if err == nil {
				return data, nil
			}
		}
	}
	return nil, absentError(term)
}

func searchDirs() []string {
	var dirs []string
	if d := os.Getenv("TERMINFO"); d != "" {
		dirs = append(dirs, d)
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	if tdirs := os.Getenv("TERMINFO_DIRS"); tdirs != "" {
		for _, d := range strings.Split(tdirs, string(os.PathListSeparator)) {
			if d == "" {
				d = "/usr/share/terminfo"
			}
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs, "/etc/terminfo", "/lib/terminfo", "/usr/share/terminfo")
	return dirs
}
