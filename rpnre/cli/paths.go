package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	if appTag == "" {
		return nil, fmt.Errorf("application tag must not be empty")
	}
	a := appPaths{tag: strings.ToLower(appTag)}
	var err error
	if a.config, err = os.UserConfigDir(); err != nil {
		return nil, err
	}
	if a.cache, err = os.UserCacheDir(); err != nil {
		a.cache = a.config
	}
	return a, nil
}

type appPaths struct {
	tag    string
	config string // platform-dependent user config root
	cache  string // platform-dependent user cache root
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	return filepath.Join(a.config, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.cache, "logs", a.tag)
}
