package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate rpnre configuration with an application-key of 'RPNRE' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "RPNRE", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		rpnre.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		rpnre.Exit(1)
	}
	rpnre.Configuration = k // push the configuration to app-global scope
}

// mergeFlags loads command-line flags on top of the configuration and turns
// a log file name into a tracing destination URL.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", destinationURL(logname, ""))
	}
	return nil
}

// destinationURL makes a URL out of a log file name. Relative paths are
// resolved against dir, if dir is non-empty.
func destinationURL(logname string, dir string) string {
	if strings.Contains(logname, ":/") {
		return logname
	}
	if dir != "" && !filepath.IsAbs(logname) {
		logname = filepath.Join(dir, logname)
	}
	return "file://" + logname
}

// configureTracing sets up the Go log adapter as the tracing backend. Unless
// configured otherwise, batch-mode tracing is restricted to errors, as
// stdout is reserved for answers.
func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if !konf.IsSet("trace.root") {
		konf.Set("trace.root", "Error")
	}
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") {
			paths := locateLogDir()
			if paths != nil {
				konf.Set("tracing.destination", destinationURL(dest, paths.LogDir()))
			}
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing configured, destination = %q", konf.GetString("tracing.destination"))
	return nil
}

func locateLogDir() AppPaths {
	paths, err := DefaultAppPaths("RPNRE")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return nil
	}
	return paths
}
