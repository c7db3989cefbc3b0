// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
inspectx - Artifact inspection through ordered analysis passes

USAGE:
  inspectx [options] <value>...
  <command> | inspectx [options]

  Each value is classified (ip, int or string) and run through the passes
  registered for its kind. With no values, one value per line is read
  from stdin.

OPTIONS:
  -c, --config string      YAML config file (default: ./inspectx.yaml if present)
  -i, --ignore strings     Pass names or glob patterns to skip (repeatable, comma separated)
  -a, --as string          Force the artifact kind: ip, int, string
  -w, --workers int        Number of values inspected concurrently (default: 4)
      --no-color           Disable colored output
  -l, --list               List inspectors and their passes, then exit
      --log-level string   Log level: debug, info, warn, error (default: info)

INFO:
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Inspect an address:
    inspectx 192.168.1.10

  Skip some passes:
    inspectx -i check_loopback -i 'str_*' 8.8.8.8 hello

  Treat a number as text:
    inspectx --as string 1234

  Inspect a list:
    cat values.txt | inspectx -w 8

CONFIG FILE:
  ignore: [check_loopback, "str_*"]
  workers: 4
  no_color: false
  log_level: info

ENVIRONMENT VARIABLES:
  INSPECTX_CONFIG=/path/inspectx.yaml   Config file
  INSPECTX_IGNORE=ip_class,int_*        Ignore entries (comma separated)
  INSPECTX_WORKERS=8                    Number of workers
  INSPECTX_NO_COLOR=true                Disable colored output
  INSPECTX_LOG_LEVEL=debug              Log level

  Note: CLI flags override environment variables, which override the
  config file. Ignore entries from every source are combined.

EXIT STATUS:
  0  every value was inspected
  1  at least one value could not be inspected
  2  invalid configuration or usage
`

// PrintHelp writes the help message to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "inspectx %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
