package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: org2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert org files to HTML or PDF (default)")
	fmt.Fprintln(w, "  serve      Serve conversion over HTTP")
	fmt.Fprintln(w, "  dump       Print the document tree of an org file")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  doctor     Check system configuration for PDF output")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'org2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: org2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert org files to HTML fragments, HTML pages or PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .org file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin: default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML:")
	fmt.Fprintln(w, "  -b, --base-level <n>      HTML level of a single-star heading (1-6)")
	fmt.Fprintln(w, "      --separator <s>       String between sibling elements (\"\\n\" allowed)")
	fmt.Fprintln(w, "  -s, --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first heading)")
	fmt.Fprintln(w, "      --max-depth <n>       Nesting limit (0 = default, -1 = none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles and templates directory")
	fmt.Fprintln(w, "      --highlight           Highlight source blocks that name a language")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Render PDF through headless Chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --page-numbers        Print page numbers in the footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: org2html serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve conversion over HTTP until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Routes:")
	fmt.Fprintln(w, "  GET  /health              Liveness probe")
	fmt.Fprintln(w, "  POST /convert             Org body in; HTML or PDF out")
	fmt.Fprintln(w, "  POST /dump                Org body in; document tree out")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel converters (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML and styling flags are the same as for convert.")
	fmt.Fprintln(w, "Logs are written to stderr as JSON.")
}

// printDumpUsage prints usage for the dump command.
func printDumpUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: org2html dump [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the document tree of an org file, or of stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -b, --base-level <n>      Level of a single-star heading")
	fmt.Fprintln(w, "      --max-depth <n>       Nesting limit (0 = default, -1 = none)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdServe:
		printServeUsage(env.Stdout)
	case cmdDump:
		printDumpUsage(env.Stdout)
	case cmdConfig:
		fmt.Fprintln(env.Stdout, "Usage: org2html config [--config <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration after applying the config file and ORG2HTML_* variables.")
	case cmdDoctor:
		fmt.Fprintln(env.Stdout, "Usage: org2html doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, environment and temp directory for PDF output.")
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: org2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: org2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return usageError(fmt.Errorf("unknown command: %s", args[0]))
	}
	return nil
}
