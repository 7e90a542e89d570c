// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/meshdocs/c7/pkg/types"
)

// defaultContextQuery ranks search results when no --query is given.
const defaultContextQuery = "documentation"

// Parse turns a raw argument vector into an Intent. It is a pure
// function over args: no environment, no I/O, so the full grammar is
// testable without process access.
//
// Flags may appear anywhere and are order-independent: "--name value",
// "--name=value", and the short forms -h, -t, -q, -s. A flag without a
// following value gets the literal value "true". Every other token is
// a positional, kept in original order. The first positional selects
// the intent; a first positional that is not a reserved word is itself
// the library token (shorthand for get). A library literally named
// "search", "docs", "get", or "version" must use the explicit get form.
func Parse(args []string) Intent {
	flags := make(map[string]string)
	var pos []string

	for i := 0; i < len(args); i++ {
		name, isFlag := flagName(args[i])
		if !isFlag {
			pos = append(pos, args[i])
			continue
		}
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			flags[name[:eq]] = name[eq+1:]
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			flags[name] = args[i+1]
			i++
		} else {
			flags[name] = "true"
		}
	}

	// Help short-circuits regardless of anything else in the vector.
	if _, ok := flags["help"]; ok {
		return Intent{Kind: IntentHelp}
	}
	if len(pos) == 0 {
		return Intent{Kind: IntentHelp}
	}

	switch pos[0] {
	case "version":
		return Intent{Kind: IntentVersion}

	case "search":
		if len(pos) < 2 {
			return invalid("usage: c7 search <name> [--query <context>] [--json] [--save <file>]")
		}
		query := flags["query"]
		if query == "" {
			query = defaultContextQuery
		}
		return Intent{
			Kind:     IntentSearch,
			Library:  pos[1],
			Query:    query,
			JSON:     flags["json"] == "true",
			SaveFile: flags["save"],
		}

	case "docs":
		if len(pos) < 3 {
			return invalid("usage: c7 docs <identifier> <query> [--type txt|json]")
		}
		return docsIntent(IntentDocs, pos[1], pos[2], flags)

	case "get":
		if len(pos) < 3 {
			return invalid("usage: c7 get <library> <query> [--type txt|json]")
		}
		return docsIntent(IntentGet, pos[1], pos[2], flags)

	default:
		// Unrecognized first positional: the ergonomic shorthand where
		// it is itself the library token.
		if len(pos) < 2 {
			return invalid("usage: c7 <library> <query> [--type txt|json]")
		}
		return docsIntent(IntentGet, pos[0], pos[1], flags)
	}
}

// docsIntent builds a docs-fetching intent, validating the --type flag.
func docsIntent(kind IntentKind, library, query string, flags map[string]string) Intent {
	format, ok := parseFormat(flags)
	if !ok {
		return invalid(fmt.Sprintf("invalid --type %q (expected txt or json)", flags["type"]))
	}
	return Intent{Kind: kind, Library: library, Query: query, Format: format}
}

// parseFormat reads the --type flag, defaulting to text when absent.
func parseFormat(flags map[string]string) (types.OutputFormat, bool) {
	v, ok := flags["type"]
	if !ok {
		return types.FormatText, true
	}
	f := types.OutputFormat(v)
	if !f.Valid() {
		return "", false
	}
	return f, true
}

// flagName strips the flag prefix and expands short forms. The second
// return is false for positionals.
func flagName(tok string) (string, bool) {
	if strings.HasPrefix(tok, "--") {
		return tok[2:], true
	}
	switch tok {
	case "-h":
		return "help", true
	case "-t":
		return "type", true
	case "-q":
		return "query", true
	case "-s":
		return "save", true
	}
	return "", false
}

func invalid(reason string) Intent {
	return Intent{Kind: IntentInvalid, Reason: reason}
}
