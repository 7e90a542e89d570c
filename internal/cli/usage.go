// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

const usageText = `c7 - Context7 documentation client

Usage:
  c7 <library> <query> [--type txt|json]     resolve the library if needed, then fetch docs
  c7 get <library> <query> [--type ...]      same as the default form
  c7 docs <identifier> <query> [--type ...]  fetch docs for a known identifier, no resolution
  c7 search <name> [--query <context>]       list libraries matching a name
  c7 version                                 print the client version
  c7 --help                                  show this help

Flags:
  -t, --type    docs output format: txt (default) or json
  -q, --query   context string used to rank search results (default "documentation")
  -s, --save    write search results to a YAML query file
      --json    print search results as JSON
      --config  config file (default: ./c7.yaml or ~/.config/c7/config.yaml)

Identifiers have the form /owner/name with an optional version suffix,
e.g. /facebook/react or /vercel/next.js/v14.3.0. Anything else is
treated as a name and resolved through search first.

Environment:
  CONTEXT7_API_KEY  bearer token; without it requests run unauthenticated
                    under stricter remote rate limits
`
