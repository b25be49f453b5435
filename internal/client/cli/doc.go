// Package cli provides the interactive pencilkeeper command-line client.
//
// It wires configuration, the token store, the API transport, services and
// state controllers, then runs a REPL over them. The auth state is
// re-derived from the token store before every command, so a session that
// expired during the previous command shows up in the prompt right away.
//
// Commands:
//   - register / login / logout / status
//   - list | l, next, search <text>, show <id>, own <id>, unown <id>
//   - collection, upload <ownership-id> <path|url|s3://bucket/key>
//   - groups, group <id>, makers, user <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
