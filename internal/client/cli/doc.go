// Package cli provides the interactive blog list command-line client.
//
// It wires configuration, the local session store, API services and an
// interactive REPL. Typical flow: restore the saved session, start a
// background connectivity watcher and execute user commands.
//
// Commands:
//   - login / logout / register
//   - list: blogs ordered by likes, numbered for later commands
//   - create: add a blog (logged in)
//   - like <n>: add one like to blog n
//   - delete <n>: remove blog n (creator only, asks for confirmation)
//
// The latest outcome is shown next to the prompt for a few seconds; a new
// message replaces the previous one.
package cli
