// Package cli implements the interactive qtask client: a small REPL over
// the auth session store and the user directory store. Command handlers
// print through the App's writer so tests can capture output.
package cli
