package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage writes every command with its description, sub commands
// indented below their parent. Aliases are listed once with their command.
func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}
		names := name
		if len(command.Aliases) > 0 {
			names += ", " + strings.Join(command.Aliases, ", ")
		}
		if len(command.ArgNames) > 0 {
			names += " " + strings.Join(command.ArgNames, " ")
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, names, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, names)
		}
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
