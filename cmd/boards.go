package cmd

import (
	"sort"
	"strings"
)

/*

built-in boards

A handful of named boards ship with the binary, so the solver can be
tried without typing 81 characters ("solve @sample-1") and so a fresh
server has something to seed its store with.

*/

var builtinBoards = map[string]string{
	"sample-1": `
		4....35.2
		..95.634.
		........8
		....3486.
		..46.52..
		.2879....
		9........
		.873.29..
		5.29....6`,
	"sample-2": `
		.1.5.6.2.
		.....3.18
		....7...6
		..5....3.
		..8.9.7..
		.6....4..
		5...4....
		64.2.....
		.3.9.1.8.`,
	"sample-3": `
		9..45...8
		.2.......
		...1724..
		.79...68.
		2.......5
		.43...27.
		..8325...
		.......6.
		4...16..3`,
	"sample-4": `
		948.5.2..
		..78.3..1
		.5..7....
		.7....3..
		2..6.5..4
		..5....9.
		....6..1.
		3..5.97..
		..6.1.423`,
	"sample-5": `
		.........
		9..5.7.3.
		...1..6.7
		.4..6..82
		67.....13
		38..1..9.
		7.5..8...
		.2.3.9..8
		.........`,
	"sample-6": `
		2..8...5.
		.85......
		.3675...1
		..3.4..98
		...3.5...
		41..6.7..
		5....712.
		......56.
		.2......4`,
	"example": `
		...7.4..5
		.2..1....
		........2
		.9...6.5.
		....7...8
		.532...1.
		4........
		....6....
		...4.7...`,
	"easy": `
		53..7....
		6..195...
		.98....6.
		8...6...3
		4..8.3..1
		7...2...6
		.6....28.
		...419..5
		....8..79`,
	"minimal": `
		.......1.
		4........
		.2.......
		....5.4.7
		..8...3..
		..1.9....
		3..4..2..
		.5.1.....
		...8.6...`,
}

// builtinNames returns the built-in board names, sorted.
func builtinNames() []string {
	names := make([]string, 0, len(builtinBoards))
	for name := range builtinBoards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinList renders the names for help text.
func builtinList() string {
	return strings.Join(builtinNames(), ", ")
}
