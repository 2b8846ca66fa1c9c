package generator

import "github.com/lawnchairsociety/mazeforge/internal/random"

// Names lists the generators in menu order
func Names() []string {
	return []string{"RecursiveBacktrackingGenerator", "PrimGenerator"}
}

// Select maps a menu choice to a generator: "1" is recursive backtracking,
// "2" is Prim, anything else picks one of them at random.
func Select(choice string, rng random.Source) Generator {
	switch choice {
	case "1":
		return NewRecursiveBacktracking(rng)
	case "2":
		return NewPrim(rng)
	default:
		all := []Generator{NewRecursiveBacktracking(rng), NewPrim(rng)}
		return all[rng.IntN(len(all))]
	}
}
