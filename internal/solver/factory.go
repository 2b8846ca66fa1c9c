package solver

import "github.com/lawnchairsociety/mazeforge/internal/random"

// Names lists the solvers in menu order
func Names() []string {
	return []string{"BFSSolver", "DFSSolver"}
}

// Select maps a menu choice to a solver: "1" is BFS, "2" is DFS, anything
// else picks one of them at random.
func Select(choice string, rng random.Source) Solver {
	switch choice {
	case "1":
		return NewBFS()
	case "2":
		return NewDFS()
	default:
		all := []Solver{NewBFS(), NewDFS()}
		return all[rng.IntN(len(all))]
	}
}
