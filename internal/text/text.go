// Package text provides loading and lookup for the prompts and messages the
// interactive session prints.
package text

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TextData represents the structure of the text.yaml file.
type TextData struct {
	Welcome WelcomeText `yaml:"welcome"`
	Prompts PromptText  `yaml:"prompts"`
	Status  StatusText  `yaml:"status"`
	Errors  ErrorText   `yaml:"errors"`
}

// WelcomeText contains the greeting and the closing line.
type WelcomeText struct {
	Banner string `yaml:"banner"`
	Finish string `yaml:"finish"`
}

// PromptText contains the questions asked of the user. Dimension takes the
// dimension name and its bounds; Generator, Solver and Modifier take the
// numbered menu.
type PromptText struct {
	Dimension    string `yaml:"dimension"`
	Generator    string `yaml:"generator"`
	Solver       string `yaml:"solver"`
	Modifier     string `yaml:"modifier"`
	Modification string `yaml:"modification"`
	Points       string `yaml:"points"`
	Coordinates  string `yaml:"coordinates"`
}

// StatusText contains progress and confirmation messages.
type StatusText struct {
	ChosenSize      string `yaml:"chosen_size"`
	ChosenGenerator string `yaml:"chosen_generator"`
	ChosenSolver    string `yaml:"chosen_solver"`
	ChosenModifier  string `yaml:"chosen_modifier"`
	ChosenPoint     string `yaml:"chosen_point"`
	Generating      string `yaml:"generating"`
	Modifying       string `yaml:"modifying"`
	Calculating     string `yaml:"calculating"`
	PathCost        string `yaml:"path_cost"`
}

// ErrorText contains the retry messages for bad input.
type ErrorText struct {
	RandomSize  string `yaml:"random_size"`
	OnlyNumbers string `yaml:"only_numbers"`
	OutOfRange  string `yaml:"out_of_range"`
	NotPassage  string `yaml:"not_passage"`
}

// Text provides text lookup functionality.
type Text struct {
	data *TextData
}

// Default returns the built-in English text.
func Default() *Text {
	return &Text{data: &TextData{
		Welcome: WelcomeText{
			Banner: "Hello, User! Welcome to the Maze generation!",
			Finish: "Work Finished!",
		},
		Prompts: PromptText{
			Dimension:    "\nChoose a %s! Enter an odd number between %d and %d or other symbols to select random",
			Generator:    "Select generator:\n%s\nType number of generator you want to choose or other symbols to choose random",
			Solver:       "Select solver:\n%s\nType number of solver you want to choose or other symbols to choose random",
			Modifier:     "\nSelect modifier:\n%s\nType number of modifier you want to choose or other symbols to choose random",
			Modification: "Do you want to modify the maze? Write YES or NO (Default is NO)",
			Points:       "Cool! Now you need to enter two points between which you want to find the path!\n",
			Coordinates:  "Enter col and row separated by one space starting from (1) to (Maze size - 2). For example:10 25",
		},
		Status: StatusText{
			ChosenSize:      "\nWidth: %d Height: %d\n\nGreat! Now you need to choose generator for your Maze!\n",
			ChosenGenerator: "\nSelected generator: %s\n\nGood! Now you need to choose solver for your Maze!\n",
			ChosenSolver:    "\nSelected solver: %s\n",
			ChosenModifier:  "\nSelected modifier: %s\n",
			ChosenPoint:     "\nChosen point: x = %d y = %d\n",
			Generating:      "Nice! Generating Maze...\n",
			Modifying:       "Modifying Maze...\n",
			Calculating:     "Calculating the path...\n",
			PathCost:        "Path length: %d Cost: %d",
		},
		Errors: ErrorText{
			RandomSize:  "Wrong! Number will be selected automatically",
			OnlyNumbers: "You need to enter only numbers separated by one space!",
			OutOfRange:  "Entered coordinates are out of range! Try again!",
			NotPassage:  "This point is not a Passage! Try again!",
		},
	}}
}

// Load loads text data from a YAML file. Keys the file leaves out keep
// their built-in value.
func Load(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t.data); err != nil {
		return nil, fmt.Errorf("failed to parse text file: %w", err)
	}

	return t, nil
}

// Banner returns the greeting.
func (t *Text) Banner() string {
	return t.data.Welcome.Banner
}

// Finish returns the closing line.
func (t *Text) Finish() string {
	return t.data.Welcome.Finish
}

// Dimension returns the prompt for one maze dimension.
func (t *Text) Dimension(name string, min, max int) string {
	return fmt.Sprintf(t.data.Prompts.Dimension, name, min, max)
}

// Menu returns the selection prompt for kind ("generator", "solver" or
// "modifier") listing names as a numbered menu.
func (t *Text) Menu(kind string, names []string) string {
	var format string
	switch strings.ToLower(kind) {
	case "generator":
		format = t.data.Prompts.Generator
	case "solver":
		format = t.data.Prompts.Solver
	case "modifier":
		format = t.data.Prompts.Modifier
	default:
		return ""
	}

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%d. %s", i+1, name)
	}
	return fmt.Sprintf(format, strings.Join(lines, "\n"))
}

// Chosen confirms the component picked for kind.
func (t *Text) Chosen(kind, name string) string {
	switch strings.ToLower(kind) {
	case "generator":
		return fmt.Sprintf(t.data.Status.ChosenGenerator, name)
	case "solver":
		return fmt.Sprintf(t.data.Status.ChosenSolver, name)
	case "modifier":
		return fmt.Sprintf(t.data.Status.ChosenModifier, name)
	default:
		return ""
	}
}

// ChosenSize confirms the maze dimensions.
func (t *Text) ChosenSize(height, width int) string {
	return fmt.Sprintf(t.data.Status.ChosenSize, width, height)
}

// ChosenPoint confirms a point as entered, column first.
func (t *Text) ChosenPoint(col, row int) string {
	return fmt.Sprintf(t.data.Status.ChosenPoint, col, row)
}

// PathCost reports the length and total cost of a solved path.
func (t *Text) PathCost(length, cost int) string {
	return fmt.Sprintf(t.data.Status.PathCost, length, cost)
}

// Modification returns the YES/NO question.
func (t *Text) Modification() string { return t.data.Prompts.Modification }

// Points introduces point entry.
func (t *Text) Points() string { return t.data.Prompts.Points }

// Coordinates explains the point format.
func (t *Text) Coordinates() string { return t.data.Prompts.Coordinates }

func (t *Text) Generating() string  { return t.data.Status.Generating }
func (t *Text) Modifying() string   { return t.data.Status.Modifying }
func (t *Text) Calculating() string { return t.data.Status.Calculating }

func (t *Text) RandomSize() string  { return t.data.Errors.RandomSize }
func (t *Text) OnlyNumbers() string { return t.data.Errors.OnlyNumbers }
func (t *Text) OutOfRange() string  { return t.data.Errors.OutOfRange }
func (t *Text) NotPassage() string  { return t.data.Errors.NotPassage }
