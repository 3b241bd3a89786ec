package cmd

import (
	perrors "github.com/promptlib/cli/internal/errors"
)

// Action is the operation selected by the first command-line argument.
type Action int

const (
	// ActionHelp prints the usage text.
	ActionHelp Action = iota
	// ActionList lists every template grouped by category.
	ActionList
	// ActionSearch searches templates for a keyword.
	ActionSearch
	// ActionView prints one template file.
	ActionView
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionHelp:
		return "help"
	case ActionList:
		return "list"
	case ActionSearch:
		return "search"
	case ActionView:
		return "view"
	default:
		return "unknown"
	}
}

// Invocation is a classified command line.
type Invocation struct {
	Action  Action
	Operand string
}

// ParseInvocation classifies args. Only the first argument selects the
// action and only the second is read as its operand; anything after is
// ignored. An unrecognized first argument is an implicit search keyword.
// A missing or empty operand yields a usage error.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{Action: ActionHelp}, nil
	}

	command := args[0]
	var operand string
	if len(args) > 1 {
		operand = args[1]
	}

	switch command {
	case "-h", "--help":
		return Invocation{Action: ActionHelp}, nil
	case "-l", "--list":
		return Invocation{Action: ActionList}, nil
	case "-s", "--search":
		if operand == "" {
			return Invocation{Action: ActionSearch}, errMissingKeyword()
		}
		return Invocation{Action: ActionSearch, Operand: operand}, nil
	case "-v", "--view":
		if operand == "" {
			return Invocation{Action: ActionView}, errMissingPath()
		}
		return Invocation{Action: ActionView, Operand: operand}, nil
	default:
		if command == "" {
			return Invocation{Action: ActionSearch}, errMissingKeyword()
		}
		return Invocation{Action: ActionSearch, Operand: command}, nil
	}
}

func errMissingKeyword() error {
	return perrors.NewUsageError(
		"search keyword is required",
		"promptlib -s <keyword>, e.g. promptlib -s writing",
	)
}

func errMissingPath() error {
	return perrors.NewUsageError(
		"template path is required",
		"promptlib -v <path>, e.g. promptlib -v templates/writing/essay.md",
	)
}
