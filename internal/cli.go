package internal

import "fmt"

// CommandHandler represents a function that handles a CLI command and
// returns the process exit code.
type CommandHandler func() int

// Command represents a CLI command with its metadata
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandler
}

// CLIRouter handles command registration and routing
type CLIRouter struct {
	commands map[string]*Command
	order    []string
}

// NewCLIRouter creates a new CLI router
func NewCLIRouter() *CLIRouter {
	return &CLIRouter{commands: make(map[string]*Command)}
}

// RegisterCommand registers a command with the router
func (r *CLIRouter) RegisterCommand(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.commands[alias] = cmd
	}
	r.order = append(r.order, cmd.Name)
}

// Route looks up and executes the command named in args. It returns the
// command's exit code and whether a matching command existed.
func (r *CLIRouter) Route(args []string) (int, bool) {
	if len(args) <= 1 {
		return 0, false // no command provided, caller decides the default
	}
	cmd, exists := r.commands[args[1]]
	if !exists || cmd.Handler == nil {
		return 1, false
	}
	return cmd.Handler(), true
}

// ShowHelp displays available commands
func (r *CLIRouter) ShowHelp() {
	fmt.Println(TitleStyle.Render("Qode Chair - NodeGUI Application Launcher"))
	fmt.Println()
	fmt.Println(InfoStyle.Render("Usage: qode-chair [command]"))
	fmt.Println()
	fmt.Println(InfoStyle.Render("Running without a command launches the application."))
	fmt.Println()
	for _, name := range r.order {
		cmd := r.commands[name]
		fmt.Printf("  %-12s %s\n", cmd.Name, cmd.Description)
	}
}
