package main

import (
	"fmt"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(s Settings, args []string) error
}

var rootCmd = &Command{
	Name:  "expander-demo",
	Short: "Terminal demo for expandable containers",
	Long: `expander-demo renders expandable frames and linear containers in the
terminal. Screens come from a YAML configuration file; edit it while the
demo runs and the screens are rebuilt in place.`,
	Usage: "expander-demo [flags] [command]",
}

var (
	commands    = make(map[string]*Command)
	commandList []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandList = append(commandList, cmd)
}

// Execute parses global flags, loads settings and runs the selected
// command. Without a command the interactive demo starts.
func Execute(args []string) error {
	overrides := make(map[string]string)
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(rest) == 0 {
				printHelp()
				return nil
			}
			rest = append(rest, arg)
		case "-v", "--version", "version":
			fmt.Printf("expander-demo version %s (built %s)\n", Version, BuildTime)
			return nil
		case "--config", "--state", "--settings", "--log":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a path", arg)
			}
			overrides[strings.TrimPrefix(arg, "--")] = args[i+1]
			i++
		default:
			if key, value, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(key, "--") {
				overrides[strings.TrimPrefix(key, "--")] = value
				continue
			}
			rest = append(rest, arg)
		}
	}

	settings, err := LoadSettings(overrides)
	if err != nil {
		return err
	}

	name := "run"
	if len(rest) > 0 {
		name, rest = rest[0], rest[1:]
	}
	cmd, ok := commands[name]
	if !ok {
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}
	for _, arg := range rest {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(settings, rest)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range commandList {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --config PATH        Expander configuration (default: built-in screens)")
	fmt.Println("  --state PATH         Where widget state is saved between runs")
	fmt.Println("  --settings PATH      Settings file")
	fmt.Println("  --log PATH           Log file (the terminal belongs to the demo)")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  EXPANDER_DEMO_CONFIG, EXPANDER_DEMO_STATE, EXPANDER_DEMO_LOG,")
	fmt.Println("  EXPANDER_DEMO_FRAME_INTERVAL, EXPANDER_DEMO_WATCH, EXPANDER_DEMO_SETTINGS")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
