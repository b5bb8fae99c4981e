// Build calculator CLI: evaluates loadouts, ranks armor and manages saved builds.
//
// Usage:
//
//	buildcalc eval builds/my_build.yaml
//	buildcalc rank HEAD high "Attack Boost" "Critical Eye" --xlsx
//	buildcalc weapons GREAT_SWORD master attack --desc
//	buildcalc save builds/my_build.yaml
//	buildcalc load <id>
//	buildcalc list
//	buildcalc delete <id>
//	buildcalc --list
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/buildcalc/internal/config"
)

const ConfigPath = "config/buildcalc.yaml"

type command struct {
	name  string
	usage string
	desc  string
	run   func(ctx context.Context, app *app, args []string) error
}

var commands []command

func registerCommand(name, usage, desc string, fn func(ctx context.Context, app *app, args []string) error) {
	commands = append(commands, command{name: name, usage: usage, desc: desc, run: fn})
}

func init() {
	registerCommand("eval", "eval <loadout.yaml>", "Evaluate a loadout (skills + stats as JSON)", runEval)
	registerCommand("rank", "rank <ARMOR_TYPE> <rank> <skill>... [--xlsx]", "Rank armor against target skills", runRank)
	registerCommand("weapons", "weapons <WEAPON_TYPE> <rank> [sort-key] [--desc]", "List weapons sorted by a column", runWeapons)
	registerCommand("save", "save <loadout.yaml>", "Store a loadout in the database", runSave)
	registerCommand("load", "load <id>", "Print a stored loadout with its evaluation", runLoad)
	registerCommand("delete", "delete <id>", "Remove a stored loadout", runDelete)
	registerCommand("list", "list", "List stored loadouts", runList)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}
	if args[0] == "--list" {
		printList()
		return nil
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		printList()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	_ = godotenv.Load()

	cfgPath := ConfigPath
	if p := os.Getenv("BUILDCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	return cmd.run(ctx, a, args[1:])
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: buildcalc <command> [args]")
	fmt.Fprintln(os.Stderr, "       buildcalc --list")
}

func printList() {
	sorted := make([]command, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	fmt.Fprintln(os.Stderr, "Available commands:")
	for _, c := range sorted {
		fmt.Fprintf(os.Stderr, "  %-52s %s\n", c.usage, c.desc)
	}
}
