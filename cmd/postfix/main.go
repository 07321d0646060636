package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/postfix/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "postfix",
	Short: "Evaluate arithmetic expressions",
	Long: `postfix converts infix arithmetic with + - * / and parentheses into postfix
order and evaluates it. Invalid expressions evaluate to NaN.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (default "+config.FileName+" in this or a parent directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log configuration and input details")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("postfix: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration file named by --config, or the nearest
// one found from the working directory, and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	verbose, _ := flags.GetBool("verbose")
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		path, err = config.Find(".")
		if err != nil {
			return config.Config{}, err
		}
	}
	if verbose {
		if path == "" {
			log.Print("no config file")
		} else {
			log.Printf("config file: %s", path)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	return cfg, cfg.Validate()
}

// useColor decides whether to colorize output written to w. In auto mode,
// only terminals get color.
func useColor(setting string, w io.Writer) bool {
	switch setting {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
