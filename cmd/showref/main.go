package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/odvcencio/showref/pkg/repo"
	"github.com/odvcencio/showref/pkg/showref"
	"github.com/spf13/cobra"
)

// Abbreviation digit count used by a bare --abbrev with no value.
const defaultAbbrevDigits = 12

// pflag requires a non-empty NoOptDefVal to make a flag's argument
// optional, so a bare --exclude-existing carries this sentinel. NUL can
// never occur in a real pattern.
const noPatternSentinel = "\x00"

// hashFullSentinel marks a bare --hash/-s: hash-only output, digit count
// untouched.
const hashFullSentinel = "full"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, showref.ErrNoMatch) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tagsOnly       bool
		headsOnly      bool
		verifyMode     bool
		showHead       bool
		deref          bool
		quiet          bool
		hashArg        string
		abbrev         int
		excludePattern string
	)

	cmd := &cobra.Command{
		Use:   "showref [<pattern>...]",
		Short: "List, verify, and filter repository refs",
		Long: "Lists refs matching the given patterns, verifies exact ref names,\n" +
			"or filters a stream of candidate refs on stdin against the refs that\n" +
			"already exist locally (--exclude-existing).",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			cfg, err := r.ReadConfig()
			if err != nil {
				return err
			}

			digits := cfg.DefaultAbbrev
			if cmd.Flags().Changed("abbrev") {
				digits = abbrev
			}
			hashOnly := cmd.Flags().Changed("hash")
			if hashOnly && hashArg != hashFullSentinel {
				n, err := strconv.Atoi(hashArg)
				if err != nil {
					return fmt.Errorf("invalid hash digit count %q", hashArg)
				}
				digits = n
			}

			opts := showref.Options{
				Quiet:       quiet,
				HashOnly:    hashOnly,
				Abbrev:      digits,
				Dereference: deref,
				ShowHead:    showHead,
				HeadsOnly:   headsOnly,
				TagsOnly:    tagsOnly,
			}

			// One mode per invocation, in priority order.
			switch {
			case cmd.Flags().Changed("exclude-existing"):
				pattern := excludePattern
				if pattern == noPatternSentinel {
					pattern = ""
				}
				return showref.ExcludeExisting(r, pattern, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			case verifyMode:
				return showref.Verify(r, r.Store, opts, args, cmd.OutOrStdout())
			default:
				return showref.Show(r, r.Store, opts, args, cmd.OutOrStdout())
			}
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&tagsOnly, "tags", false, "only show tags (can be combined with heads)")
	flags.BoolVar(&headsOnly, "heads", false, "only show heads (can be combined with tags)")
	flags.BoolVar(&verifyMode, "verify", false, "stricter reference checking, requires exact ref path")
	flags.BoolVar(&showHead, "head", false, "show the HEAD reference, even if it would be filtered out")
	flags.BoolVarP(&deref, "dereference", "d", false, "dereference tags into object IDs")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not print results to stdout (useful with --verify)")
	flags.StringVarP(&hashArg, "hash", "s", "", "only show the hash, optionally using <n> digits")
	flags.Lookup("hash").NoOptDefVal = hashFullSentinel
	flags.IntVar(&abbrev, "abbrev", 0, "use <n> digits to display object names")
	flags.Lookup("abbrev").NoOptDefVal = strconv.Itoa(defaultAbbrevDigits)
	flags.StringVar(&excludePattern, "exclude-existing", "", "show refs from stdin that aren't in the local repository")
	flags.Lookup("exclude-existing").NoOptDefVal = noPatternSentinel

	return cmd
}
