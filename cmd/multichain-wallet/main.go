// Package main provides the multichain-wallet CLI for deriving deterministic
// per-chain keys and addresses from a BIP-39 recovery phrase.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	multichain "github.com/justinhartman/multichain-wallet-cli"
)

const (
	maxWidth  = 72
	envPrefix = "MWALLET"
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language   string
	chainsStr  string
	accounts   int
	mnemonic   string
	passphrase string
	outputPath string

	// chainNames maps chain identifiers to display names, in output order.
	chainNames = map[multichain.Chain]string{
		multichain.ChainSolana: "solana",
		multichain.ChainEVM:    "ethereum/evm",
		multichain.ChainAptos:  "aptos",
		multichain.ChainTron:   "tron",
		multichain.ChainTON:    "ton",
		multichain.ChainSui:    "sui",
	}

	rootCmd = &cobra.Command{
		Use:   "multichain-wallet",
		Short: "Derive deterministic multi-chain wallets from a recovery phrase",
		Long: `Derive deterministic keys and addresses for Solana, EVM chains, Aptos,
Tron, TON and Sui from a single BIP-39 recovery phrase and optional
passphrase. Everything is computed offline; nothing leaves this machine.

The phrase can be passed with --mnemonic, through the ` + envPrefix + `_MNEMONIC
environment variable, piped on stdin, or typed at a hidden prompt.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. For example:
    multichain-wallet --mnemonic "..."
    ^ (note the leading space)
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  multichain-wallet
  multichain-wallet --accounts 5
  multichain-wallet --chains sol,evm
  multichain-wallet --chains ton --accounts 1 --output wallets.json
  echo "$MNEMONIC" | multichain-wallet --passphrase "my-passphrase"`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := setLanguage(language); err != nil {
				return err
			}

			count, err := resolveAccounts(cmd.Flags().Changed("accounts"), accounts)
			if err != nil {
				return formatStyledError(err)
			}

			phrase, prompted, err := resolveMnemonic()
			if err != nil {
				return err
			}

			pass := viper.GetString("passphrase")
			if pass == "" && prompted {
				raw, err := readSecret("Enter the BIP-39 passphrase (empty for none): ")
				if err != nil {
					return err
				}
				pass = string(raw)
			}

			seed, err := multichain.SeedFromMnemonic(phrase, pass)
			if err != nil {
				if errors.Is(err, multichain.ErrInvalidMnemonic) {
					return formatStyledError(err)
				}
				return err
			}

			results, err := multichain.DeriveAccounts(seed, multichain.Options{
				Chains:   parseChains(chainsStr),
				Accounts: count,
			})
			if err != nil {
				if errors.Is(err, multichain.ErrInvalidConfig) {
					return formatStyledError(err)
				}
				return err
			}

			if outputPath != "" {
				return writeJSON(outputPath, results)
			}

			printResults(results)
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 Justin Hartman.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for multichain-wallet.

To load completions:

Bash:
  $ source <(multichain-wallet completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ multichain-wallet completion bash > /etc/bash_completion.d/multichain-wallet
  # macOS:
  $ multichain-wallet completion bash > $(brew --prefix)/etc/bash_completion.d/multichain-wallet

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ multichain-wallet completion zsh > "${fpath[1]}/_multichain-wallet"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ multichain-wallet completion fish | source

  # To load completions for each session, execute once:
  $ multichain-wallet completion fish > ~/.config/fish/completions/multichain-wallet.fish

PowerShell:
  PS> multichain-wallet completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> multichain-wallet completion powershell > multichain-wallet.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Language of the BIP-39 wordlist")
	rootCmd.PersistentFlags().StringVarP(&chainsStr, "chains", "c", "", "Chains to derive (comma-separated: sol,evm,apt,trx,ton,sui; default all)")
	rootCmd.PersistentFlags().IntVarP(&accounts, "accounts", "n", multichain.DefaultAccounts, "Number of account indices to derive")
	rootCmd.PersistentFlags().StringVarP(&mnemonic, "mnemonic", "m", "", "BIP-39 recovery phrase (prefer stdin or the prompt over this flag)")
	rootCmd.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "Optional BIP-39 passphrase (empty means none)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write results to a JSON file instead of printing")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	_ = viper.BindPFlag("mnemonic", rootCmd.PersistentFlags().Lookup("mnemonic"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))

	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveAccounts maps the --accounts flag onto the library option. An
// explicit 0 is rejected here: the library treats a zero count as "use the
// default", which would silently contradict the flag.
func resolveAccounts(changed bool, n int) (int, error) {
	if changed && n == 0 {
		return 0, fmt.Errorf("could not configure accounts: %w: --accounts must be at least 1", multichain.ErrInvalidConfig)
	}
	return n, nil
}

// resolveMnemonic returns the recovery phrase from, in order of precedence:
// the --mnemonic flag or MWALLET_MNEMONIC environment variable, a line piped
// on stdin, or an interactive hidden prompt. prompted reports whether the
// interactive path was taken, so the caller knows to offer a passphrase
// prompt as well.
func resolveMnemonic() (phrase string, prompted bool, err error) {
	if phrase = strings.TrimSpace(viper.GetString("mnemonic")); phrase != "" {
		return phrase, false, nil
	}

	if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, false, nil
			}
		}
		return "", false, fmt.Errorf("could not read recovery phrase from stdin")
	}

	raw, err := readSecret("Enter your recovery phrase: ")
	if err != nil {
		return "", false, err
	}
	phrase = strings.TrimSpace(string(raw))
	if phrase == "" {
		return "", false, fmt.Errorf("no recovery phrase provided")
	}
	return phrase, true, nil
}

// parseChains splits the --chains flag into chain identifiers. An empty flag
// means all chains; unknown identifiers are left for the core to reject so
// the error message is consistent across entry points.
func parseChains(s string) []multichain.Chain {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []multichain.Chain
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		out = append(out, multichain.Chain(part))
	}
	return out
}

// printResults renders the derived accounts in bracketed sections.
func printResults(results []multichain.AccountResult) {
	for _, account := range results {
		fmt.Printf("[account %d]\n", account.Index)
		fmt.Println()

		for _, chain := range multichain.AllChains {
			record, ok := account.Records[chain]
			if !ok {
				if msg, failed := account.Errors[chain]; failed {
					printChainError(chain, msg)
				}
				continue
			}

			fmt.Printf("[%s %s]\n", chainNames[chain], record.Path)
			fmt.Println()
			fmt.Printf("%s (address)\n", record.Address)
			if record.AddressHex != "" {
				fmt.Printf("%s (raw address)\n", record.AddressHex)
			}
			if record.PublicKey != "" && record.PublicKey != record.Address {
				fmt.Printf("%s (public key)\n", record.PublicKey)
			}
			fmt.Printf("%s (private key)\n", record.PrivateKey)
			if record.WalletImportKey != "" {
				fmt.Printf("%s (wallet import key)\n", record.WalletImportKey)
			}
			fmt.Println()
		}
	}
}

// printChainError renders a single failed record without aborting the rest
// of the output.
func printChainError(chain multichain.Chain, msg string) {
	text := fmt.Sprintf("could not derive %s: %s", chainNames[chain], msg)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		renderBlock(&b, errorStyle, getWidth(maxWidth), text)
		fmt.Print(b.String())
		return
	}
	fmt.Fprintln(os.Stderr, text)
}

// writeJSON persists the results to a file readable only by the owner.
func writeJSON(path string, results []multichain.AccountResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode results: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d account(s) to %s\n", len(results), path)
	return nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatStyledError displays a validation error with styling when stdout is
// a terminal, and returns a plain error so the command exits non-zero.
func formatStyledError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	// Return a plain error (cobra may print this to stderr, but the styled
	// version has already been shown)
	return errors.New(err.Error())
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// setLanguage sets the language of the bip39 mnemonic wordlist.
func setLanguage(language string) error {
	list := getWordlist(language)
	if list == nil {
		return fmt.Errorf("this language is not supported")
	}
	bip39.SetWordList(list)
	return nil
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

func getWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	wl := wordLists[tag]
	if wl == nil {
		return wordLists[btag]
	}
	return wl
}

// readSecret reads a line from the controlling terminal without echoing it.
func readSecret(msg string) ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                       //nolint: errcheck
	secret, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	return secret, nil
}
