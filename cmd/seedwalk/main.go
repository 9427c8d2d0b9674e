// Package main provides the seedwalk CLI tool for deriving Bitcoin addresses
// from a BIP39 mnemonic phrase.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/seedwalk"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language      string
	mnemonicFlag  string
	passphrase    string
	askPassphrase bool
	testnet       bool
	count         uint32
	account       uint32
	scriptTypeStr string
	pathStr       string
	verbose       bool

	log = zerolog.Nop()

	rootCmd = &cobra.Command{
		Use:   "seedwalk",
		Short: "Derive Bitcoin addresses from a BIP39 mnemonic",
		Long: `Derive Bitcoin addresses from a BIP39 mnemonic.

seedwalk validates the mnemonic, stretches it into a BIP39 seed, walks the
BIP32 key tree, and prints master and account extended keys plus the first
external addresses for the BIP44 (legacy), BIP49 (nested segwit), BIP84
(native segwit), and BIP86 (taproot) account templates. An explicit --path
derives a single node instead.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. For example:
    seedwalk --mnemonic "..."
    ^ (note the leading space)
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  seedwalk --mnemonic "abandon abandon ... about"
  seedwalk --mnemonic "..." --testnet
  seedwalk --mnemonic "..." --count 5 --type native-segwit
  seedwalk --mnemonic "..." --path "m/44'/0'/0'/0/0"
  seedwalk --mnemonic "..." --ask-passphrase
  echo "abandon abandon ... about" | seedwalk --testnet`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
					With().Timestamp().Logger()
			}

			if err := setLanguage(language); err != nil {
				return err
			}

			mnemonic, err := readMnemonic()
			if err != nil {
				return err
			}
			if mnemonic == "" {
				return cmd.Help()
			}

			if askPassphrase {
				pass, err := readPassword("Enter the BIP39 passphrase: ")
				if err != nil {
					return err
				}
				passphrase = string(pass)
			}

			network := seedwalk.Mainnet
			if testnet {
				network = seedwalk.Testnet
			}
			log.Debug().Stringer("network", network).Msg("selected network")

			if pathStr != "" {
				err = derivePath(mnemonic, network)
			} else {
				err = deriveReport(mnemonic, network)
			}
			if err != nil {
				return formatError(err)
			}
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
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex (complex@ft.hn)\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for seedwalk.

To load completions:

Bash:
  $ source <(seedwalk completion bash)

Zsh:
  $ seedwalk completion zsh > "${fpath[1]}/_seedwalk"

Fish:
  $ seedwalk completion fish | source

PowerShell:
  PS> seedwalk completion powershell | Out-String | Invoke-Expression
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
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Wordlist language")
	rootCmd.PersistentFlags().StringVarP(&mnemonicFlag, "mnemonic", "m", "", "BIP39 mnemonic phrase (or pipe it on stdin)")
	rootCmd.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "Optional BIP39 passphrase")
	rootCmd.PersistentFlags().BoolVar(&askPassphrase, "ask-passphrase", false, "Prompt for the BIP39 passphrase instead of passing it as a flag")
	rootCmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "Derive testnet keys and addresses")
	rootCmd.PersistentFlags().Uint32VarP(&count, "count", "c", 20, "Number of external child addresses to derive per account") //nolint:mnd
	rootCmd.PersistentFlags().Uint32VarP(&account, "account", "a", 0, "Account index")
	rootCmd.PersistentFlags().StringVarP(&scriptTypeStr, "type", "t", "all", "Address type: legacy, segwit, native-segwit, taproot, or all")
	rootCmd.PersistentFlags().StringVar(&pathStr, "path", "", "Derive a single node at this path (e.g. m/44'/0'/0'/0/0)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace derivation stages on stderr")
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readMnemonic returns the phrase from --mnemonic, falling back to piped
// stdin. An empty result means the caller should show help.
func readMnemonic() (string, error) {
	if mnemonicFlag != "" {
		return seedwalk.NormalizeMnemonic(mnemonicFlag), nil
	}
	if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) == 0 {
		return "", nil
	}
	bts, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("could not read mnemonic from stdin: %w", err)
	}
	return seedwalk.NormalizeMnemonic(string(bts)), nil
}

// selectedPurposes maps --type to the purposes to derive.
func selectedPurposes() ([]seedwalk.Purpose, error) {
	if scriptTypeStr == "all" || scriptTypeStr == "" {
		return seedwalk.StandardPurposes(), nil
	}
	script, err := seedwalk.ParseScriptType(scriptTypeStr)
	if err != nil {
		return nil, err
	}
	return []seedwalk.Purpose{script.Purpose()}, nil
}

// derivePath derives and prints a single node for --path.
func derivePath(mnemonic string, network seedwalk.Network) error {
	path, err := seedwalk.ParsePath(pathStr)
	if err != nil {
		return err
	}
	script := seedwalk.ScriptLegacy
	if scriptTypeStr != "all" && scriptTypeStr != "" {
		script, err = seedwalk.ParseScriptType(scriptTypeStr)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	child, err := seedwalk.DerivePath(mnemonic, passphrase, network, path, script)
	if err != nil {
		return err
	}
	log.Debug().Str("path", child.Path).Dur("elapsed", time.Since(start)).Msg("derived node")

	fmt.Printf("[%s %s on %s]\n", script, child.Path, network)
	fmt.Println()
	fmt.Printf("%s (address)\n", child.Address)
	fmt.Printf("%s (compressed public key)\n", child.PublicKeyHex)
	if child.PrivateWIF != "" {
		fmt.Printf("%s (private key WIF)\n", child.PrivateWIF)
	}
	return nil
}

// deriveReport derives and prints the full report: master keys plus account
// keys and external children per purpose.
func deriveReport(mnemonic string, network seedwalk.Network) error {
	purposes, err := selectedPurposes()
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := seedwalk.DeriveReport(mnemonic, passphrase, network, account, purposes, count)
	if err != nil {
		return err
	}
	log.Debug().
		Int("accounts", len(report.Reports)).
		Uint32("children", count).
		Dur("elapsed", time.Since(start)).
		Msg("derived report")

	fmt.Printf("[master extended keys on %s]\n", report.Network)
	fmt.Println()
	fmt.Printf("%s (master private key at m)\n", report.Master.ExtendedPrivateKey)
	fmt.Printf("%s (master public key at m)\n", report.Master.ExtendedPublicKey)

	for _, acct := range report.Reports {
		fmt.Println()
		fmt.Printf("[BIP%d %s (%s)]\n", acct.Purpose, acct.Keys.Path, acct.Script)
		fmt.Println()
		fmt.Printf("%s (account private key)\n", acct.Keys.ExtendedPrivateKey)
		fmt.Printf("%s (account public key)\n", acct.Keys.ExtendedPublicKey)
		fmt.Println()
		for _, child := range acct.Children {
			fmt.Printf("  [%02d] %s  %s\n", child.Index, child.PublicKeyHex, child.Address)
		}
	}
	return nil
}

// formatError renders a styled error block on terminals, then returns a
// plain error so cobra exits non-zero.
func formatError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
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

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	defer fmt.Fprintf(os.Stderr, "\n")
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}
