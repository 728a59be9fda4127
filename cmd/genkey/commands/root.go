package commands

import (
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"genkey/internal/app"
	"genkey/internal/domain"
)

var (
	configPath string
	verbose    bool

	algorithm string
	format    string
	comment   string
	file      string
	public    bool
	seed      string
	mnemonic  string

	randSource io.Reader = rand.Reader
	logger     *slog.Logger
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "genkey",
		Short: "Generate RSA-2048 or Ed25519 private keys in PKCS#8 or OpenSSH format",
		Long: `genkey generates a new private key and writes it PEM-armored.

  genkey                                   RSA-2048, PKCS#8, to stdout
  genkey -t ed25519 -m openssh -C me@host  OpenSSH Ed25519 key
  genkey -t ed25519 -f id_ed25519 --pub    also writes id_ed25519.pub

Short flags follow ssh-keygen: -t selects the key type, -m the format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = app.NewLogger(cmd.ErrOrStderr(), verbose)
			return nil
		},
		RunE: runGenerate,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/genkey/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	f := root.Flags()
	f.StringVarP(&algorithm, "algorithm", "t", string(domain.AlgorithmRSA), "key algorithm: rsa or ed25519")
	f.StringVarP(&format, "format", "m", string(domain.FormatPKCS8), "container format: pkcs8 or openssh")
	f.StringVarP(&comment, "comment", "C", "", "key comment (openssh format and public key line)")
	f.StringVarP(&file, "file", "f", "", "write the private key to this file instead of stdout")
	f.BoolVar(&public, "pub", false, "also emit the authorized_keys line (to <file>.pub when --file is set)")
	f.StringVar(&seed, "seed", "", "hex encoded 32-byte ed25519 seed")
	f.StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic to derive the ed25519 seed from")

	root.AddCommand(mnemonicCmd(), versionCmd())
	return root
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := app.New(randSource, logger).Generate(cfg)
	if err != nil {
		return err
	}
	defer res.Wipe()

	if err := app.Emit(res, cfg, cmd.OutOrStdout()); err != nil {
		return err
	}
	if cfg.File != "" {
		logger.Info("wrote private key", "file", cfg.File, "fingerprint", res.Fingerprint)
	}
	return nil
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = app.DefaultConfigPath(); err != nil {
			logger.Debug("no default config path", "err", err)
			path = ""
		}
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("algorithm") {
		cfg.Algorithm = domain.Algorithm(algorithm)
	}
	if f.Changed("format") {
		cfg.Format = domain.Format(format)
	}
	if f.Changed("comment") {
		cfg.Comment = comment
	}
	if f.Changed("file") {
		cfg.File = file
	}
	if f.Changed("pub") {
		cfg.Public = public
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("mnemonic") {
		cfg.Mnemonic = mnemonic
	}
	return cfg, nil
}
