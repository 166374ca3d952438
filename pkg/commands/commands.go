package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/items"
	"tableflip.dev/itemlist/pkg/prompt"
	"tableflip.dev/itemlist/pkg/store"
)

// root holds what the verbs share for one invocation.
type root struct {
	opts options.GlobalOptions
	log  *zap.Logger

	// persistence is built once per invocation so an --ephemeral list is
	// shared by everything the command does.
	persistence store.Persistence
}

func New() *cobra.Command {
	r := &root{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "itemlist",
		Short: options.Wrap80("Keep a single list of unique items on the command line."),
		Long: options.Wrap80(`Keep a single list of unique items on the command line.
The list is saved between runs; use "itemlist ui" for the interactive view.`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = r.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddGlobalArgs(cmd, &r.opts)

	addCommands(cmd, r)
	return cmd
}

func addCommands(topLevel *cobra.Command, r *root) {
	addUI(topLevel, r)
	addKey(topLevel)
	addAdd(topLevel, r)
	addGet(topLevel, r)
	addEdit(topLevel, r)
	addRemove(topLevel, r)
	addClear(topLevel, r)
	addWatch(topLevel, r)
	addVersion(topLevel)
	addCompletions(topLevel, r)
}

func (r *root) setup() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if r.opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	r.log = log.Named("itemlist")
	return nil
}

// store opens the persistence slot, or an empty in-memory one with
// --ephemeral. Disk caching is disabled when uncached is set, for callers that
// need to see writes from other processes.
func (r *root) store(uncached bool) (store.Persistence, error) {
	if r.persistence != nil {
		return r.persistence, nil
	}
	if r.opts.Ephemeral {
		r.persistence = store.NewMemory()
		return r.persistence, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if uncached {
		cfg = store.Uncached(cfg)
	}
	p, err := store.Load(cfg, store.WithLogger(r.log))
	if err != nil {
		return nil, err
	}
	r.persistence = p
	return p, nil
}

func (r *root) items() (*items.Store, error) {
	p, err := r.store(false)
	if err != nil {
		return nil, err
	}
	return items.New(p, r.log), nil
}

// dispatcher wires the item store to a terminal prompter on the command's
// streams.
func (r *root) dispatcher(cmd *cobra.Command, assumeYes bool) (*app.Dispatcher, error) {
	s, err := r.items()
	if err != nil {
		return nil, err
	}
	p := prompt.NewTerminalOn(cmd.InOrStdin(), cmd.ErrOrStderr(), assumeYes)
	return app.New(s, p, r.log), nil
}

// silenceRecoverable stops cobra from printing errors the prompter already
// showed to the user.
func silenceRecoverable(cmd *cobra.Command, err error) error {
	if app.IsRecoverable(err) {
		cmd.SilenceErrors = true
	}
	return err
}
