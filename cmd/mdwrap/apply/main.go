package apply

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/mdwrap/pkg/command"
	"github.com/walteh/mdwrap/pkg/config"
	"github.com/walteh/mdwrap/pkg/diff"
	"github.com/walteh/mdwrap/pkg/host"
	"github.com/walteh/mdwrap/pkg/l10n"
	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrUnknownCommand = errors.Base("unknown command")
	ErrUnavailable    = errors.Base("command is not available for this selection")
)

type Handler struct {
	fs      afero.Fs
	command string
	start   int
	end     int
	dryRun  bool
	diff    bool
}

func NewApplyCommand(afs afero.Fs) *cobra.Command {
	me := &Handler{fs: afs}

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "run a wrap or clear command on a selection of a file",
		Long: "Runs a command over the text between --start and --end (UTF-16 offsets)\n" +
			"and writes the file back. Prints the resulting selection as \"start end\".",
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&me.command, "command", "", "command key, such as wrap-bold or repl-clear")
	cmd.Flags().IntVar(&me.start, "start", 0, "selection start")
	cmd.Flags().IntVar(&me.end, "end", 0, "selection end")
	cmd.Flags().BoolVar(&me.dryRun, "dry-run", false, "print the new text instead of writing the file")
	cmd.Flags().BoolVar(&me.diff, "diff", false, "print the changed lines instead of writing the file")
	_ = cmd.MarkFlagRequired("command")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out, err := me.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	return cmd
}

// formatOf picks the markup of path from its extension.
func formatOf(path string, fallback command.Format) command.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".org":
		return command.FormatOrg
	case ".md", ".markdown":
		return command.FormatMarkdown
	}
	return fallback
}

// Run applies the command and returns what to print.
func (me *Handler) Run(ctx context.Context, path string) (string, error) {
	logger := zerolog.Ctx(ctx)

	rt, err := config.RuntimeFromContext(ctx)
	if err != nil {
		return "", err
	}

	var settings *config.Settings
	if rt.Settings != "" {
		settings, err = config.Load(me.fs, rt.Settings)
	} else {
		settings, err = config.Parse(nil)
	}
	if err != nil {
		return "", errors.Errorf("loading settings: %w", err)
	}

	format := formatOf(path, settings.PreferredFormat)
	tag := l10n.Match(settings.Locale, rt.Locale)

	registry, err := command.NewRegistry(ctx, settings.DefinitionsFor(format), command.WithLanguage(tag))
	if err != nil {
		logger.Warn().Err(err).Msg("some commands could not be loaded")
	}

	cmd, ok := registry.Lookup(me.command)
	if !ok {
		return "", errors.Errorf("%w: %s", ErrUnknownCommand, me.command)
	}

	data, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", path, err)
	}

	sel, err := span.New(string(data), me.start, me.end)
	if err != nil {
		return "", err
	}

	available, err := cmd.Available(command.Env{
		Format:    string(format),
		Language:  string(format),
		Selection: sel.Selection,
		Empty:     sel.Empty(),
	})
	if err != nil {
		return "", err
	}
	if !available {
		return "", errors.Errorf("%w: %s", ErrUnavailable, cmd.Key)
	}

	store := host.NewMemoryStore()
	id := store.Insert(string(data))

	input, err := store.Edit(id, me.start, me.end)
	if err != nil {
		return "", err
	}

	sess := host.NewSession()
	sess.Track(id, input)

	adapter := host.NewAdapter(store, host.LogNotifier{}, host.WithLanguage(tag))

	edit, err := adapter.Apply(ctx, sess, cmd.Transform())
	if err != nil {
		return "", errors.Errorf("applying %s: %w", cmd.Key, err)
	}

	content, _ := store.Content(id)

	logger.Debug().Str("command", cmd.Key).Str("file", path).Stringer("edit", edit).Msg("applied")

	if me.diff {
		return diff.Lines(string(data), content), nil
	}

	if me.dryRun {
		return content, nil
	}

	if err := afero.WriteFile(me.fs, path, []byte(content), 0o644); err != nil {
		return "", errors.Errorf("writing %s: %w", path, err)
	}

	return fmt.Sprintf("%d %d\n", edit.SelStart, edit.SelEnd), nil
}
