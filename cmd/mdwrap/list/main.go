package list

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/mdwrap/pkg/command"
	"github.com/walteh/mdwrap/pkg/config"
	"github.com/walteh/mdwrap/pkg/l10n"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs     afero.Fs
	format string
}

func NewListCommand(afs afero.Fs) *cobra.Command {
	me := &Handler{fs: afs}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the configured commands",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringVar(&me.format, "format", "", "show the templates for markdown or org (default: the preferred format)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, out io.Writer) error {
	rt, err := config.RuntimeFromContext(ctx)
	if err != nil {
		return err
	}

	var settings *config.Settings
	if rt.Settings != "" {
		settings, err = config.Load(me.fs, rt.Settings)
	} else {
		settings, err = config.Parse(nil)
	}
	if err != nil {
		return err
	}

	format := settings.PreferredFormat
	switch command.Format(me.format) {
	case "":
	case command.FormatMarkdown, command.FormatOrg:
		format = command.Format(me.format)
	default:
		return errors.Errorf("unknown format %q", me.format)
	}

	registry, err := command.NewRegistry(ctx, settings.DefinitionsFor(format), command.WithLanguage(l10n.Match(settings.Locale, rt.Locale)))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("some commands could not be loaded")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := color.New(color.Bold)

	fmt.Fprintln(w, header.Sprint("KEY")+"\t"+header.Sprint("GROUP")+"\t"+header.Sprint("KIND")+"\t"+header.Sprint("BINDING")+"\t"+header.Sprint("LABEL")+"\t"+header.Sprint("TEMPLATE"))

	for _, cmd := range registry.Commands() {
		group := cmd.Group
		if group == "" {
			group = "-"
		}

		binding := cmd.Chord.String()
		if binding == "" {
			binding = "-"
		}

		template := "-"
		if cmd.Kind == command.KindWrap {
			template = cmd.Template().String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", cmd.Key, group, cmd.Kind, binding, cmd.Label, template)
	}

	return w.Flush()
}
