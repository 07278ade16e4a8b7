package client

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/work-notes/models"
)

func (a *App) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Long:    `List notes, newest first, optionally filtered by text and date range.`,
		Args:    cobra.NoArgs,
		RunE:    a.runList,
	}

	cmd.Flags().StringP("query", "q", "", "Case-insensitive text to search in names and bodies")
	cmd.Flags().String("from", "", "Only notes on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Only notes on or before this date (YYYY-MM-DD)")
	cmd.Flags().IntP("page", "p", 1, "Page number")

	return cmd
}

func (a *App) runList(cmd *cobra.Command, _ []string) error {
	notes, err := a.adapter(cmd)
	if err != nil {
		return err
	}

	search, _ := cmd.Flags().GetString("query")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	pageNum, _ := cmd.Flags().GetInt("page")
	asJSON, _ := cmd.Flags().GetBool("json")

	page, err := notes.List(cmd.Context(), models.QueryParams{Search: search, From: from, To: to, Page: pageNum})
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if asJSON {
		return outputJSON(cmd.OutOrStdout(), page)
	}

	for _, item := range page.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.Name, item.Key.Kind)
	}
	if page.TotalPages > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "page %d of %d, %d note(s)\n", page.CurrentPage, page.TotalPages, page.TotalCount)
	}
	return nil
}

func (a *App) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a note",
		Long:  `Print the body of a note, or copy it to the clipboard with --copy.`,
		Args:  cobra.ExactArgs(1),
		RunE:  a.runGet,
	}

	cmd.Flags().BoolP("copy", "c", false, "Copy the body to the clipboard instead of printing it")

	return cmd
}

func (a *App) runGet(cmd *cobra.Command, args []string) error {
	notes, err := a.adapter(cmd)
	if err != nil {
		return err
	}

	copyBody, _ := cmd.Flags().GetBool("copy")
	asJSON, _ := cmd.Flags().GetBool("json")

	note, err := notes.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}

	if copyBody {
		if err = a.copyText(note.Body); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "copied %s to the clipboard\n", note.Name)
		return nil
	}

	if asJSON {
		return outputJSON(cmd.OutOrStdout(), note)
	}

	fmt.Fprint(cmd.OutOrStdout(), note.Body)
	return nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE:  a.runVersion,
	}
}

func (a *App) runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "notesctl %s\n", a.buildInfo)

	notes, err := a.adapter(cmd)
	if err != nil {
		return err
	}

	info, err := notes.Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}

	fmt.Fprintf(out, "server %s, %s edition\n", info.Version, info.Variant)
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
