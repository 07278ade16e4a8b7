package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/work-notes/internal/utils"
	"github.com/MKhiriev/work-notes/models"
)

func (a *App) newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a note",
		Long: `Save a note. The body comes from --body, from --file, or from stdin
when neither is given. Which of --date, --from/--to and --text are accepted
depends on the edition the server runs.`,
		Args: cobra.NoArgs,
		RunE: a.runSave,
	}

	cmd.Flags().StringP("date", "d", "", "Note date (YYYY-MM-DD)")
	cmd.Flags().String("from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Range end (YYYY-MM-DD), requires --from")
	cmd.Flags().StringP("text", "t", "", "Free text used in the filename")
	cmd.Flags().StringP("body", "b", "", "Note body")
	cmd.Flags().StringP("file", "f", "", "Read the body from this file, - for stdin")

	return cmd
}

func (a *App) runSave(cmd *cobra.Command, _ []string) error {
	req := models.SaveRequest{}
	req.Date, _ = cmd.Flags().GetString("date")
	req.From, _ = cmd.Flags().GetString("from")
	req.To, _ = cmd.Flags().GetString("to")
	req.Text, _ = cmd.Flags().GetString("text")

	body, err := readBody(cmd)
	if err != nil {
		return err
	}
	req.Body = body

	notes, err := a.adapter(cmd)
	if err != nil {
		return err
	}

	result, err := notes.Save(cmd.Context(), req)
	if err != nil {
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrNoteNotSaved, result.Message)
		}
		return fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
	}
	if result.Status != models.StatusOK {
		return fmt.Errorf("%w: %s", ErrNoteNotSaved, result.Message)
	}

	msg := result.Message
	if msg == "" {
		msg = "Saved " + result.Name
	}
	if result.Overwritten {
		msg += " (replaced the existing note)"
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

// readBody picks the note body from --body, --file or stdin, in that order.
func readBody(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("body") {
		body, _ := cmd.Flags().GetString("body")
		return body, nil
	}

	path, _ := cmd.Flags().GetString("file")
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read body file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read body from stdin: %w", err)
	}
	return string(data), nil
}

func (a *App) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Long:    `Delete a note. Only the strict edition supports deletion.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.adapter(cmd)
			if err != nil {
				return err
			}
			if err = notes.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <name>",
		Short: "Download a note as a text file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDownload,
	}

	cmd.Flags().StringP("output", "o", "", "Destination path; a directory keeps the server filename")

	return cmd
}

func (a *App) runDownload(cmd *cobra.Command, args []string) error {
	notes, err := a.adapter(cmd)
	if err != nil {
		return err
	}

	body, filename, err := notes.Download(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("download note: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	dest := downloadPath(output, filename)
	if err = os.WriteFile(dest, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", dest, len(body))
	return nil
}

// downloadPath resolves the file to write. The server filename is reduced to
// its base name so a response cannot point outside the destination.
func downloadPath(output, filename string) string {
	base := filepath.Base(filepath.Clean("/" + filename))
	if output == "" {
		return base
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, base)
	}
	return output
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print an argon2id hash for AUTH_PASSWORD_HASH",
		Long: `Hash a password for the server's basic auth gate. The password is read
from the first line of stdin when it is not given as an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
