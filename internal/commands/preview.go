package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"crane-recon/internal/domain"
	"crane-recon/internal/repository"
	"crane-recon/internal/service"
)

type previewOptions struct {
	overrides map[string]int
	asJSON    bool
}

func newPreviewCommand() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Parse a statement and show which rows would be imported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewImportService(nil, time.Minute)
			session, err := stageImport(svc, args[0], opts.overrides)
			if err != nil {
				return err
			}
			return printPreview(cmd.OutOrStdout(), session, opts.asJSON)
		},
	}

	addMappingFlag(cmd, &opts.overrides)
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the preview as JSON")

	return cmd
}

func addMappingFlag(cmd *cobra.Command, overrides *map[string]int) {
	cmd.Flags().StringToIntVar(overrides, "map", nil, "override detected columns, e.g. --map date=0,amount=3")
}

// stageImport runs upload, mapping and preview for a local file
func stageImport(svc service.ImportService, path string, overrides map[string]int) (*service.ImportSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	session, err := svc.Upload(filepath.Base(path), f)
	if err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		mapping := session.Mapping.Clone()
		for name, idx := range overrides {
			mapping[domain.Field(name)] = idx
		}
		if session, err = svc.UpdateMapping(session.ID, mapping); err != nil {
			return nil, err
		}
	}

	return svc.Preview(session.ID)
}

func printPreview(w io.Writer, session *service.ImportSession, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(session.Preview)
	}

	fmt.Fprintf(w, "%s: %d rows, %d valid, %d invalid\n",
		session.FileName, len(session.Preview.Rows), session.Preview.ValidCount, session.Preview.InvalidCount)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tDATE\tDESCRIPTION\tAMOUNT\tTYPE\tSTATUS")
	for _, r := range session.Preview.Rows {
		kind := "debit"
		if r.IsCredit {
			kind = "credit"
		}
		status := "ok"
		if !r.IsValid {
			status = r.Error
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.Row, r.Date, r.Description, r.Amount.StringFixed(2), kind, status)
	}
	return tw.Flush()
}

func newImportCommand(deps dependencies) *cobra.Command {
	var (
		overrides map[string]int
		bankName  string
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import the valid rows of a statement into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closer, err := deps.openImportRepository()
			if err != nil {
				return err
			}
			defer closer.Close()

			return runImport(cmd, repo, args[0], overrides, bankName)
		},
	}

	addMappingFlag(cmd, &overrides)
	cmd.Flags().StringVar(&bankName, "bank-name", "", "bank the statement belongs to (required)")
	_ = cmd.MarkFlagRequired("bank-name")

	return cmd
}

func runImport(cmd *cobra.Command, repo repository.ImportRepository, path string, overrides map[string]int, bankName string) error {
	svc := service.NewImportService(repo, time.Minute)

	session, err := stageImport(svc, path, overrides)
	if err != nil {
		return err
	}

	batch, err := svc.Commit(cmd.Context(), session.ID, bankName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d rows from %s (batch %s)\n",
		batch.ValidRows, batch.TotalRows, batch.FileName, batch.ID)
	return nil
}
