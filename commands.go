package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/trackmeta"
	"github.com/llehouerou/crate/internal/viewnav"
)

// NewScanCmd creates the scan command. Paths given as arguments are added
// to the library sources before scanning; without arguments every stored
// source is rescanned.
func NewScanCmd(open libraryOpener) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "Index music files into the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, closeLib, err := open()
			if err != nil {
				return err
			}
			defer closeLib()

			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return err
				}
				if err := lib.AddSource(abs); err != nil {
					return fmt.Errorf("add source %s: %w", abs, err)
				}
			}
			sources, err := lib.Sources()
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				return errors.New("no library sources: pass a folder or set library_sources in config.toml")
			}

			return runScan(cmd, lib, sources, quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary")
	return cmd
}

func runScan(cmd *cobra.Command, lib *library.Library, sources []string, quiet bool) error {
	out := cmd.OutOrStdout()
	progress := make(chan library.ScanProgress, 16)
	done := make(chan error, 1)
	go func() {
		done <- lib.Scan(cmd.Context(), sources, progress)
	}()

	var stats *library.ScanStats
	for p := range progress {
		if p.Stats != nil {
			stats = p.Stats
		}
		if quiet || p.Phase != library.PhaseProcessing {
			continue
		}
		fmt.Fprintf(out, "[%d/%d] %s\n", p.Current, p.Total, p.CurrentFile)
	}
	if err := <-done; err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if stats != nil {
		fmt.Fprintf(out, "%s added, %s updated, %s removed, %s skipped\n",
			humanize.Comma(int64(stats.Added)), humanize.Comma(int64(stats.Updated)),
			humanize.Comma(int64(stats.Removed)), humanize.Comma(int64(stats.Skipped)))
	}
	return nil
}

// NewViewsCmd creates the views command, listing the top-level views and
// their menu keys.
func NewViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the top-level views",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printViews(cmd.OutOrStdout(), viewnav.DefaultCatalog())
		},
	}
}

func printViews(w io.Writer, c *viewnav.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tTITLE\tPRESENTATION")
	for i, v := range c.Entries() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, v.Kind, v.Title, v.Presentation)
	}
	tw.Flush()
}

// NewRadioCmd creates the radio command group.
func NewRadioCmd(open libraryOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radio",
		Short: "Manage internet radios",
	}

	var image string
	add := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a radio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := trackmeta.NewRadio()
			if err := meta.Set(trackmeta.FieldTitle, args[0]); err != nil {
				return err
			}
			if err := meta.Set(trackmeta.FieldResource, args[1]); err != nil {
				return err
			}
			if image != "" {
				if err := meta.Set(trackmeta.FieldImage, image); err != nil {
					return err
				}
			}
			if !meta.Valid() {
				return errors.New(meta.ErrorMessage())
			}
			rec, err := meta.Save()
			if err != nil {
				return err
			}

			lib, closeLib, err := open()
			if err != nil {
				return err
			}
			defer closeLib()

			id, err := lib.SaveRadio(rec.Radio())
			if err != nil {
				return fmt.Errorf("save radio: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added radio %d: %s\n", id, args[0])
			return nil
		},
	}
	add.Flags().StringVar(&image, "image", "", "image path or URL")

	list := &cobra.Command{
		Use:   "list",
		Short: "List radios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, closeLib, err := open()
			if err != nil {
				return err
			}
			defer closeLib()

			radios, err := lib.Radios()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range radios {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Name, r.URL)
			}
			return tw.Flush()
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a radio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid radio id %q", args[0])
			}

			lib, closeLib, err := open()
			if err != nil {
				return err
			}
			defer closeLib()

			r, err := lib.RadioByID(id)
			if err != nil {
				return err
			}
			id, ok := trackmeta.FromRadio(*r).DeleteRadio()
			if !ok {
				return fmt.Errorf("radio %d cannot be deleted", r.ID)
			}
			if err := lib.DeleteRadio(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted radio %d: %s\n", id, r.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}
