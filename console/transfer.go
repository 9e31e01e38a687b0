package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	password   string
	importMode string
	outFile    string
	exportQ    client.ProductsQuery
)

func init() {
	importCmd.Flags().StringVar(&importMode, "mode", client.ImportSkip, "what to do with existing SKUs: skip or update")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "products.csv", "file to write, - for stdout")
	exportCmd.Flags().StringVar(&exportQ.Q, "q", "", "search name, SKU or barcode")
	exportCmd.Flags().StringVar(&exportQ.Brand, "brand", "", "brand filter")
	exportCmd.Flags().StringVar(&exportQ.Category, "category", "", "category filter")
	exportCmd.Flags().StringVar(&exportQ.StockStatus, "stock", "all", "stock filter: all, in, low, out")
	exportCmd.Flags().StringVar(&exportQ.Status, "status", "all", "status filter: all, active, inactive")
	exportCmd.Flags().BoolVar(&exportQ.LowOnly, "low-only", false, "only low and out of stock products")

	for _, cmd := range []*cobra.Command{importCmd, exportCmd} {
		cmd.Flags().StringVar(&token, "token", "", "bearer token")
		cmd.Flags().StringVarP(&username, "username", "u", "", "username (default ADMIN_USERNAME)")
		cmd.Flags().StringVarP(&password, "password", "p", "", "password (default ADMIN_PASSWORD)")
		rootCmd.AddCommand(cmd)
	}
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import products from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if importMode != client.ImportSkip && importMode != client.ImportUpdate {
			return fmt.Errorf("--mode must be %q or %q", client.ImportSkip, client.ImportUpdate)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}

		c, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		bar := newBar(cmd.ErrOrStderr(), info.Size(), "Uploading")
		res, err := c.ImportProducts(cmd.Context(), io.TeeReader(f, bar), filepath.Base(args[0]), importMode)
		_ = bar.Finish()
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d products\n", res.Imported)
		for _, e := range res.Errors {
			fmt.Fprintf(out, "  %s: %s\n", e.Field, e.Description)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export products matching the filters to CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		if outFile == "-" {
			_, err := c.ExportProducts(cmd.Context(), exportQ, cmd.OutOrStdout())
			return err
		}

		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		bar := newBar(cmd.ErrOrStderr(), -1, "Downloading")
		n, err := c.ExportProducts(cmd.Context(), exportQ, io.MultiWriter(f, bar))
		_ = bar.Finish()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", n, outFile)
		return nil
	},
}

// authenticatedClient uses --token when given and logs in otherwise.
func authenticatedClient(cmd *cobra.Command) (*client.Client, error) {
	c := newClient()
	if token != "" {
		return c, nil
	}

	user, pass := username, password
	if user == "" {
		user = cfg.Admin.Username
	}
	if pass == "" {
		pass = cfg.Admin.Password
	}
	if pass == "" {
		return nil, errors.New("no credentials: pass --token or --password (or set ADMIN_PASSWORD)")
	}

	if _, err := c.Login(cmd.Context(), user, pass); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return c, nil
}

func newBar(w io.Writer, size int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
