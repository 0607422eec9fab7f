// Package cli implements erpctl, the operator command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"construct-erp/internal/shared/config"
	"construct-erp/internal/shared/connection"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags and the dependencies commands share.
type RootOptions struct {
	Format string
	Config config.Config

	// OpenDB connects to the database; replaced in tests.
	OpenDB func(cfg config.DBConfig) (*gorm.DB, error)
	Now    func() time.Time
}

func defaultOpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(cfg, 3)
}

// NewRootCommand creates the erpctl root command.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts.OpenDB == nil {
		opts.OpenDB = defaultOpenDB
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cmd := &cobra.Command{
		Use:   "erpctl",
		Short: "Operator tooling for the construct-erp attendance service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewWindowCommand(opts))
	cmd.AddCommand(NewUserCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// output writes v as indented JSON, or text as-is in text mode.
func output(w io.Writer, format string, v any, text string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
