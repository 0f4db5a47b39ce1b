package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage a user's conversation history",
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to an .xlsx file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := a.history.ExportHistory(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportPath, data, 0o644); err != nil {
			return fmt.Errorf("faylga yozib bo'lmadi: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", exportPath)
		return nil
	},
}

var historyImportCmd = &cobra.Command{
	Use:   "import [file.xlsx]",
	Short: "Import history rows from an .xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("fayl o'qilmadi: %w", err)
		}

		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		count, err := a.history.ImportHistory(cmd.Context(), userID, data, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d exchanges\n", count)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history of the user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.history.ClearHistory(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	},
}

func init() {
	historyExportCmd.Flags().StringVarP(&exportPath, "out", "o", "history.xlsx", "Output file")
	historyCmd.AddCommand(historyExportCmd, historyImportCmd, historyClearCmd)
}
