package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tptgen/internal/catalog"
	"tptgen/internal/tpt"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	tables    []string
	allTables bool
	outputDir string
)

type generateResult struct {
	Table   string
	Path    string
	Columns int
	Err     error
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TPT export scripts for the selected tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetTeradataConfig()
		if err != nil {
			return err
		}
		if err := config.ValidateRenderValues(); err != nil {
			return err
		}

		fmt.Printf("Connecting via %s (database %s)\n", config.Driver, config.Database)

		db, err := sql.Open(config.Driver, config.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		ctx := tpt.Context{
			Database:          config.Database,
			Host:              config.Host,
			User:              config.User,
			Password:          config.Password,
			LogonMech:         config.LogonMech,
			RestartWaitPeriod: viper.GetString("tpt_settings.tpt_restart_wait_period"),
			Delimiter:         viper.GetString("tpt_settings.tpt_output_delimiter"),
		}

		// Target tables strategy:
		// 1. Check CLI flag --tables
		// 2. If empty, check config tpt_settings.tables
		// 3. If both empty, --all exports every table in the database.
		targetTables := tables
		if len(targetTables) == 0 {
			targetTables = viper.GetStringSlice("tpt_settings.tables")
		}

		if len(targetTables) == 0 {
			if !allTables {
				return fmt.Errorf("no tables selected: use --tables, tpt_settings.tables or --all")
			}
			log.Println("Listing tables...")
			targetTables, err = catalog.FetchTables(db, config.Database)
			if err != nil {
				return err
			}
			if len(targetTables) == 0 {
				return fmt.Errorf("no tables found in database %s", config.Database)
			}
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		log.Printf("Generating TPT scripts for %d table(s)...", len(targetTables))
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(targetTables)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		var results []generateResult
		for _, table := range targetTables {
			outPath := filepath.Join(outputDir, strings.ToLower(table)+".tpt")
			columns, err := tpt.Generate(db, table, outPath, ctx)
			results = append(results, generateResult{
				Table:   table,
				Path:    outPath,
				Columns: columns,
				Err:     err,
			})
			bar.Incr()
		}

		uiprogress.Stop()

		// Final Report
		fmt.Println("\nSummary Report:")
		failed := 0
		for i, r := range results {
			icon := "✓"
			if r.Err != nil {
				icon = "!"
				failed++
			}
			if r.Err != nil {
				fmt.Printf("[%s] [%02d/%02d] %-30s : FAILED\n", icon, i+1, len(results), r.Table)
				fmt.Printf("    └ Error: %v\n", r.Err)
			} else {
				fmt.Printf("[%s] [%02d/%02d] %-30s : %d columns -> %s\n", icon, i+1, len(results), r.Table, r.Columns, r.Path)
			}
		}
		fmt.Println("--------------------------------------------------")
		log.Printf("Done! %d generated, %d failed. Time Elapsed: %s", len(results)-failed, failed, time.Since(start))

		if failed > 0 {
			return fmt.Errorf("%d of %d scripts failed to generate", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	// CLI Flags
	generateCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific tables to export (comma-separated)")
	generateCmd.Flags().BoolVar(&allTables, "all", false, "Generate scripts for every table in the configured database")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for generated .tpt scripts")
}
