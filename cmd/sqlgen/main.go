package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recordkit/sqlgen"
	"github.com/recordkit/sqlgen/internal/db"
	"github.com/recordkit/sqlgen/internal/script"
	"github.com/recordkit/sqlgen/manifest"
)

var (
	manifestPath  string
	outputFile    string
	dbPath        string
	logLevel      string
	noForeignKeys bool

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "sqlgen",
	Short: "Generate SQLite DDL from declarative record manifests",
	Long: `sqlgen compiles YAML record manifests into the SQLite DDL statements that
materialize them as tables, and can apply the result directly to a database
file. Column constraints, defaults, collations, conflict policies, indexes
and foreign keys are all declared in the manifest.`,
	PersistentPreRun: setup,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the DDL script for a manifest",
	RunE:  runGenerate,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a manifest's schema to a SQLite database",
	RunE:  runApply,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manifest's record declarations",
	RunE:  runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Schema manifest file (or SQLGEN_MANIFEST)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (or SQLGEN_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&noForeignKeys, "no-foreign-keys", false, "Emit plain integer columns instead of REFERENCES clauses")

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	applyCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (or SQLGEN_DB)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads .env defaults and configures logging before any command runs.
func setup(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logger.Warnf("failed to load .env file: %v", err)
		}
	}

	manifestPath = envDefault(manifestPath, "SQLGEN_MANIFEST")
	dbPath = envDefault(dbPath, "SQLGEN_DB")
	logLevel = envDefault(logLevel, "SQLGEN_LOG_LEVEL")

	level, err := logrus.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if noForeignKeys {
		sqlgen.SupportsForeignKeys = false
	}
}

// envDefault returns value, falling back to the named environment variable
// when value is empty.
func envDefault(value, envVar string) string {
	if value != "" {
		return value
	}
	return os.Getenv(envVar)
}

// loadRegistry parses the manifest and registers every record, so all
// declaration defects are reported before anything is written or executed.
func loadRegistry() (*sqlgen.Registry, error) {
	if manifestPath == "" {
		return nil, fmt.Errorf("a manifest must be specified with --manifest or SQLGEN_MANIFEST")
	}

	records, err := manifest.LoadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	reg := sqlgen.NewRegistry()
	if err := reg.RegisterAll(records); err != nil {
		return nil, fmt.Errorf("invalid schema declarations: %w", err)
	}

	logger.Debugf("registered %d tables from %s", len(reg.Tables()), manifestPath)
	return reg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warnf("failed to close output file: %v", err)
			}
		}()
		writer = f
	}

	if err := script.NewWriter(writer).WriteScript(reg); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if dbPath == "" {
		return fmt.Errorf("a database must be specified with --db or SQLGEN_DB")
	}

	client, err := db.NewSQLiteClient(ctx, dbPath, sqlgen.SupportsForeignKeys)
	if err != nil {
		return fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warnf("failed to close SQLite connection: %v", err)
		}
	}()

	statements := reg.AllStatements()
	if err := sqlgen.Apply(ctx, client.GetDB(), statements); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Infof("applied %d statements for %d tables to %s", len(statements), len(reg.Tables()), dbPath)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	for _, table := range reg.Tables() {
		stmts, _ := reg.Statements(table)
		logger.Infof("table %s: %d statements", table, len(stmts))
	}
	logger.Infof("manifest OK: %d tables", len(reg.Tables()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
