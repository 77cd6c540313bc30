package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"churchapi/internal/config"
	"churchapi/internal/database"
	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/service"
)

const (
	outputFlag = "output"
	inputFlag  = "input"
	emailFlag  = "email"
	roleFlag   = "role"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "churchctl",
		Short: "Maintenance tool for the Church API database",
		Long: `Maintenance tool for the Church API database.

The database is selected with the same environment variables as the server:
  DATABASE_TYPE    sqlite, postgres, pgx or mysql (default: sqlite)
  DB_PATH          SQLite database path (default: ./church.db)
  DATABASE_URL     PostgreSQL or MySQL connection URL`,
		SilenceUsage: true,
	}

	root.AddCommand(newExportCommand())
	root.AddCommand(newImportCommand())
	root.AddCommand(newPromoteCommand())
	return root
}

func newExportCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		outputFlag: &cobraflags.StringFlag{
			Name:  outputFlag,
			Value: "",
			Usage: "Output file path (default: backup_YYYYMMDD_HHMMSS.json)",
		},
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every table to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags[outputFlag].GetString())
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newImportCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		inputFlag: &cobraflags.StringFlag{
			Name:  inputFlag,
			Value: "",
			Usage: "Input file path (required)",
		},
	}
	var clearData, assumeYes bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON backup into the database",
		Long: `Import a JSON backup into the database.

The import runs in a single transaction: a row that collides with existing
data aborts the whole import. Use --clear to replace all data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, flags[inputFlag].GetString(), clearData, assumeYes)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	cmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before import (WARNING: destructive)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation before clearing")
	return cmd
}

func newPromoteCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Email of the account to change (required)",
		},
		roleFlag: &cobraflags.StringFlag{
			Name:  roleFlag,
			Value: models.RoleAdmin,
			Usage: "Role to assign (member or admin)",
		},
	}

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Change the role of a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPromote(cmd, flags[emailFlag].GetString(), flags[roleFlag].GetString())
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

// openDatabase connects with the server's configuration and brings the schema up to date
func openDatabase(ctx context.Context) (*database.DB, error) {
	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func runExport(cmd *cobra.Command, outputPath string) error {
	ctx := cmd.Context()

	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	backup, err := service.NewBackupService(db).Export(ctx, file)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d users, %d children, %d events, %d check-ins, %d announcements, %d prayers, %d donations to %s\n",
		len(backup.Users), len(backup.Children), len(backup.Events), len(backup.Checkins),
		len(backup.Announcements), len(backup.Prayers), len(backup.Donations), outputPath)
	return nil
}

func runImport(cmd *cobra.Command, inputPath string, clearData, assumeYes bool) error {
	ctx := cmd.Context()

	if inputPath == "" {
		return errors.New("--input is required")
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	if clearData && !assumeYes {
		fmt.Fprint(cmd.OutOrStdout(), "WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled")
			return nil
		}
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	backup, err := service.NewBackupService(db).Import(ctx, file, clearData)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported backup from %s (exported %s)\n", inputPath, backup.ExportedAt.Format(time.RFC3339))
	return nil
}

func runPromote(cmd *cobra.Command, email, role string) error {
	ctx := cmd.Context()

	if email == "" {
		return errors.New("--email is required")
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := service.NewUserService(repository.NewUserRepository(db)).SetRole(ctx, email, role)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
	return nil
}
