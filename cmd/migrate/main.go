// Command migrate provisions the Spanner instance and database for the
// marketline service and applies the DDL files under migrations/.
// Against the emulator it creates whatever is missing; against real
// Spanner it expects the instance to be managed elsewhere and only
// applies schema changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	projectID  = flag.String("project", envOr("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", envOr("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", envOr("SPANNER_DATABASE_ID", "marketline-db"), "Spanner database ID")
	migrateDir = flag.String("migrations", "migrations", "directory holding the DDL files")
)

func main() {
	flag.Parse()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Printf("targeting Spanner emulator at %s", host)
	}
	log.Printf("migrating projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	if err := run(context.Background()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("schema is up to date")
}

func run(ctx context.Context) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	databaseAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer databaseAdmin.Close()

	if err := ensureInstance(ctx, instanceAdmin); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx, databaseAdmin); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	return applyMigrations(ctx, databaseAdmin)
}

func ensureInstance(ctx context.Context, admin *instance.InstanceAdminClient) error {
	name := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)

	_, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name})
	if err == nil {
		log.Printf("instance %s present", *instanceID)
		return nil
	}
	if status.Code(err) != codes.NotFound {
		// Real Spanner rejects instance admin calls without the right
		// permissions; the instance is managed elsewhere in that case.
		log.Printf("skipping instance check: %v", err)
		return nil
	}

	log.Printf("creating instance %s", *instanceID)
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Marketline Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		// The emulator sometimes resolves the operation before Wait sees it
		log.Printf("instance creation finished with: %v", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context, admin *database.DatabaseAdminClient) error {
	path := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	_, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: path})
	if err == nil {
		log.Printf("database %s present", *databaseID)
		return nil
	}
	if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.Printf("proceeding despite database check error (emulator): %v", err)
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Printf("creating database %s", *databaseID)
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func applyMigrations(ctx context.Context, admin *database.DatabaseAdminClient) error {
	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		log.Printf("no DDL files under %s, nothing to apply", *migrateDir)
		return nil
	}

	path := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		statements := splitDDL(string(content))
		if len(statements) == 0 {
			continue
		}

		log.Printf("applying %s (%d statements)", name, len(statements))
		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   path,
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
	}

	return nil
}

// splitDDL breaks a migration file into individual statements, dropping
// SQL line comments and blank statements. Spanner's UpdateDatabaseDdl
// takes one statement per entry, without trailing semicolons.
func splitDDL(content string) []string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		kept = append(kept, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
