// Command cleanup_outbox prunes old processed rows from the
// outbox_events table. Run it periodically (e.g. a daily cron job);
// completed and failed events have separate retention windows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/marketline-service/internal/models/m_outbox"
)

// Config holds the cleanup job parameters.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := cleanupOutbox(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -config.CompletedRetentionDays)
	failedCutoff := now.AddDate(0, 0, -config.FailedRetentionDays)

	log.Printf("Starting outbox cleanup...")
	log.Printf("  Completed events cutoff: %s (retention: %d days)", completedCutoff.Format(time.RFC3339), config.CompletedRetentionDays)
	log.Printf("  Failed events cutoff: %s (retention: %d days)", failedCutoff.Format(time.RFC3339), config.FailedRetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	if config.DryRun {
		return dryRunCleanup(ctx, client, completedCutoff, failedCutoff)
	}

	return performCleanup(ctx, client, completedCutoff, failedCutoff)
}

// pruneFilter matches completed and failed events past their retention
// windows. Pending and processing rows are never touched.
const pruneFilter = `
	WHERE (` + m_outbox.Status + ` = '` + m_outbox.StatusCompleted + `' AND ` + m_outbox.ProcessedAt + ` < @completedCutoff)
	   OR (` + m_outbox.Status + ` = '` + m_outbox.StatusFailed + `' AND ` + m_outbox.ProcessedAt + ` < @failedCutoff)`

func pruneParams(completedCutoff, failedCutoff time.Time) map[string]interface{} {
	return map[string]interface{}{
		"completedCutoff": completedCutoff,
		"failedCutoff":    failedCutoff,
	}
}

func dryRunCleanup(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_outbox.Status + ", COUNT(*) FROM " + m_outbox.TableName +
			pruneFilter + " GROUP BY " + m_outbox.Status,
		Params: pruneParams(completedCutoff, failedCutoff),
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	totalCount := int64(0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return fmt.Errorf("failed to parse row: %w", err)
		}

		log.Printf("  Would delete %d %s events", count, status)
		totalCount += count
	}

	log.Printf("DRY RUN: Would delete %d total events", totalCount)
	log.Println("Run without --dry-run to actually delete events")

	return nil
}

func performCleanup(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL:    "DELETE FROM " + m_outbox.TableName + pruneFilter,
		Params: pruneParams(completedCutoff, failedCutoff),
	}

	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		rowCount, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}

		if rowCount == 0 {
			log.Println("No old events to delete")
			return nil
		}

		log.Printf("Successfully deleted %d events", rowCount)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}

	return nil
}
