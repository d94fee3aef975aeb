package util

import (
	"context"
	"fmt"
	"time"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// WaitForBatchJob polls the batch list every 2 seconds until the job
// reaches a terminal state or the timeout expires. Status changes are
// printed as they happen, with a dot progress indicator in between.
func WaitForBatchJob(ctx context.Context, apiClient client.Client, jobID string, timeout time.Duration) (*types.BatchJob, error) {
	fmt.Printf("Waiting for batch job %s...\n", jobID)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	var lastStatus types.BatchJobStatus
	progressCounter := 0

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil, fmt.Errorf("timeout waiting for batch job %s", jobID)
		case <-ticker.C:
			progressCounter++
			if progressCounter%5 == 0 {
				fmt.Print(".")
			}

			jobs, err := apiClient.AdminListBatches(ctx)
			if err != nil {
				fmt.Println()
				return nil, fmt.Errorf("failed to list batch jobs: %w", err)
			}

			var job *types.BatchJob
			for _, j := range jobs {
				if j.ID == jobID {
					job = j
					break
				}
			}
			if job == nil {
				fmt.Println()
				return nil, fmt.Errorf("batch job not found: %s", jobID)
			}

			if job.Status != lastStatus {
				if lastStatus != "" {
					fmt.Println()
				}
				fmt.Printf("Batch job %s is %s (%d/%d)\n", job.ID, job.Status, job.Processed, job.Total)
				lastStatus = job.Status
			}

			if job.Status.IsTerminal() {
				return job, nil
			}
		}
	}
}
