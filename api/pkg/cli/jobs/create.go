package jobs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("file", "f", "", "Create from a YAML job description file")
	createCmd.Flags().String("title", "", "Job title")
	createCmd.Flags().String("company", "", "Company name")
	createCmd.Flags().String("description", "", "Job description")
	createCmd.Flags().String("location", "", "Location")
	createCmd.Flags().String("salary-range", "", "Salary range, free form")
	createCmd.Flags().StringSlice("skills", nil, "Required skills (comma separated)")
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job",
	Long:  `Post a job from flags or from a YAML file. Flags override file values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req types.CreateJobRequest

		if file, _ := cmd.Flags().GetString("file"); file != "" {
			bts, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			if err := yaml.Unmarshal(bts, &req); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}
		}

		if title, _ := cmd.Flags().GetString("title"); title != "" {
			req.Title = title
		}
		if company, _ := cmd.Flags().GetString("company"); company != "" {
			req.Company = company
		}
		if description, _ := cmd.Flags().GetString("description"); description != "" {
			req.Description = description
		}
		if location, _ := cmd.Flags().GetString("location"); location != "" {
			req.Location = location
		}
		if salaryRange, _ := cmd.Flags().GetString("salary-range"); salaryRange != "" {
			req.SalaryRange = salaryRange
		}
		if skills, _ := cmd.Flags().GetStringSlice("skills"); len(skills) > 0 {
			req.Skills = skills
		}

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		job, err := apiClient.CreateJob(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		fmt.Printf("Job %d created: %s at %s\n", job.ID, job.Title, job.Company)
		return nil
	},
}
