package cv

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/matches"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/config"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/credstore"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/session"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().Bool("premium", false, "Use the premium deep-analysis flow (default from 'cvmatch premium')")
	processCmd.Flags().Bool("review", false, "Edit the parsed CV in $EDITOR before confirming")
	processCmd.Flags().String("cv-file", "", "Confirm with an edited CV loaded from a YAML file instead of the parsed one")
}

var processCmd = &cobra.Command{
	Use:   "process [cv.pdf]",
	Short: "Process a CV interactively",
	Long: `Upload a CV and follow it live through parsing, review, matching and -
for premium accounts - AI analysis. Prints matches when processing completes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		premium, _ := cmd.Flags().GetBool("premium")
		reviewInEditor, _ := cmd.Flags().GetBool("review")
		cvFile, _ := cmd.Flags().GetString("cv-file")

		if reviewInEditor && cvFile != "" {
			return fmt.Errorf("--review and --cv-file are mutually exclusive")
		}

		if !cmd.Flags().Changed("premium") {
			creds, err := credstore.Load()
			if err != nil {
				return err
			}
			premium = creds.Premium
		}

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}
		cfg, err := config.LoadCliConfig()
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		var review session.ReviewFunc
		switch {
		case cvFile != "":
			review = reviewFromFile(cvFile)
		case reviewInEditor:
			review = reviewInEditorFunc()
		}

		runner := session.NewRunnerFromClient(apiClient, cfg.StreamIdleTimeout)
		runner.OnStage(printStage)

		sess, err := runner.Process(cmd.Context(), args[0], file, premium, review)
		if err != nil {
			return err
		}

		snapshot := sess.Snapshot()
		fmt.Println()
		matches.Render(cmd.OutOrStdout(), snapshot.Matches, nil)

		if snapshot.Insights != nil {
			fmt.Println()
			printInsights(snapshot.Insights)
		}
		return nil
	},
}

func printStage(status types.SessionStatus) {
	switch status {
	case types.SessionStatusUploading:
		fmt.Println("CV uploaded, waiting for the backend...")
	case types.SessionStatusParsing:
		fmt.Println("Parsing...")
	case types.SessionStatusReviewing:
		fmt.Println("Parsed. Reviewing...")
	case types.SessionStatusMatching:
		fmt.Println("Confirmed. Matching against open jobs...")
	case types.SessionStatusAIAnalyzing:
		fmt.Println("Matches ready. Running AI analysis...")
	case types.SessionStatusComplete:
		fmt.Println("Done.")
	}
}

// reviewFromFile confirms with a CV loaded from a YAML file, replacing the
// parsed one wholesale.
func reviewFromFile(path string) session.ReviewFunc {
	return func(_ *types.ParsedCV) (*types.ParsedCV, error) {
		bts, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var cv types.ParsedCV
		if err := yaml.Unmarshal(bts, &cv); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return &cv, nil
	}
}

// reviewInEditorFunc round-trips the parsed CV through $EDITOR as YAML.
func reviewInEditorFunc() session.ReviewFunc {
	return func(cv *types.ParsedCV) (*types.ParsedCV, error) {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		tmp, err := os.CreateTemp("", "cvmatch-review-*.yaml")
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp.Name())

		bts, err := yaml.Marshal(cv)
		if err != nil {
			return nil, err
		}
		if _, err := tmp.Write(bts); err != nil {
			return nil, err
		}
		if err := tmp.Close(); err != nil {
			return nil, err
		}

		editCmd := exec.Command(editor, tmp.Name())
		editCmd.Stdin = os.Stdin
		editCmd.Stdout = os.Stdout
		editCmd.Stderr = os.Stderr
		if err := editCmd.Run(); err != nil {
			return nil, fmt.Errorf("editor failed: %w", err)
		}

		edited, err := os.ReadFile(tmp.Name())
		if err != nil {
			return nil, err
		}
		var result types.ParsedCV
		if err := yaml.Unmarshal(edited, &result); err != nil {
			return nil, fmt.Errorf("edited CV is not valid YAML: %w", err)
		}
		return &result, nil
	}
}

func printInsights(insights *types.AIInsights) {
	fmt.Printf("CV quality score: %.0f%%\n", insights.QualityScore*100)
	for name, score := range insights.ScoreBreakdown {
		fmt.Printf("  %s: %.0f%%\n", name, score*100)
	}
	if insights.Contrastive != "" {
		fmt.Printf("\nWhy these matches:\n%s\n", insights.Contrastive)
	}
	if len(insights.Counterfactuals) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range insights.Counterfactuals {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
}
