package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustopian/eisodos/harness"
	"github.com/rustopian/eisodos/logger"
	"github.com/rustopian/eisodos/storage"
	"github.com/rustopian/eisodos/sysinfo"
)

var (
	runAttempts    int
	runWarmup      int
	runEnvs        []string
	runArtifactDir string
	runUpload      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the full measurement sweep and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		attempts := runAttempts
		if !cmd.Flags().Changed("attempts") {
			attempts = IntEnv("BENCHMARK_ATTEMPTS", attempts)
		}
		warmup := runWarmup
		if !cmd.Flags().Changed("warmup") {
			warmup = IntEnv("BENCHMARK_WARMUP", warmup)
		}

		environments := harness.StandardEnvironments()
		if len(runEnvs) > 0 {
			environments = slices.DeleteFunc(environments, func(environment harness.Environment) bool {
				return !slices.Contains(runEnvs, environment.Name)
			})
			if len(environments) == 0 {
				return fmt.Errorf("no environment matches %v", runEnvs)
			}
		}
		if runArtifactDir != "" {
			for i := range environments {
				binary := filepath.Join(runArtifactDir, "bench-"+environments[i].Name)
				logger.Logger.Infof("using variant binary %v for environment %v", binary, environments[i].Name)
				environments[i].Exec = &harness.CmdExecutor{Binary: binary, Env: environments[i].Name}
			}
		}

		driver := harness.Driver{Warmup: warmup, Attempts: attempts}
		results := driver.Sweep(environments)

		failures := 0
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ENVIRONMENT\tTARGET\tVARIATION\tCOST\tATTEMPTS\tERROR")
		for _, result := range results {
			errText := ""
			if result.Err != nil {
				errText = result.Err.Error()
				failures++
			}
			fmt.Fprintf(writer, "%v\t%v\t%v\t%v\t%v\t%v\n",
				result.Environment, result.Target, result.Variation, result.Cost, result.Attempts, errText)
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		if runUpload {
			if err := uploadResults(results); err != nil {
				return fmt.Errorf("failed to upload results: %w", err)
			}
		}
		if failures > 0 {
			return fmt.Errorf("%v of %v measurements failed", failures, len(results))
		}
		return nil
	},
}

func uploadResults(results []harness.Result) error {
	store := storage.Storage{
		OrgName:   StringEnv("TURSO_ORG_NAME", ""),
		GroupName: StringEnv("TURSO_GROUP_NAME", "eisodos"),
		ApiToken:  StringEnv("TURSO_API_TOKEN", ""),
		AuthToken: StringEnv("TURSO_AUTH_TOKEN", ""),
	}
	name := StringEnv("TURSO_DB_NAME", "")
	if name == "" {
		name = fmt.Sprintf("eisodos-%v", time.Now().Unix())
		if err := store.CreateDatabase(name); err != nil {
			return err
		}
	}
	db, err := store.ConnectDb(name)
	if err != nil {
		return err
	}
	defer db.Close()

	info := sysinfo.HostStat()
	err = store.InitResultsDb(db, map[string]any{
		"arch":     info.Arch,
		"hostname": info.Hostname,
		"platform": info.Platform,
		"ram":      info.RAM,
		"cpu":      info.CPUCount,
		"freq":     info.CPUFreq,
	})
	if err != nil {
		return err
	}
	if err := store.UploadResults(db, results); err != nil {
		return err
	}
	logger.Logger.Infof("uploaded %v results to %v", len(results), store.DbLink(name))
	return nil
}

func init() {
	runCmd.Flags().IntVar(&runAttempts, "attempts", 3, "measured attempts per combination")
	runCmd.Flags().IntVar(&runWarmup, "warmup", 1, "discarded warmup invocations per combination")
	runCmd.Flags().StringSliceVar(&runEnvs, "envs", nil, "environments to sweep (default all)")
	runCmd.Flags().StringVar(&runArtifactDir, "artifact-dir", "", "directory with bench-<env> variant binaries to drive instead of in-process execution")
	runCmd.Flags().BoolVar(&runUpload, "upload", false, "upload results to the hosted database")
	rootCmd.AddCommand(runCmd)
}
