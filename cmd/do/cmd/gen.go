package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	cssInput  = "assets/css/input.css"
	cssOutput = "assets/css/output.css"
)

func GenCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Build assets/css/output.css with tailwindcss",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "rebuild even if the css is up to date")
	return cmd
}

func runGen(force bool) error {
	bin, err := exec.LookPath("tailwindcss")
	if err != nil {
		fmt.Println("Missing binary: tailwindcss")
		fmt.Println("Install with:")
		fmt.Println("  # https://tailwindcss.com/blog/standalone-cli")
		return fmt.Errorf("tailwindcss not found")
	}

	// Class names live in the Go components under internal/ui.
	inputs := append([]string{cssInput}, GoSources("internal/ui")...)
	if !force && IsUpToDate(cssOutput, inputs) {
		fmt.Println("[tailwindcss] skipped")
		return nil
	}

	start := time.Now()
	tw := exec.Command(bin, "-i", cssInput, "-o", cssOutput, "--minify")
	tw.Stdout = os.Stdout
	tw.Stderr = os.Stderr
	err = tw.Run()
	if err != nil {
		return fmt.Errorf("tailwindcss: %w", err)
	}

	fmt.Printf("[tailwindcss] done (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// GoSources lists the non-test .go files below roots. Missing roots are
// skipped.
func GoSources(roots ...string) []string {
	var files []string
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
				files = append(files, path)
			}
			return nil
		})
	}
	return files
}

// IsUpToDate reports whether output exists and is not older than any input.
func IsUpToDate(output string, inputs []string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}
	outMod := outInfo.ModTime()

	for _, input := range inputs {
		inInfo, err := os.Stat(input)
		if err != nil {
			continue
		}
		if inInfo.ModTime().After(outMod) {
			return false
		}
	}
	return true
}
