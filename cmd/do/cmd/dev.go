package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// appPort is where the server listens under air; the browser uses the
// air proxy on 8080 so pages reload after each rebuild.
const appPort = "8090"

func DevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Run the server with air hot reload on a local sqlite store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev()
		},
	}
}

func runDev() error {
	airPath, err := exec.LookPath("air")
	if err != nil {
		fmt.Println("Missing binary: air")
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/air-verse/air@latest")
		return fmt.Errorf("air not found")
	}

	fmt.Println("Building bin/do...")
	build := exec.Command("go", "build", "-o", "bin/do", "./cmd/do")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return fmt.Errorf("failed to build do: %w", err)
	}

	airArgs := []string{
		"air",
		"-c", "/dev/null",
		"-root", ".",
		"-build.cmd", "./bin/do gen && go build -o ./tmp/main ./cmd/server",
		"-build.bin", "./tmp/main",
		"-build.delay", "100",
		"-build.exclude_dir", "bin,tmp,data,_examples",
		"-build.exclude_regex", "_test.go$|output\\.css$",
		"-build.include_ext", "go,css,sql",
		"-build.kill_delay", "500ms",
		"-build.send_interrupt", "true",
		"-proxy.enabled", "true",
		"-proxy.proxy_port", "8080",
		"-proxy.app_port", appPort,
	}

	return syscall.Exec(airPath, airArgs, devEnv(os.Environ()))
}

// devEnv pins the port and development mode, and falls back to a local
// sqlite store unless a store was chosen explicitly.
func devEnv(environ []string) []string {
	env := append([]string{}, environ...)
	env = append(env, "PORT="+appPort, "APP_ENV=development")

	hasDriver := false
	for _, kv := range environ {
		if value, ok := strings.CutPrefix(kv, "DB_DRIVER="); ok && value != "" {
			hasDriver = true
		}
	}
	if !hasDriver {
		env = append(env, "DB_DRIVER=sqlite")
	}
	return env
}
