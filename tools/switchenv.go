package main

import (
	"fmt"
	"os"
	"strings"
)

const envFile = ".env"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/switchenv.go dev    - Switch to the development environment")
		fmt.Println("  go run tools/switchenv.go prod   - Switch to the production environment")
		fmt.Println("  go run tools/switchenv.go status - Show the active environment")
		return
	}

	command := strings.ToLower(strings.TrimSpace(os.Args[1]))

	switch command {
	case "dev":
		switchEnv("dev", []string{".env.development"})
	case "prod":
		switchEnv("prod", []string{".env.production", ".env.production.fixed", ".env.production.template"})
	case "status":
		status()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: dev, prod, status")
	}
}

func switchEnv(target string, candidates []string) {
	if _, err := os.Stat(envFile); err == nil {
		if err := copyFile(envFile, ".env.backup"); err != nil {
			fmt.Printf("❌ Failed to back up %s: %v\n", envFile, err)
			os.Exit(1)
		}
	}

	var source string
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			source = candidate
			break
		}
	}

	if source != "" {
		if err := copyFile(source, envFile); err != nil {
			fmt.Printf("❌ Failed to copy %s: %v\n", source, err)
			os.Exit(1)
		}
		fmt.Printf("✅ Switched to %s environment.\n", target)
	} else if target == "prod" {
		// No production template, flip the flags in place.
		content, err := os.ReadFile(envFile)
		if err != nil {
			fmt.Println("No .env found to update.")
			return
		}
		updated := strings.ReplaceAll(string(content), "DEBUG=True", "DEBUG=False")
		updated = strings.ReplaceAll(updated, "PRODUCTION_ENVIRONMENT=False", "PRODUCTION_ENVIRONMENT=True")
		if err := os.WriteFile(envFile, []byte(updated), 0644); err != nil {
			fmt.Printf("❌ Failed to update %s: %v\n", envFile, err)
			os.Exit(1)
		}
		fmt.Println("✅ Set production flags in .env.")
	} else {
		fmt.Printf("No %s template found.\n", candidates[0])
		return
	}

	fmt.Println("Next steps:")
	fmt.Println("- Restart the server")
	fmt.Println("- Run: go run main.go")
}

func status() {
	content, err := os.ReadFile(envFile)
	if err != nil {
		fmt.Println(".env file not found")
		return
	}

	debug := strings.Contains(string(content), "DEBUG=True")
	siteURL := ""
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "SITE_URL=") {
			siteURL = strings.TrimPrefix(line, "SITE_URL=")
			break
		}
	}

	fmt.Printf("DEBUG=%t\n", debug)
	fmt.Printf("SITE_URL=%s\n", siteURL)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
