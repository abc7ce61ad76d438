package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lunch-planner/internal/app"
	"lunch-planner/internal/auth"
	"lunch-planner/internal/config"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)

	switch os.Args[1] {
	case "week":
		weekCmd := flag.NewFlagSet("week", flag.ExitOnError)
		userID := weekCmd.String("user", os.Getenv("LUNCH_USER_ID"), "User whose week to show")
		weeks := weekCmd.Int("weeks", cfg.PlanningWeeks, "Number of weeks starting with the current one")
		weekCmd.Parse(os.Args[2:])

		view, err := application.Week(ctx, *userID, *weeks)
		if err != nil {
			log.Fatalf("Failed to build week: %v", err)
		}
		if err := app.PrintWeek(os.Stdout, view); err != nil {
			log.Fatalf("Failed to print week: %v", err)
		}
	case "import-menu":
		if len(os.Args) < 3 {
			fmt.Println("Usage: lunch-planner import-menu <url>")
			os.Exit(1)
		}
		report, err := application.ImportMenu(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		app.PrintReport(os.Stdout, report)
	case "issue-token":
		tokenCmd := flag.NewFlagSet("issue-token", flag.ExitOnError)
		userID := tokenCmd.String("user", "", "User id the token is issued for")
		role := tokenCmd.String("role", auth.RoleUser, "Role: user or admin")
		tokenCmd.Parse(os.Args[2:])

		token, err := application.IssueToken(*userID, *role)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lunch-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  week [-user id] [-weeks n]        Show the weekly lunch view through the API")
	fmt.Println("  import-menu <url>                 Load a cafeteria menu page into the database")
	fmt.Println("  issue-token -user id [-role r]    Sign an API token")
}
