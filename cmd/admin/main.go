package main

import (
	"fmt"
	"log"
	"os"

	"givego/backend/internal/config"
	"givego/backend/internal/models"
	"givego/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Administrative actions on resources and requests. Deleting a request is
// deliberately only possible here, never over the public API.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "remove-resource":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin remove-resource <resource_id>")
			os.Exit(1)
		}
		resourceID := os.Args[2]
		if err := storageSvc.DeleteResource(resourceID); err != nil {
			log.Fatalf("Error removing resource: %v", err)
		}
		fmt.Printf("Resource %s has been removed.\n", resourceID)
	case "remove-request":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin remove-request <request_id>")
			os.Exit(1)
		}
		requestID := os.Args[2]
		if err := storageSvc.DeleteRequest(requestID); err != nil {
			log.Fatalf("Error removing request: %v", err)
		}
		fmt.Printf("Request %s has been removed.\n", requestID)
	case "list-requests":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin list-requests <resource_id>")
			os.Exit(1)
		}
		resourceID := os.Args[2]
		requests, err := storageSvc.ListRequestsByResource(resourceID)
		if err != nil {
			log.Fatalf("Error listing requests: %v", err)
		}
		if len(requests) == 0 {
			fmt.Println("No requests for this resource.")
			return
		}
		lines := lo.Map(requests, func(r models.Request, _ int) string {
			return fmt.Sprintf("%s  requester=%s donor=%s %q at %s",
				r.ID, r.RequesterID, r.DonorID, r.ResourceName, r.CreatedAt.Format("2006-01-02 15:04:05"))
		})
		for _, line := range lines {
			fmt.Println(line)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
