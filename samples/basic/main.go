// Sample code to test the SDK end to end against a running PDP and a real
// API key. Expects PERMIT_TOKEN in the environment (or a .env file).
package main

import (
	"context"
	"log"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/enforcement"
	"github.com/permitio/permit-golang/models"
	"github.com/permitio/permit-golang/permit"
)

func main() {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	client, err := permit.New(cfg)
	if err != nil {
		log.Fatalf("initializing SDK: %v", err)
	}

	// declare the schema: a "document" resource with two actions
	description := "a document in the sample app"
	if _, err := client.Api.Resources.Create(ctx, models.ResourceCreate{
		Key:         "document",
		Name:        "Document",
		Description: &description,
		Actions: map[string]models.ActionBlockEditable{
			"read":  {},
			"write": {},
		},
	}); err != nil {
		log.Printf("creating resource (may already exist): %v", err)
	}

	// an "editor" role that can do both
	if _, err := client.Api.Roles.Create(ctx, models.RoleCreate{
		Key:         "editor",
		Name:        "Editor",
		Permissions: []string{"document:read", "document:write"},
	}); err != nil {
		log.Printf("creating role (may already exist): %v", err)
	}

	// sync a user and grant them the role in the default tenant
	user, err := client.SyncUser(ctx, models.UserCreate{
		Key:   "ada",
		Email: "ada@example.com",
	})
	if err != nil {
		log.Fatalf("syncing user: %v", err)
	}
	log.Printf("synced user %s (%s)", user.Key, user.ID)

	if _, err := client.Api.RoleAssignments.Assign(ctx, models.RoleAssignmentCreate{
		Role:   "editor",
		Tenant: "default",
		User:   "ada",
	}); err != nil {
		log.Printf("assigning role (may already exist): %v", err)
	}

	// finally ask the PDP
	allowed, err := client.Check(ctx,
		enforcement.NewUser("ada"),
		"write",
		enforcement.NewResource("document"),
	)
	if err != nil {
		log.Fatalf("permission check: %v", err)
	}
	if allowed {
		log.Println("ada is permitted to write documents")
	} else {
		log.Println("ada is NOT permitted to write documents")
	}
}
