// Command create-user registers a user so API requests can be made under
// their id. Prints the generated user id on success.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docqa-backend/internal/builder"
	"docqa-backend/internal/entity"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: create-user <username> [first-name] [last-name]")
	}
	username := os.Args[1]

	var firstName, lastName string
	if len(os.Args) > 2 {
		firstName = os.Args[2]
	}
	if len(os.Args) > 3 {
		lastName = os.Args[3]
	}

	tool, err := builder.BuildUserTool()
	if err != nil {
		log.Fatal("Failed to build:", err)
	}
	defer tool.Close()

	ctx := context.Background()

	existing, err := tool.Users.GetByUsername(ctx, username)
	if err == nil {
		tool.Logger().Info("user already exists",
			zap.String("user_id", existing.ID),
			zap.String("username", existing.Username),
		)
		os.Stdout.WriteString(existing.ID + "\n")
		return
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		log.Fatal("Lookup failed:", err)
	}

	user, err := tool.Users.Create(ctx, entity.User{
		ID:        uuid.New().String(),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      entity.RoleUser,
	})
	if err != nil {
		log.Fatal("Create user failed:", err)
	}

	tool.Logger().Info("user created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)
	os.Stdout.WriteString(user.ID + "\n")
}
