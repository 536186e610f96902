package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ahtasham/user-directory/config"
	"github.com/ahtasham/user-directory/internal/application"
	"github.com/ahtasham/user-directory/internal/domain/repository"
	"github.com/ahtasham/user-directory/internal/infrastructure/mongodb"
	"github.com/ahtasham/user-directory/pkg/helpers"
)

// Seeds a demo author plus two posts referencing it, then prints the posts
// listing with authors joined, exercising the $lookup pipeline end to end.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	userSvc := application.NewService(userRepo, logger)
	postSvc := application.NewPostService(postRepo, userRepo)

	email := "ahtasham@example.com"
	author, err := userSvc.Create(ctx, application.CreateUserInput{
		FirstName: "Ahtasham",
		LastName:  "Khan",
		Email:     email,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		author, err = userRepo.GetByEmail(ctx, email, "")
	}
	if err != nil {
		log.Fatalf("failed to seed author: %v", err)
	}
	fmt.Printf("seeded author: id=%s email=%s name=%s\n", author.ID.Hex(), author.Email, author.FullName())

	for _, p := range []application.CreatePostInput{
		{Title: "My first blog", Content: "Hello world", AuthorID: author.ID.Hex()},
		{Title: "Referencing documents", Content: "Posts point at users by ObjectID", AuthorID: author.ID.Hex()},
	} {
		post, err := postSvc.Create(ctx, p)
		if err != nil {
			log.Fatalf("failed to seed post %q: %v", p.Title, err)
		}
		fmt.Printf("seeded post: id=%s title=%q author=%s\n", post.ID.Hex(), post.Title, post.Author.Hex())
	}

	posts, err := postSvc.List(ctx)
	if err != nil {
		log.Fatalf("failed to list posts: %v", err)
	}
	for _, p := range posts {
		fmt.Printf("post %q by %s <%s>\n", p.Title, p.Author.FullName, p.Author.Email)
	}
}
