package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"blogapi/internal/author"
	"blogapi/internal/config"
	"blogapi/internal/platform/database"
	"blogapi/internal/platform/logger"
	"blogapi/internal/post"
	"blogapi/internal/record"

	"github.com/rs/zerolog"
)

func main() {
	count := flag.Int("posts", 20, "Number of posts to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "json")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer pool.Close()

	authors := author.NewService(author.NewPostgresRepo(pool, cfg.QueryTimeout))
	posts := post.NewService(post.NewPostgresRepo(pool, cfg.QueryTimeout))

	created, skipped, err := seed(ctx, log, authors, posts, *count)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed finished")
}

type authorCreator interface {
	Create(ctx context.Context, f author.Fields) (author.Author, error)
}

type postCreator interface {
	Create(ctx context.Context, f post.Fields) (post.Post, error)
}

var seedAuthors = []author.Fields{
	{Name: "Jane Austen", PhoneNumber: strPtr("2025550143")},
	{Name: "Mark Twain", PhoneNumber: strPtr("3125550178")},
	{Name: "Ursula K. Le Guin"},
}

var titlePatterns = []string{
	"Top %d Reasons to Read More",
	"The Secret of Chapter %d",
	"You Won't Believe Draft %d",
	"Guess What Happened in Part %d",
}

// seed inserts the sample records through the services, so every value passes
// the same validators as API traffic. Records rejected as invalid are counted
// as skipped; this makes reruns safe since author names are unique.
func seed(ctx context.Context, log zerolog.Logger, authors authorCreator, posts postCreator, count int) (created, skipped int, err error) {
	for _, f := range seedAuthors {
		a, err := authors.Create(ctx, f)
		if ve, ok := record.AsValidationError(err); ok {
			log.Warn().Str("name", f.Name).Str("reason", ve.Message).Msg("author skipped")
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, fmt.Errorf("create author %q: %w", f.Name, err)
		}
		log.Debug().Stringer("author", a).Msg("author created")
		created++
	}

	categories := []string{post.CategoryFiction, post.CategoryNonFiction}
	for i := 0; i < count; i++ {
		f := post.Fields{
			Title:    fmt.Sprintf(titlePatterns[i%len(titlePatterns)], i+1),
			Content:  strings.Repeat(fmt.Sprintf("Paragraph %d of a long seeded post. ", i+1), 10),
			Summary:  fmt.Sprintf("Seeded post number %d.", i+1),
			Category: categories[i%len(categories)],
		}
		if _, err := posts.Create(ctx, f); err != nil {
			if ve, ok := record.AsValidationError(err); ok {
				log.Warn().Str("title", f.Title).Str("reason", ve.Message).Msg("post skipped")
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("create post %q: %w", f.Title, err)
		}
		created++
	}
	return created, skipped, nil
}

func strPtr(s string) *string { return &s }
