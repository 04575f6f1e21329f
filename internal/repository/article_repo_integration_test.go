package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// openIntegrationDB connects to the Postgres named by the DB_* variables and
// migrates it. Tests using it are skipped when DB_HOST is unset.
func openIntegrationDB(t *testing.T) *database.DB {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping Postgres integration test")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	db, err := database.New(&cfg.Database, zerolog.Nop())
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../../migrations")
	if err != nil {
		t.Fatalf("migrations path: %v", err)
	}
	if err := db.RunMigrations(migrations); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	return db
}

type integrationFixture struct {
	topic    string
	articles map[string]int64 // title -> id
}

// seedIntegrationTopic inserts a private topic with three articles holding
// zero, two and one comments. Everything is removed on cleanup.
func seedIntegrationTopic(t *testing.T, ctx context.Context, db *database.DB, repos *repository.Repositories) integrationFixture {
	t.Helper()
	suffix := uuid.NewString()[:8]
	fx := integrationFixture{topic: "it-" + suffix, articles: map[string]int64{}}
	authors := []string{"it-alice-" + suffix, "it-bob-" + suffix, "it-carol-" + suffix}

	t.Cleanup(func() {
		bg := context.Background()
		_, _ = db.ExecContext(bg, `DELETE FROM articles WHERE topic = $1`, fx.topic)
		_, _ = db.ExecContext(bg, `DELETE FROM topics WHERE slug = $1`, fx.topic)
		for _, u := range authors {
			_, _ = db.ExecContext(bg, `DELETE FROM users WHERE username = $1`, u)
		}
	})

	if _, err := db.ExecContext(ctx, `INSERT INTO topics (slug, description) VALUES ($1, $2)`, fx.topic, "integration"); err != nil {
		t.Fatalf("insert topic: %v", err)
	}
	for _, u := range authors {
		if _, err := db.ExecContext(ctx, `INSERT INTO users (username) VALUES ($1)`, u); err != nil {
			t.Fatalf("insert user: %v", err)
		}
	}

	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		title    string
		author   string
		votes    int
		comments int
	}{
		{"quiet", authors[0], 5, 0},
		{"busy", authors[1], 1, 2},
		{"some", authors[2], 3, 1},
	}
	for i, r := range rows {
		var id int64
		err := db.QueryRowContext(ctx,
			`INSERT INTO articles (title, body, topic, author, created_at, votes)
			 VALUES ($1, 'body', $2, $3, $4, $5) RETURNING article_id`,
			r.title, fx.topic, r.author, base.Add(time.Duration(i)*time.Hour), r.votes,
		).Scan(&id)
		if err != nil {
			t.Fatalf("insert article: %v", err)
		}
		fx.articles[r.title] = id
		for n := 0; n < r.comments; n++ {
			if _, err := repos.Comment.Create(ctx, id, authors[0], "comment"); err != nil {
				t.Fatalf("create comment: %v", err)
			}
		}
	}
	return fx
}

func titles(list []models.ArticleSummary) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Title)
	}
	return out
}

func TestArticleRepo_List_Postgres(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	repos := repository.New(db)
	fx := seedIntegrationTopic(t, ctx, db, repos)

	tests := []struct {
		name  string
		query repository.ArticleListQuery
		want  []string
	}{
		{"default is newest first", repository.ArticleListQuery{}, []string{"some", "busy", "quiet"}},
		{"comment_count desc", repository.ArticleListQuery{SortBy: models.SortByCommentCount}, []string{"busy", "some", "quiet"}},
		{"comment_count asc", repository.ArticleListQuery{SortBy: models.SortByCommentCount, Order: models.OrderAsc}, []string{"quiet", "some", "busy"}},
		{"votes asc", repository.ArticleListQuery{SortBy: models.SortByVotes, Order: models.OrderAsc}, []string{"busy", "some", "quiet"}},
		{"author asc", repository.ArticleListQuery{SortBy: models.SortByAuthor, Order: models.OrderAsc}, []string{"quiet", "busy", "some"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Topic = fx.topic
			got, err := repos.Article.List(ctx, tt.query)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if diff := cmp.Diff(tt.want, titles(got)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	got, err := repos.Article.List(ctx, repository.ArticleListQuery{Topic: fx.topic, SortBy: models.SortByCommentCount})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	counts := map[string]int{}
	for _, a := range got {
		if a.Topic != fx.topic {
			t.Errorf("article %d leaked from topic %q", a.ArticleID, a.Topic)
		}
		counts[a.Title] = a.CommentCount
	}
	if diff := cmp.Diff(map[string]int{"quiet": 0, "busy": 2, "some": 1}, counts); diff != "" {
		t.Errorf("comment_count mismatch (-want +got):\n%s", diff)
	}

	article, err := repos.Article.GetByID(ctx, fx.articles["busy"])
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if article == nil || article.CommentCount != 2 {
		t.Errorf("Expected comment_count 2 from GetByID, got %+v", article)
	}
}
