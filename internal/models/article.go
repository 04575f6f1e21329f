package models

import (
	"time"
)

// Article represents a stored article as returned by the vote update
type Article struct {
	ArticleID int64     `json:"article_id" db:"article_id"`
	Title     string    `json:"title" db:"title"`
	Topic     string    `json:"topic" db:"topic"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Votes     int       `json:"votes" db:"votes"`
}

// ArticleWithCount is a single article joined with its derived comment count
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is one row of the article listing (no body)
type ArticleSummary struct {
	Author       string    `json:"author" db:"author"`
	Title        string    `json:"title" db:"title"`
	ArticleID    int64     `json:"article_id" db:"article_id"`
	Topic        string    `json:"topic" db:"topic"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// SortColumn is a column the article listing can be ordered by
type SortColumn string

const (
	SortByAuthor       SortColumn = "author"
	SortByTitle        SortColumn = "title"
	SortByArticleID    SortColumn = "article_id"
	SortByTopic        SortColumn = "topic"
	SortByCreatedAt    SortColumn = "created_at"
	SortByVotes        SortColumn = "votes"
	SortByCommentCount SortColumn = "comment_count"
)

// ValidSortColumns defines the allowed sort_by values
var ValidSortColumns = map[SortColumn]bool{
	SortByAuthor:       true,
	SortByTitle:        true,
	SortByArticleID:    true,
	SortByTopic:        true,
	SortByCreatedAt:    true,
	SortByVotes:        true,
	SortByCommentCount: true,
}

// SortOrder is the direction of the article listing
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ValidSortOrders defines the allowed order values
var ValidSortOrders = map[SortOrder]bool{
	OrderAsc:  true,
	OrderDesc: true,
}

const (
	DefaultSortColumn = SortByCreatedAt
	DefaultSortOrder  = OrderDesc
)
