package repository

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/models"
)

// ArticleListQuery holds validated parameters for the article listing.
// Zero values select the defaults (created_at, desc, every topic).
type ArticleListQuery struct {
	SortBy models.SortColumn
	Order  models.SortOrder
	Topic  string
}

// commentCountExpr is the aggregate backing comment_count. Ordering by
// comment_count must reference the aggregate itself.
const commentCountExpr = "COUNT(c.comment_id)"

// sortExpressions maps each allowed sort column to a fixed SQL fragment.
// User input never reaches the ORDER BY clause except through this map.
var sortExpressions = map[models.SortColumn]string{
	models.SortByAuthor:       "u.username",
	models.SortByTitle:        "a.title",
	models.SortByArticleID:    "a.article_id",
	models.SortByTopic:        "a.topic",
	models.SortByCreatedAt:    "a.created_at",
	models.SortByVotes:        "a.votes",
	models.SortByCommentCount: commentCountExpr,
}

var sortDirections = map[models.SortOrder]string{
	models.OrderAsc:  "ASC",
	models.OrderDesc: "DESC",
}

const articleListSelect = `SELECT u.username AS author, a.title, a.article_id, a.topic, a.created_at, a.votes, ` +
	commentCountExpr + `::int AS comment_count
FROM articles a
INNER JOIN users u ON a.author = u.username
LEFT JOIN comments c ON a.article_id = c.article_id`

const articleListGroupBy = `GROUP BY u.username, a.title, a.article_id, a.topic, a.created_at, a.votes`

// BuildArticleListQuery builds the aggregated, optionally filtered and
// ordered article listing. The topic is always passed as a bound argument.
func BuildArticleListQuery(q ArticleListQuery) (query string, args []interface{}, err error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = models.DefaultSortColumn
	}
	order := q.Order
	if order == "" {
		order = models.DefaultSortOrder
	}

	sortExpr, ok := sortExpressions[sortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort column %q", sortBy)
	}
	direction, ok := sortDirections[order]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort order %q", order)
	}

	var sb strings.Builder
	sb.WriteString(articleListSelect)

	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&sb, "\nWHERE a.topic = $%d", len(args))
	}

	sb.WriteString("\n")
	sb.WriteString(articleListGroupBy)
	fmt.Fprintf(&sb, "\nORDER BY %s %s", sortExpr, direction)

	return sb.String(), args, nil
}
