package validation

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

// Query keys accepted by GET /api/articles
const (
	QueryTopic  = "topic"
	QuerySortBy = "sort_by"
	QueryOrder  = "order"
)

// ArticleListQueryKeys is the allow-list of query string keys for the article listing
var ArticleListQueryKeys = []string{QueryTopic, QuerySortBy, QueryOrder}

const (
	msgInvalidQueryKey = "Invalid query string index: valid query indexes are 'topic', 'sort_by' and 'order'"
	msgInvalidOrder    = "Invalid sort by order: valid values are 'asc' and 'desc'"
	msgMissingVotes    = "Missing valid inc_votes"
	msgInvalidVotes    = "Votes property must be a number"
)

// ValidateNumericID parses a path identifier as a base-10 integer and keeps
// the original text. Zero and negative values are accepted; they simply
// never match a row.
func ValidateNumericID(value, entity string) (models.ID, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return models.ID{}, apperror.InvalidID(entity)
	}
	return models.ID{Value: id, Raw: value}, nil
}

// ValidateSortColumn checks sort_by against the allowed columns.
// An empty value selects the default column.
func ValidateSortColumn(column string) (models.SortColumn, error) {
	if column == "" {
		return models.DefaultSortColumn, nil
	}
	sortBy := models.SortColumn(column)
	if !models.ValidSortColumns[sortBy] {
		return "", apperror.Newf(apperror.KindInvalidEnum, "Invalid sort by on %s", column)
	}
	return sortBy, nil
}

// ValidateOrder checks order against asc/desc. An empty value selects desc.
func ValidateOrder(order string) (models.SortOrder, error) {
	if order == "" {
		return models.DefaultSortOrder, nil
	}
	o := models.SortOrder(order)
	if !models.ValidSortOrders[o] {
		return "", apperror.New(apperror.KindInvalidEnum, msgInvalidOrder)
	}
	return o, nil
}

// ValidateQueryKeys rejects any query string key outside allowed
func ValidateQueryKeys(query url.Values, allowed []string) error {
	for key := range query {
		if !contains(allowed, key) {
			return apperror.New(apperror.KindInvalidEnum, msgInvalidQueryKey)
		}
	}
	return nil
}

// ValidateVoteDelta decodes inc_votes. JSON integers and integer strings are
// accepted; a missing or null value is a missing field.
func ValidateVoteDelta(raw json.RawMessage) (int64, error) {
	if IsMissing(raw) {
		return 0, apperror.New(apperror.KindMissingField, msgMissingVotes)
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n, nil
		}
	}

	return 0, apperror.New(apperror.KindInvalidType, msgInvalidVotes)
}

// IsMissing reports whether a raw JSON field was absent or null
func IsMissing(raw json.RawMessage) bool {
	v := strings.TrimSpace(string(raw))
	return v == "" || v == "null"
}

// RequireField fails with msg when value is empty
func RequireField(value, msg string) error {
	if value == "" {
		return apperror.New(apperror.KindMissingField, msg)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
