package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	notFound := NotFound("Article %d not found", 7)

	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "tagged error passes through",
			err:        notFound,
			wantKind:   KindNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Article 7 not found",
		},
		{
			name:       "wrapped tagged error",
			err:        fmt.Errorf("resolve: %w", InvalidID("Comment")),
			wantKind:   KindInvalidType,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Comment ID must be a number",
		},
		{
			name:       "invalid text representation",
			err:        &pq.Error{Code: "22P02", Message: "invalid input syntax for type integer"},
			wantKind:   KindStoreTypeError,
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidDataType,
		},
		{
			name:       "integer out of range",
			err:        fmt.Errorf("query articles: %w", &pq.Error{Code: "22003"}),
			wantKind:   KindStoreTypeError,
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidDataType,
		},
		{
			name:       "other store error",
			err:        &pq.Error{Code: "23503", Message: "violates foreign key constraint"},
			wantKind:   KindUnclassified,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgInternal,
		},
		{
			name:       "plain error",
			err:        sql.ErrConnDone,
			wantKind:   KindUnclassified,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMsg, got.Msg)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	got := Classify(cause)
	assert.ErrorIs(t, got, cause)
	assert.NotContains(t, got.Msg, "connection reset")
}

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindMissingField.Status())
	assert.Equal(t, http.StatusBadRequest, KindInvalidEnum.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusInternalServerError, KindUnclassified.Status())
	assert.Equal(t, "missing_field", KindMissingField.String())
}
