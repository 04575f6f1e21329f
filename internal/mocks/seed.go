package mocks

import (
	"time"

	"github.com/news-api/internal/models"
)

func seedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// NewSeededStore returns a store loaded with the fixture data the handler and
// service tests are written against
func NewSeededStore() *MockStore {
	s := NewMockStore()

	s.AddTopic("mitch", "The man, the Mitch, the legend")
	s.AddTopic("cats", "Not dogs")
	s.AddTopic("paper", "what books are made of")

	for _, u := range []string{"butter_bridge", "icellusedkars", "rogersop", "lurker"} {
		s.AddUser(u)
	}

	articles := []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", CreatedAt: seedTime("2020-07-09T20:11:00Z"), Votes: 100},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", CreatedAt: seedTime("2020-10-16T05:03:00Z")},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", CreatedAt: seedTime("2020-11-03T09:12:00Z")},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
			Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: seedTime("2020-05-06T01:14:00Z")},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: seedTime("2020-08-03T13:14:00Z")},
		{ArticleID: 9, Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge",
			Body: "Well? Think about it.", CreatedAt: seedTime("2020-06-06T09:10:00Z")},
	}
	for _, a := range articles {
		s.AddArticle(a)
	}

	comments := []struct {
		articleID int64
		author    string
		body      string
		at        string
	}{
		{9, "butter_bridge", "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", "2020-04-06T12:17:00Z"},
		{1, "butter_bridge", "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", "2020-10-31T03:03:00Z"},
		{1, "icellusedkars", "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy - onyou it works.", "2020-03-01T01:13:00Z"},
		{1, "icellusedkars", " I carry a log - yes. Is it funny to you? It is not to me.", "2020-11-22T12:36:00Z"},
		{1, "icellusedkars", "Lobster pot", "2020-05-15T20:19:00Z"},
		{5, "icellusedkars", "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", "2020-09-19T23:10:00Z"},
		{5, "butter_bridge", "I hate streaming noses", "2020-11-03T21:00:00Z"},
		{3, "icellusedkars", "Ambidextrous marsupial", "2020-09-19T23:10:00Z"},
		{3, "icellusedkars", "git push origin master", "2020-06-20T07:24:00Z"},
		{9, "icellusedkars", "Fruit pastilles", "2020-06-15T10:25:00Z"},
	}
	for _, c := range comments {
		s.AddComment(c.articleID, c.author, c.body, seedTime(c.at))
	}

	return s
}
