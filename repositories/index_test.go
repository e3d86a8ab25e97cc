package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"rsmf-lab/domain/search"
)

func TestTranscriptIndex_IndexAndSearch(t *testing.T) {
	req := require.New(t)
	writer, err := OpenBlugeWriter(t.TempDir())
	req.NoError(err)
	defer writer.Close()

	index := NewTranscriptIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))
	now := time.Now().UTC()

	revenue := newRunRecord(now, "revenue.rsmf")
	req.NoError(index.IndexRun(revenue, "Alice\n\nthe quarterly revenue looks great\n\n\n"))

	incident := newRunRecord(now.Add(time.Minute), "incident.rsmf")
	incident.Language = "fr"
	req.NoError(index.IndexRun(incident, "Bob\n\nle rapport d'incident est prêt\n\n\n"))

	matches, err := index.Search(context.Background(), search.Query{Terms: "revenue", Limit: 10})
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal(revenue.ID.String(), matches[0].RunID)
	req.Equal("revenue.rsmf", matches[0].OutputPath)
	req.Equal(now.Format(time.RFC3339), matches[0].At)
	req.Greater(matches[0].Score, 0.0)

	matches, err = index.Search(context.Background(), search.Query{Terms: "woodpecker", Limit: 10})
	req.NoError(err)
	req.Empty(matches)
}

func TestTranscriptIndex_Search_LanguageFilter(t *testing.T) {
	req := require.New(t)
	writer, err := OpenBlugeWriter(t.TempDir())
	req.NoError(err)
	defer writer.Close()

	index := NewTranscriptIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))
	now := time.Now().UTC()

	english := newRunRecord(now, "english.rsmf")
	req.NoError(index.IndexRun(english, "the report is ready"))

	french := newRunRecord(now.Add(time.Minute), "french.rsmf")
	french.Language = "fr"
	req.NoError(index.IndexRun(french, "le rapport est prêt"))

	// Filter alone
	matches, err := index.Search(context.Background(), search.Query{Language: "fr", Limit: 10})
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal(french.ID.String(), matches[0].RunID)

	// Terms and filter combined
	matches, err = index.Search(context.Background(), search.Query{Terms: "rapport", Language: "fr", Limit: 10})
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal("french.rsmf", matches[0].OutputPath)
}

func TestTranscriptIndex_IndexRun_ReplacesDocument(t *testing.T) {
	req := require.New(t)
	writer, err := OpenBlugeWriter(t.TempDir())
	req.NoError(err)
	defer writer.Close()

	index := NewTranscriptIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))

	record := newRunRecord(time.Now().UTC(), "out.rsmf")
	req.NoError(index.IndexRun(record, "first body about badgers"))
	req.NoError(index.IndexRun(record, "second body about snakes"))

	matches, err := index.Search(context.Background(), search.Query{Terms: "badgers", Limit: 10})
	req.NoError(err)
	req.Empty(matches)

	matches, err = index.Search(context.Background(), search.Query{Terms: "snakes", Limit: 10})
	req.NoError(err)
	req.Len(matches, 1)
}

func TestTranscriptIndex_Search_EmptyQuery(t *testing.T) {
	req := require.New(t)
	writer, err := OpenBlugeWriter(t.TempDir())
	req.NoError(err)
	defer writer.Close()

	index := NewTranscriptIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))

	matches, err := index.Search(context.Background(), search.Query{Limit: 10})
	req.NoError(err)
	req.Nil(matches)
}
