//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_transcript_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"

	"rsmf-lab/domain/search"
)

type ITranscriptIndex interface {
	IndexRun(record RunRecord, body string) error
	Search(ctx context.Context, query search.Query) ([]search.Match, error)
}

type TranscriptIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewTranscriptIndex(writer *bluge.Writer, log *slog.Logger) TranscriptIndex {
	return TranscriptIndex{writer: writer, log: log}
}

// IndexRun makes the rendered body of a run searchable. Indexing the same
// run twice replaces the previous document.
func (t TranscriptIndex) IndexRun(record RunRecord, body string) error {
	doc := bluge.NewDocument(record.ID.String()).
		AddField(bluge.NewTextField("body", body)).
		AddField(bluge.NewKeywordField("lang", record.Language).StoreValue()).
		AddField(bluge.NewKeywordField("output", record.OutputPath).StoreValue()).
		AddField(bluge.NewKeywordField("at", record.At.UTC().Format(time.RFC3339)).StoreValue())

	return t.writer.Update(doc.ID(), doc)
}

// Search runs a match query over the indexed bodies, newest scores first.
// An empty query matches nothing rather than everything.
func (t TranscriptIndex) Search(ctx context.Context, query search.Query) ([]search.Match, error) {
	if query.Terms == "" && query.Language == "" {
		return nil, nil
	}

	reader, err := t.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var q bluge.Query
	switch {
	case query.Language != "":
		boolean := bluge.NewBooleanQuery().
			AddMust(bluge.NewTermQuery(query.Language).SetField("lang"))
		if query.Terms != "" {
			boolean.AddMust(bluge.NewMatchQuery(query.Terms).SetField("body"))
		}
		q = boolean
	default:
		q = bluge.NewMatchQuery(query.Terms).SetField("body")
	}

	dmi, err := reader.Search(ctx, bluge.NewTopNSearch(query.Limit, q))
	if err != nil {
		return nil, err
	}

	var matches []search.Match
	for {
		next, err := dmi.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}

		match := search.Match{Score: next.Score}
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				match.RunID = string(value)
			case "output":
				match.OutputPath = string(value)
			case "at":
				match.At = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	t.log.Debug("Search finished", "terms", query.Terms, "matches", len(matches))
	return matches, nil
}
