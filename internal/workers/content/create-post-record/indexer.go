// internal/workers/content/create-post-record/indexer.go
package createpostrecord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"carkeypro-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchIndexer writes post drafts into the dashboard index keyed by
// draft ID, so re-indexing the same draft is an upsert.
type ElasticsearchIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchIndexer(client *elasticsearch.Client, index string) *ElasticsearchIndexer {
	return &ElasticsearchIndexer{
		client: client,
		index:  index,
	}
}

func (e *ElasticsearchIndexer) IndexPostDraft(ctx context.Context, draft *models.PostDraft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithDocumentID(draft.ID),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index request returned %s", res.Status())
	}
	return nil
}
