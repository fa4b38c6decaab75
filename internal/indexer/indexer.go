package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mcastros/clothing_store/internal/models"
)

// ProductEvent is the payload published on product_events.
type ProductEvent struct {
	Type      string          `json:"type"`
	ProductID uint            `json:"product_id"`
	Product   *models.Product `json:"product,omitempty"`
}

type Indexer struct {
	Reader *kafka.Reader
	ES     *elasticsearch.Client
	Index  string
	Log    *slog.Logger
}

// Run consumes product events until ctx is cancelled, mirroring each
// one into the search index. A malformed or unindexable event is logged
// and skipped so the consumer group keeps advancing.
func (ix *Indexer) Run(ctx context.Context) error {
	for {
		msg, err := ix.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("indexer: read message: %w", err)
		}

		var event ProductEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			ix.Log.Error("skipping malformed event", "offset", msg.Offset, "error", err)
			continue
		}

		if err := ix.Apply(ctx, event); err != nil {
			ix.Log.Error("indexing failed", "type", event.Type, "product_id", event.ProductID, "error", err)
			continue
		}

		ix.Log.Info("event indexed", "type", event.Type, "product_id", event.ProductID)
	}
}

func (ix *Indexer) Apply(ctx context.Context, event ProductEvent) error {
	docID := strconv.FormatUint(uint64(event.ProductID), 10)

	switch event.Type {
	case "product_registered", "product_updated":
		if event.Product == nil {
			return fmt.Errorf("event %s without product payload", event.Type)
		}
		doc, err := json.Marshal(event.Product)
		if err != nil {
			return err
		}
		res, err := ix.ES.Index(
			ix.Index,
			bytes.NewReader(doc),
			ix.ES.Index.WithDocumentID(docID),
			ix.ES.Index.WithContext(ctx),
		)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index %s: %s", docID, res.Status())
		}
		return nil

	case "product_deleted":
		res, err := ix.ES.Delete(
			ix.Index,
			docID,
			ix.ES.Delete.WithContext(ctx),
		)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		// 404 means the document never made it into the index.
		if res.IsError() && res.StatusCode != 404 {
			return fmt.Errorf("delete %s: %s", docID, res.Status())
		}
		return nil

	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}
