package search

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchClient Elasticsearchクライアントのラッパー
type ElasticsearchClient struct {
	Client *elasticsearch.Client
	Index  string
}

// NewElasticsearchClient 新しいElasticsearchクライアントを作成
func NewElasticsearchClient(address, index string) (*ElasticsearchClient, error) {
	if address == "" {
		return nil, fmt.Errorf("ELASTICSEARCH_URL環境変数が設定されていません")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{address},
	})
	if err != nil {
		return nil, fmt.Errorf("Elasticsearchクライアントの初期化に失敗: %w", err)
	}

	return &ElasticsearchClient{
		Client: client,
		Index:  index,
	}, nil
}
