package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient Firestoreクライアントを作成する
// GOOGLE_APPLICATION_CREDENTIALS のファイルがあればそれを使い、無ければデフォルト認証
func NewFirestoreClient(ctx context.Context, projectID string, logger *zap.Logger) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
	}

	var opts []option.ClientOption
	if credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err == nil {
			logger.Info("📄 Using credentials file", zap.String("path", credentialsFile))
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		} else {
			logger.Warn("⚠️ Credentials file not found, trying with default authentication", zap.String("path", credentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	logger.Info("✅ Firestore client initialized", zap.String("project", projectID))

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
