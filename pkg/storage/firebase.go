package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// FirebaseStore implements ObjectStore on top of a Firebase Storage
// bucket.
type FirebaseStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// InitFirebase initializes the Firebase app and returns a store bound
// to its default bucket.
func InitFirebase(ctx context.Context, credentialsPath, bucketName string) (*FirebaseStore, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("Firebase credentials path not provided")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name not provided")
	}

	// Check if the credentials file exists
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error getting default storage bucket: %w", err)
	}

	log.Info().Str("bucket", bucketName).Msg("Firebase app and storage bucket initialized successfully!")
	return &FirebaseStore{bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes the object, makes it world-readable and returns its
// public URL.
func (s *FirebaseStore) Upload(ctx context.Context, name string, r io.Reader, contentType string) (string, error) {
	obj := s.bucket.Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("writing object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing object %s: %w", name, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("setting public ACL on %s: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, name), nil
}

// Remove deletes the object behind a previously returned URL.
// Best-effort: callers are expected to log, not fail, on error.
func (s *FirebaseStore) Remove(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucketName)
	name := strings.TrimPrefix(url, prefix)
	if name == url || name == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", url, s.bucketName)
	}
	return s.bucket.Object(name).Delete(ctx)
}
