package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// CloudStorageClient stores files in a Google Cloud Storage bucket
type CloudStorageClient struct {
	BucketName string
	Prefix     string
	Client     *storage.Client
}

// NewCloudStorageClient uses application default credentials
func NewCloudStorageClient(ctx context.Context, bucketName, prefix string) (*CloudStorageClient, error) {
	if bucketName == "" {
		return nil, errors.New("bucket is required for gcs storage")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %v", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Prefix:     prefix,
		Client:     client,
	}, nil
}

func (c *CloudStorageClient) SaveFile(ctx context.Context, dir, filename string, content io.Reader) error {
	obj := c.Client.Bucket(c.BucketName).Object(objectKey(c.Prefix, dir, filename))
	if err := copyAndClose(obj.NewWriter(ctx), content); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (c *CloudStorageClient) Open(ctx context.Context, dir, filename string) (io.ReadCloser, int64, error) {
	reader, err := c.Client.Bucket(c.BucketName).Object(objectKey(c.Prefix, dir, filename)).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, 0, fmt.Errorf("%w: %s/%s", ErrNotExist, dir, filename)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read object: %w", err)
	}
	return reader, reader.Attrs.Size, nil
}

func (c *CloudStorageClient) List(ctx context.Context, dir string) ([]FileInfo, error) {
	prefix := dirPrefix(c.Prefix, dir)
	it := c.Client.Bucket(c.BucketName).Objects(ctx, &storage.Query{Prefix: prefix, Delimiter: "/"})

	files := []FileInfo{}
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		// synthetic directory entries only carry a prefix
		if attrs.Name == "" {
			continue
		}
		files = append(files, FileInfo{Name: strings.TrimPrefix(attrs.Name, prefix), ModTime: attrs.Updated})
	}
	return files, nil
}

func (c *CloudStorageClient) Remove(ctx context.Context, dir, filename string) error {
	err := c.Client.Bucket(c.BucketName).Object(objectKey(c.Prefix, dir, filename)).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// Close releases the underlying client
func (c *CloudStorageClient) Close() error {
	return c.Client.Close()
}
