package main

import (
	"context"
	"fmt"
	"log"

	"webapp-standalone/core/config"
	"webapp-standalone/core/settings"
	"webapp-standalone/core/storage"

	"github.com/minio/minio-go/v7"
)

// Lists what a bucket deployment would download.
func main() {
	cfg, err := config.LoadConfig(".", settings.New(nil))
	if err != nil {
		log.Fatal(err)
	}

	location := cfg.Server.Standalone.ContextDirectory
	bucket, prefix, ok := storage.ParseLocation(location)
	if !ok {
		log.Fatalf("TOMCAT_STANDALONE_CONTEXT_DIRECTORY %q is not an s3:// location", location)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatal(err)
	}
	if !exists {
		log.Fatalf("bucket %s does not exist", bucket)
	}

	fmt.Printf("=== Objects under %s ===\n", location)
	count := 0
	var size int64
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			log.Fatal(obj.Err)
		}
		fmt.Printf("%10d  %s\n", obj.Size, obj.Key)
		count++
		size += obj.Size
	}
	fmt.Printf("\n%d objects, %d bytes\n", count, size)
}
