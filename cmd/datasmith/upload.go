package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/datasmith/datasmith/integrations"
	"github.com/datasmith/datasmith/logger"
	"github.com/spf13/cobra"
)

// UploadOptions represents the options for the upload command.
type UploadOptions struct {
	Bucket string
	Key    string
	Region string
}

// newUploadCommand creates the upload command. The generated file is handed to
// S3 as an opaque artifact; this is glue around the generator, not part of it.
func newUploadCommand() *cobra.Command {
	options := &UploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a generated file to S3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			localPath := args[0]
			if options.Bucket == "" {
				return fmt.Errorf("--bucket is required")
			}
			key := options.Key
			if key == "" {
				key = filepath.Base(localPath)
			}

			log := logger.GetLogger()
			defer logger.Sync()

			ctx := context.Background()
			uploader, err := integrations.NewS3Uploader(ctx, options.Bucket, options.Region,
				integrations.WithLogger(log))
			if err != nil {
				return err
			}
			return uploader.Upload(ctx, localPath, key)
		},
	}

	cmd.Flags().StringVar(&options.Bucket, "bucket", "", "Target S3 bucket")
	cmd.Flags().StringVar(&options.Key, "key", "", "Object key (defaults to the file name)")
	cmd.Flags().StringVar(&options.Region, "region", "", "AWS region")

	return cmd
}
