package StorageRepository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

func (r *Repository) GeneratePresignedURL(ctx context.Context, input types.PresignURLInput) (*types.PresignedURLOutput, error) {
	sanitized := unsafeFilenameChars.ReplaceAllString(input.Filename, "_")
	objectKey := fmt.Sprintf("%s/%d_%s_%s", r.folderName, time.Now().Unix(), utils.GenerateRandomString(8), sanitized)

	presignClient := s3.NewPresignClient(r.client)

	putObjectRequest, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucketName),
		Key:           aws.String(objectKey),
		ContentType:   aws.String(input.ContentType),
		ContentLength: aws.Int64(input.SizeInBytes),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = configs.PRESIGN_URL_DURATION
	})
	if err != nil {
		return nil, fmt.Errorf("presigned URL oluşturulamadı: %w", err)
	}

	publicURL := strings.TrimSuffix(r.publicURLBase, "/") + "/" + objectKey

	return &types.PresignedURLOutput{
		PresignedURL: putObjectRequest.URL,
		UploadURL:    publicURL,
		ObjectKey:    objectKey,
		ExpiresAt:    time.Now().Add(configs.PRESIGN_URL_DURATION),
	}, nil
}
