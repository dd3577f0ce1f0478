package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pageza/diethub/backend/config"
)

// ObjectPutter is the part of the S3 client the image service needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores recipe images in S3
type ImageService struct {
	client    ObjectPutter
	bucket    string
	objectURL func(key string) string
}

var _ ImageStore = (*ImageService)(nil)

// NewImageService creates an ImageService writing to the configured bucket
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{
		client:    s3Config.Client,
		bucket:    s3Config.BucketName,
		objectURL: s3Config.ObjectURL,
	}
}

// UploadRecipeImage uploads the image under recipes/<id>/<uuid><ext> and
// returns its public URL
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID uint, upload ImageUpload) (string, error) {
	key := recipeImageKey(recipeID, upload.Filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        upload.Body,
		ContentType: aws.String(upload.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.objectURL(key)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)
	return publicURL, nil
}

func recipeImageKey(recipeID uint, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("recipes/%d/%s%s", recipeID, uuid.New().String(), ext)
}
