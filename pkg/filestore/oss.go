package filestore

import (
	"StudyHub/config"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// OssStore 阿里云 OSS
type OssStore struct {
	Client     *oss.Client
	BucketName string
	Endpoint   string
	CdnDomain  string
}

func NewOssStore(cfg *config.OssConfig) *OssStore {
	var provider credentials.CredentialsProvider
	if cfg.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(provider)

	return &OssStore{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		Endpoint:   cfg.Endpoint,
		CdnDomain:  cfg.CdnDomain,
	}
}

// Put 上传流（HTTP / 表单上传）
func (s *OssStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	req := &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(key),
		Body:   reader,
	}
	if contentType != "" {
		req.ContentType = oss.Ptr(contentType)
	}
	if size >= 0 {
		req.ContentLength = oss.Ptr(size)
	}
	_, err := s.Client.PutObject(ctx, req)
	return err
}

// Get 下载为流
func (s *OssStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		var se *oss.ServiceError
		if errors.As(err, &se) && se.StatusCode == 404 {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

func (s *OssStore) URL(key string) string {
	if s.CdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.CdnDomain, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, s.Endpoint, key)
}
