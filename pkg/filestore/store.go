package filestore

import (
	"StudyHub/config"
	"StudyHub/pkg/log"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("file not found")

// Store 笔记文件、帖子图片的存储后端
type Store interface {
	// Put 写入对象，size 未知时传 -1
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Get 读取对象
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// URL 对外访问地址
	URL(key string) string
}

// NewStore 按 storage.driver 选择后端
func NewStore(conf *config.Config) Store {
	store, err := New(conf)
	if err != nil {
		log.L.Fatal("init file store", zap.String("driver", conf.Storage.Driver), zap.Error(err))
	}
	log.L.Info("file store ready", zap.String("driver", conf.Storage.Driver))
	return store
}

func New(conf *config.Config) (Store, error) {
	switch conf.Storage.Driver {
	case config.StorageDriverLocal, "":
		return NewLocalStore(conf.Storage.LocalDir, conf.Storage.PublicPrefix)
	case config.StorageDriverOss:
		if conf.Oss == nil {
			return nil, errors.New("oss config missing")
		}
		return NewOssStore(conf.Oss), nil
	case config.StorageDriverMinio:
		if conf.Minio == nil {
			return nil, errors.New("minio config missing")
		}
		return NewMinioStore(conf.Minio)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", conf.Storage.Driver)
	}
}
