package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"webapp-standalone/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// Source is where a deployed application comes from.
type Source interface {
	// Location resolves the human readable origin of the application.
	Location() (string, error)
	// Stage makes the application available on disk and returns its root directory.
	// Sources that copy place the application in appBase/name.
	Stage(ctx context.Context, fsys afero.Fs, appBase, name string) (string, error)
}

// StorageFactory creates the storage client used by bucket deployments.
type StorageFactory func() (storage.Client, error)

// Resolve picks the source for contextDirectory. An empty value selects self.
func Resolve(contextDirectory string, self *SelfSource, newStorage StorageFactory) (Source, error) {
	switch {
	case contextDirectory == "":
		return self, nil
	case strings.HasPrefix(contextDirectory, storage.Scheme):
		bucket, prefix, ok := storage.ParseLocation(contextDirectory)
		if !ok {
			return nil, fmt.Errorf("invalid storage location %q", contextDirectory)
		}
		client, err := newStorage()
		if err != nil {
			return nil, err
		}
		return &StorageSource{Client: client, Bucket: bucket, Prefix: prefix}, nil
	case isArchive(contextDirectory):
		return &ArchiveSource{Path: contextDirectory}, nil
	default:
		return &DirectorySource{Dir: contextDirectory}, nil
	}
}

func isArchive(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".war" || ext == ".zip"
}

// SelfSource is the application embedded in the running executable.
type SelfSource struct {
	// Assets is the application content, rooted at the application root.
	Assets fs.FS
	// Executable resolves the path of the running program. Defaults to os.Executable.
	Executable func() (string, error)
}

// Location returns the resolved path of the running executable.
func (s *SelfSource) Location() (string, error) {
	executable := s.Executable
	if executable == nil {
		executable = os.Executable
	}
	path, err := executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable location: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return path, nil
}

// Stage extracts the embedded application into appBase/name.
func (s *SelfSource) Stage(ctx context.Context, fsys afero.Fs, appBase, name string) (string, error) {
	if s.Assets == nil {
		return "", fmt.Errorf("no embedded application")
	}
	dest := filepath.Join(appBase, name)
	if err := copyFS(ctx, fsys, dest, s.Assets); err != nil {
		return "", fmt.Errorf("extract embedded application: %w", err)
	}
	return dest, nil
}

// DirectorySource is an application directory served in place.
type DirectorySource struct {
	Dir string
}

// Location returns the absolute directory.
func (s *DirectorySource) Location() (string, error) {
	abs, err := filepath.Abs(s.Dir)
	if err != nil {
		return "", fmt.Errorf("resolve context directory %q: %w", s.Dir, err)
	}
	return abs, nil
}

// Stage checks the directory exists and returns it unchanged.
func (s *DirectorySource) Stage(_ context.Context, fsys afero.Fs, _, _ string) (string, error) {
	dir, err := s.Location()
	if err != nil {
		return "", err
	}
	info, err := fsys.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("context directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("context directory %s is not a directory", dir)
	}
	return dir, nil
}

// ArchiveSource is a .war or .zip application archive.
type ArchiveSource struct {
	Path string
}

// Location returns the absolute archive path.
func (s *ArchiveSource) Location() (string, error) {
	abs, err := filepath.Abs(s.Path)
	if err != nil {
		return "", fmt.Errorf("resolve archive %q: %w", s.Path, err)
	}
	return abs, nil
}

// Stage extracts the archive into appBase/name.
func (s *ArchiveSource) Stage(ctx context.Context, fsys afero.Fs, appBase, name string) (string, error) {
	path, err := s.Location()
	if err != nil {
		return "", err
	}
	dest := filepath.Join(appBase, name)
	if err := extractZip(ctx, fsys, path, dest); err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return dest, nil
}

// StorageSource is an application stored under a bucket prefix.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Location returns the s3:// location.
func (s *StorageSource) Location() (string, error) {
	return storage.Scheme + s.Bucket + "/" + s.Prefix, nil
}

// Stage downloads every object under the prefix into appBase/name.
func (s *StorageSource) Stage(ctx context.Context, fsys afero.Fs, appBase, name string) (string, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket %s: %w", s.Bucket, err)
	}
	if !exists {
		return "", fmt.Errorf("bucket %s does not exist", s.Bucket)
	}

	dest := filepath.Join(appBase, name)
	if err := fsys.MkdirAll(dest, 0o755); err != nil {
		return "", err
	}

	objects := s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{Prefix: s.Prefix, Recursive: true})
	for obj := range objects {
		if obj.Err != nil {
			return "", fmt.Errorf("list %s: %w", s.Bucket, obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, s.Prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		if err := s.download(ctx, fsys, dest, obj.Key, rel); err != nil {
			return "", err
		}
	}
	return dest, nil
}

func (s *StorageSource) download(ctx context.Context, fsys afero.Fs, dest, key, rel string) error {
	target, err := safeJoin(dest, rel)
	if err != nil {
		return err
	}
	body, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	defer body.Close()

	if err := writeFile(fsys, target, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
