package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/infrastructure/snapshot"
)

// testRepos builds real snapshot repositories over dir so service tests cover
// the full store path, including restart behaviour via a second call on the
// same directory.
func testRepos(t *testing.T, dir string) (*snapshot.UserRepository, *snapshot.PostRepository, *snapshot.CommentRepository) {
	t.Helper()
	log := zerolog.Nop()

	users := snapshot.NewUserRepository(filepath.Join(dir, "users.json"), log)
	comments, err := snapshot.NewCommentRepository(filepath.Join(dir, "comments.json"), log)
	if err != nil {
		t.Fatalf("comment repository: %v", err)
	}
	posts, err := snapshot.NewPostRepository(filepath.Join(dir, "posts.json"), comments, log)
	if err != nil {
		t.Fatalf("post repository: %v", err)
	}
	return users, posts, comments
}
